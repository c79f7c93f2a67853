// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "math/big"

// SatCount returns the number of full assignments of the varCount event
// variables 0..varCount-1 that reach a leaf other than BOT, i.e. that this
// XDD considers feasible. Variables that do not appear on a given path act
// as "don't cares" and each contribute a factor of two. The result is
// returned as a big.Int since the count grows as 2^varCount.
func (x XDD) SatCount(varCount int) *big.Int {
	memo := make(map[*Node]*big.Int)
	var rec func(n *Node, level Var) *big.Int
	rec = func(n *Node, level Var) *big.Int {
		var atLevel Var
		if n.IsLeaf() {
			atLevel = Var(varCount)
		} else {
			atLevel = n.variable
		}
		var base *big.Int
		if n.IsLeaf() {
			if n.value == BOT {
				base = big.NewInt(0)
			} else {
				base = big.NewInt(1)
			}
		} else if cached, ok := memo[n]; ok {
			base = cached
		} else {
			lo := rec(n.low, n.variable+1)
			hi := rec(n.high, n.variable+1)
			base = new(big.Int).Add(lo, hi)
			memo[n] = base
		}
		if gap := int64(atLevel) - int64(level); gap > 0 {
			factor := new(big.Int).Lsh(big.NewInt(1), uint(gap))
			base = new(big.Int).Mul(base, factor)
		}
		return base
	}
	return rec(x.root, 0)
}
