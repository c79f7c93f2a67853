// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xmatrix

import (
	"fmt"

	"github.com/dalzilio/xengine/xdd"
)

// Matrix is a dense n x n arrangement of XDDs, all produced by the same
// xdd.Manager.
type Matrix struct {
	mgr     *xdd.Manager
	n       int
	entries []xdd.XDD // row-major, length n*n
}

// Vector is a resource-state vector of length n, indexed by resource
// position. One index, the manager-independent "time index," carries the
// execution-time value of interest.
type Vector struct {
	mgr     *xdd.Manager
	entries []xdd.XDD
}

func (m *Matrix) at(i, j int) xdd.XDD {
	return m.entries[i*m.n+j]
}

func (m *Matrix) set(i, j int, v xdd.XDD) {
	m.entries[i*m.n+j] = v
}

// N returns the dimension of m.
func (m *Matrix) N() int { return m.n }

// At returns the (i, j) entry of m. It panics if i or j is out of range.
func (m *Matrix) At(i, j int) xdd.XDD {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("xmatrix: index (%d,%d) out of range for a %dx%d matrix", i, j, m.n, m.n))
	}
	return m.at(i, j)
}

// NewMatrix builds an n x n matrix from entries, given in row-major order.
// len(entries) must equal n*n and every entry must come from mgr; either
// violation panics.
func NewMatrix(mgr *xdd.Manager, n int, entries []xdd.XDD) *Matrix {
	if len(entries) != n*n {
		panic(fmt.Sprintf("xmatrix: NewMatrix given %d entries, want %d for n=%d", len(entries), n*n, n))
	}
	for _, e := range entries {
		if e.Manager() != mgr {
			panic("xmatrix: NewMatrix given an entry from a different manager")
		}
	}
	cp := make([]xdd.XDD, len(entries))
	copy(cp, entries)
	return &Matrix{mgr: mgr, n: n, entries: cp}
}

// Identity returns the n x n identity matrix: the 0-leaf on the diagonal,
// BOT off-diagonal.
func Identity(mgr *xdd.Manager, n int) *Matrix {
	zero := mgr.Leaf(xdd.Zero)
	bot := mgr.Leaf(xdd.BOT)
	entries := make([]xdd.XDD, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				entries[i*n+j] = zero
			} else {
				entries[i*n+j] = bot
			}
		}
	}
	return &Matrix{mgr: mgr, n: n, entries: entries}
}

// Multiply returns A·B: (A·B)[i,j] = max over k of A[i,k] + B[k,j], with
// max and saturated-add lifted to XDDs. A and B must have the same
// dimension and come from the same manager; either violation panics.
func Multiply(a, b *Matrix) *Matrix {
	if a.mgr != b.mgr {
		panic("xmatrix: Multiply given matrices from different managers")
	}
	if a.n != b.n {
		panic(fmt.Sprintf("xmatrix: Multiply dimension mismatch (%d vs %d)", a.n, b.n))
	}
	n := a.n
	mgr := a.mgr
	entries := make([]xdd.XDD, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := mgr.Leaf(xdd.BOT)
			for k := 0; k < n; k++ {
				term := mgr.Add(a.at(i, k), b.at(k, j))
				acc = mgr.Max(acc, term)
			}
			entries[i*n+j] = acc
		}
	}
	return &Matrix{mgr: mgr, n: n, entries: entries}
}

// NewVector builds a vector from entries. Every entry must come from mgr.
func NewVector(mgr *xdd.Manager, entries []xdd.XDD) *Vector {
	for _, e := range entries {
		if e.Manager() != mgr {
			panic("xmatrix: NewVector given an entry from a different manager")
		}
	}
	cp := make([]xdd.XDD, len(entries))
	copy(cp, entries)
	return &Vector{mgr: mgr, entries: cp}
}

// Len returns the length of v.
func (v *Vector) Len() int { return len(v.entries) }

// At returns the i-th entry of v.
func (v *Vector) At(i int) xdd.XDD { return v.entries[i] }

// Set replaces the i-th entry of v in place.
func (v *Vector) Set(i int, x xdd.XDD) { v.entries[i] = x }

// Clone returns a vector with the same entries as v, safe to mutate
// independently.
func (v *Vector) Clone() *Vector {
	cp := make([]xdd.XDD, len(v.entries))
	copy(cp, v.entries)
	return &Vector{mgr: v.mgr, entries: cp}
}

// VecTimesMat computes v' = v·M in place: v'[j] = max over i of
// v[i] + M[i,j]. M must have dimension equal to v.Len() and come from the
// same manager as v; either violation panics. VecTimesMat overwrites v's
// entries with v' and also returns v for convenience.
func VecTimesMat(v *Vector, m *Matrix) *Vector {
	if v.mgr != m.mgr {
		panic("xmatrix: VecTimesMat given a vector and matrix from different managers")
	}
	n := m.n
	if v.Len() != n {
		panic(fmt.Sprintf("xmatrix: VecTimesMat dimension mismatch (vector %d, matrix %d)", v.Len(), n))
	}
	mgr := v.mgr
	next := make([]xdd.XDD, n)
	for j := 0; j < n; j++ {
		acc := mgr.Leaf(xdd.BOT)
		for i := 0; i < n; i++ {
			term := mgr.Add(v.entries[i], m.at(i, j))
			acc = mgr.Max(acc, term)
		}
		next[j] = acc
	}
	v.entries = next
	return v
}
