// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "unsafe"

// Hash functions for the unique table.

const (
	c1 uint64 = 0xff51afd7ed558ccd
	c2 uint64 = 0xc4ceb9fe1a85ec53
)

// subHash folds a single 64-bit word into a running hash using a
// splitmix/murmur-style avalanche, mixing both halves of i into h.
func subHash(i uint64, h uint64) uint64 {
	lo := i & 0xFFFFFFFF
	hi := i >> 32
	h ^= lo * c1
	h = (h<<31 | h>>33) * c2
	h ^= hi * c1
	h = (h<<31 | h>>33) * c2
	return h
}

func ptrWord(n *Node) uint64 {
	return uint64(uintptr(unsafe.Pointer(n)))
}

// leafHash is the hash of a candidate leaf with value v.
func leafHash(v Leaf) uint64 {
	return subHash(uint64(v), 0x9e3779b97f4a7c15)
}

// innerHash is the hash of a candidate inner node (var, low, high).
func innerHash(v Var, low, high *Node) uint64 {
	h := subHash(uint64(v), 0x9e3779b97f4a7c15)
	h = subHash(ptrWord(low), h)
	h = subHash(ptrWord(high), h)
	return h
}
