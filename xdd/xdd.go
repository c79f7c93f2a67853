// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// XDD is a handle to a canonical root Node together with the Manager that
// produced it. Two XDDs are equal iff they share the same root and were
// produced by the same Manager. The zero value of XDD is not a valid
// handle; always obtain one from a Manager.
type XDD struct {
	mgr  *Manager
	root *Node
}

// Root returns the canonical Node this handle refers to.
func (x XDD) Root() *Node { return x.root }

// Manager returns the Manager that produced this handle.
func (x XDD) Manager() *Manager { return x.mgr }

// Equal reports whether x and y share the same root node. Two handles from
// different managers are never equal, even if their roots happen to be
// structurally identical.
func (x XDD) Equal(y XDD) bool {
	return x.mgr == y.mgr && x.root == y.root
}

// Leaf returns a handle on the canonical leaf carrying value v.
func (m *Manager) Leaf(v Leaf) XDD {
	return XDD{m, m.MkLeaf(v)}
}

// Node returns a handle on the canonical inner node branching on v, with low
// and high taken from the same Manager as m. Mixing handles from a different
// Manager panics.
func (m *Manager) Node(v Var, low, high XDD) XDD {
	mustSameManager(XDD{m, nil}, low)
	mustSameManager(XDD{m, nil}, high)
	return XDD{m, m.MkNode(v, low.root, high.root)}
}

// FromNode wraps a Node already owned by m into a handle. It is the
// counterpart of Root, used when composing results obtained from lower-level
// Manager/Node APIs (e.g. inside xmatrix or xsteps).
func (m *Manager) FromNode(n *Node) XDD {
	return XDD{m, n}
}
