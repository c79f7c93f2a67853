// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

// Apply performs a pointwise binary operator on two XDDs, using a general
// Shannon-expansion template: if both operands are leaves the operator is
// applied directly; otherwise we expand on the smaller of the two operands'
// variables and recurse. a and b must come from m; mixing managers panics.
func (m *Manager) Apply(op Op, a, b XDD) XDD {
	mustSameManager(a, b)
	return XDD{m, m.apply(op, a.root, b.root)}
}

func (m *Manager) apply(op Op, a, b *Node) *Node {
	if a.IsLeaf() && b.IsLeaf() {
		return m.MkLeaf(applyLeaf(op, a.value, b.value))
	}
	if res, ok := m.ops.getApply(op, a, b); ok {
		return res
	}
	var v Var
	var lowA, highA, lowB, highB *Node
	switch {
	case a.IsLeaf():
		v = b.variable
		lowA, highA = a, a
		lowB, highB = b.low, b.high
	case b.IsLeaf():
		v = a.variable
		lowA, highA = a.low, a.high
		lowB, highB = b, b
	case a.variable == b.variable:
		v = a.variable
		lowA, highA = a.low, a.high
		lowB, highB = b.low, b.high
	case a.variable < b.variable:
		v = a.variable
		lowA, highA = a.low, a.high
		lowB, highB = b, b
	default:
		v = b.variable
		lowA, highA = a, a
		lowB, highB = b.low, b.high
	}
	low := m.apply(op, lowA, lowB)
	high := m.apply(op, highA, highB)
	res := m.MkNode(v, low, high)
	m.ops.putApply(op, a, b, res)
	return res
}

// Add returns the saturated, pointwise sum of a and b (⊗ of the tropical
// semiring).
func (m *Manager) Add(a, b XDD) XDD {
	return m.Apply(OpAdd, a, b)
}

// Sub returns the saturated, pointwise difference of a and b, clamped to
// the 0-leaf below.
func (m *Manager) Sub(a, b XDD) XDD {
	return m.Apply(OpSub, a, b)
}

// Max returns the pointwise maximum of a and b (⊕ of the tropical
// semiring).
func (m *Manager) Max(a, b XDD) XDD {
	return m.Apply(OpMax, a, b)
}

// Min returns the pointwise minimum of a and b.
func (m *Manager) Min(a, b XDD) XDD {
	return m.Apply(OpMin, a, b)
}

// Restrict substitutes the fixed boolean val for variable v in a, returning
// the resulting XDD. Because the canonical variable order guarantees v
// occurs at most once along any root-to-leaf path, restricting at a node
// whose variable is below v only requires recursing into both children and
// rebuilding; a node whose variable is above v cannot mention v at all and
// is returned unchanged.
func (m *Manager) Restrict(a XDD, v Var, val bool) XDD {
	return XDD{m, m.restrict(a.root, v, val)}
}

func (m *Manager) restrict(n *Node, v Var, val bool) *Node {
	if n.IsLeaf() || n.variable > v {
		return n
	}
	if n.variable == v {
		if val {
			return n.high
		}
		return n.low
	}
	if res, ok := m.ops.getRestrict(v, val, n); ok {
		return res
	}
	low := m.restrict(n.low, v, val)
	high := m.restrict(n.high, v, val)
	res := m.MkNode(n.variable, low, high)
	m.ops.putRestrict(v, val, n, res)
	return res
}
