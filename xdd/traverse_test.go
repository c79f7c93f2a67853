// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "testing"

func TestCompareOrdersLeavesBeforeInner(t *testing.T) {
	m := NewManager()
	leaf := m.MkLeaf(5)
	inner := m.MkNode(1, m.MkLeaf(1), m.MkLeaf(2))
	if leaf.Compare(inner) >= 0 {
		t.Errorf("Compare(leaf, inner): expected a negative result")
	}
	if inner.Compare(leaf) <= 0 {
		t.Errorf("Compare(inner, leaf): expected a positive result")
	}
}

func TestComparePointerShortcut(t *testing.T) {
	m := NewManager()
	n := m.MkNode(1, m.MkLeaf(1), m.MkLeaf(2))
	if n.Compare(n) != 0 {
		t.Errorf("Compare(n, n): expected 0")
	}
}

func TestTopologicalOrderDeduplicates(t *testing.T) {
	m := NewManager()
	shared := m.MkLeaf(9)
	a := m.MkNode(2, shared, m.MkLeaf(1))
	b := m.MkNode(1, shared, a)
	order := b.TopologicalOrder()
	seen := make(map[*Node]bool)
	for _, n := range order {
		if seen[n] {
			t.Fatalf("TopologicalOrder: node %s visited twice", n)
		}
		seen[n] = true
	}
	if !seen[shared] || !seen[a] || !seen[b] {
		t.Errorf("TopologicalOrder: expected to visit all three distinct nodes")
	}
}

func TestLeavesAndLeafCount(t *testing.T) {
	m := NewManager()
	n := m.MkNode(1, m.MkLeaf(1), m.MkNode(2, m.MkLeaf(1), m.MkLeaf(3)))
	if n.LeafCount() != 2 {
		t.Errorf("LeafCount: expected 2 distinct leaves (1 and 3), got %d", n.LeafCount())
	}
}

func TestHeight(t *testing.T) {
	m := NewManager()
	leaf := m.MkLeaf(1)
	if leaf.Height() != 0 {
		t.Errorf("Height(leaf): expected 0, got %d", leaf.Height())
	}
	n1 := m.MkNode(2, leaf, m.MkLeaf(2))
	n2 := m.MkNode(1, leaf, n1)
	if n2.Height() != 2 {
		t.Errorf("Height(n2): expected 2, got %d", n2.Height())
	}
}

func TestHighmostLeaf(t *testing.T) {
	m := NewManager()
	n := m.MkNode(1, m.MkLeaf(1), m.MkNode(2, m.MkLeaf(2), m.MkLeaf(3)))
	if n.HighmostLeaf() != 3 {
		t.Errorf("HighmostLeaf: expected 3, got %d", n.HighmostLeaf())
	}
}
