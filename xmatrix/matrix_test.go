// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xmatrix

import (
	"testing"

	"github.com/dalzilio/xengine/xdd"
)

func TestIdentityShape(t *testing.T) {
	mgr := xdd.NewManager()
	id := Identity(mgr, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := xdd.BOT
			if i == j {
				want = xdd.Zero
			}
			if got := id.At(i, j).Root().Val(); got != want {
				t.Errorf("Identity(3).At(%d,%d): expected %d, got %d", i, j, want, got)
			}
		}
	}
}

func TestIdentityIsMultiplicativeUnit(t *testing.T) {
	mgr := xdd.NewManager()
	id := Identity(mgr, 2)
	m := NewMatrix(mgr, 2, []xdd.XDD{
		mgr.Leaf(1), mgr.Leaf(2),
		mgr.Leaf(3), mgr.Leaf(4),
	})
	left := Multiply(id, m)
	right := Multiply(m, id)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !left.At(i, j).Equal(m.At(i, j)) {
				t.Errorf("identity*M[%d,%d]: expected %s, got %s", i, j, m.At(i, j).Root(), left.At(i, j).Root())
			}
			if !right.At(i, j).Equal(m.At(i, j)) {
				t.Errorf("M*identity[%d,%d]: expected %s, got %s", i, j, m.At(i, j).Root(), right.At(i, j).Root())
			}
		}
	}
}

func TestMultiplyAssociates(t *testing.T) {
	mgr := xdd.NewManager()
	a := NewMatrix(mgr, 2, []xdd.XDD{mgr.Leaf(1), mgr.Leaf(xdd.BOT), mgr.Leaf(xdd.BOT), mgr.Leaf(2)})
	b := NewMatrix(mgr, 2, []xdd.XDD{mgr.Leaf(3), mgr.Leaf(xdd.BOT), mgr.Leaf(xdd.BOT), mgr.Leaf(4)})
	c := NewMatrix(mgr, 2, []xdd.XDD{mgr.Leaf(5), mgr.Leaf(xdd.BOT), mgr.Leaf(xdd.BOT), mgr.Leaf(6)})
	left := Multiply(Multiply(a, b), c)
	right := Multiply(a, Multiply(b, c))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !left.At(i, j).Equal(right.At(i, j)) {
				t.Errorf("(A*B)*C[%d,%d] != A*(B*C)[%d,%d]: %s vs %s",
					i, j, i, j, left.At(i, j).Root(), right.At(i, j).Root())
			}
		}
	}
}

func TestMultiplyDimensionMismatchPanics(t *testing.T) {
	mgr := xdd.NewManager()
	a := Identity(mgr, 2)
	b := Identity(mgr, 3)
	defer func() {
		if recover() == nil {
			t.Errorf("Multiply with mismatched dimensions: expected a panic")
		}
	}()
	Multiply(a, b)
}

func TestVecTimesMatIdentityIsNoop(t *testing.T) {
	mgr := xdd.NewManager()
	id := Identity(mgr, 3)
	v := NewVector(mgr, []xdd.XDD{mgr.Leaf(0), mgr.Leaf(5), mgr.Leaf(xdd.BOT)})
	before := v.Clone()
	VecTimesMat(v, id)
	for i := 0; i < 3; i++ {
		if !v.At(i).Equal(before.At(i)) {
			t.Errorf("v*identity[%d]: expected %s, got %s", i, before.At(i).Root(), v.At(i).Root())
		}
	}
}

func TestVecTimesMatUseStep(t *testing.T) {
	// A one-resource "use for 5" step looks like a matrix that adds 5 to
	// the time coordinate while leaving the other coordinate untouched.
	mgr := xdd.NewManager()
	m := NewMatrix(mgr, 2, []xdd.XDD{
		mgr.Leaf(5), mgr.Leaf(xdd.BOT),
		mgr.Leaf(xdd.BOT), mgr.Leaf(0),
	})
	v := NewVector(mgr, []xdd.XDD{mgr.Leaf(0), mgr.Leaf(0)})
	VecTimesMat(v, m)
	if got := v.At(0).Root().Val(); got != 5 {
		t.Errorf("time coordinate: expected 5, got %d", got)
	}
}
