// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xsteps

import (
	"errors"
	"testing"

	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xmatrix"
)

// fixedProvider builds one 2x2 matrix shape per Kind, filled in from the
// step's Duration (Use) or Event and deltas (Branch); other kinds get the
// identity. It is enough to exercise the compiler's folding logic.
type fixedProvider struct {
	mgr      *xdd.Manager
	useDelta int64
	fail     bool
}

func (p *fixedProvider) PrimitiveMatrix(mgr *xdd.Manager, s Step) (*xmatrix.Matrix, error) {
	if p.fail {
		return nil, errors.New("boom")
	}
	switch s.Kind {
	case Use:
		return xmatrix.NewMatrix(p.mgr, 2, []xdd.XDD{
			p.mgr.Leaf(xdd.Leaf(s.Duration)), p.mgr.Leaf(xdd.BOT),
			p.mgr.Leaf(xdd.BOT), p.mgr.Leaf(xdd.Zero),
		}), nil
	case Branch:
		zero := p.mgr.Leaf(xdd.Zero)
		branch := p.mgr.Node(s.Event, p.mgr.Leaf(xdd.Leaf(s.LowDelta)), p.mgr.Leaf(xdd.Leaf(s.HighDelta)))
		return xmatrix.NewMatrix(p.mgr, 2, []xdd.XDD{
			branch, p.mgr.Leaf(xdd.BOT),
			p.mgr.Leaf(xdd.BOT), zero,
		}), nil
	default:
		return xmatrix.Identity(p.mgr, 2), nil
	}
}

func TestCompileSequenceEmptyIsIdentity(t *testing.T) {
	mgr := xdd.NewManager()
	c := NewCompiler(mgr, 2, &fixedProvider{mgr: mgr})
	m, err := c.CompileSequence(nil)
	if err != nil {
		t.Fatalf("CompileSequence(nil): unexpected error %v", err)
	}
	id := xmatrix.Identity(mgr, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !m.At(i, j).Equal(id.At(i, j)) {
				t.Errorf("CompileSequence(nil)[%d,%d]: expected identity entry, got %s", i, j, m.At(i, j).Root())
			}
		}
	}
}

func TestCompileSequenceFoldsUseSteps(t *testing.T) {
	mgr := xdd.NewManager()
	c := NewCompiler(mgr, 2, &fixedProvider{mgr: mgr})
	m, err := c.CompileSequence([]Step{UseStep(0, 4), UseStep(0, 6)})
	if err != nil {
		t.Fatalf("CompileSequence: unexpected error %v", err)
	}
	v := xmatrix.NewVector(mgr, []xdd.XDD{mgr.Leaf(0), mgr.Leaf(0)})
	xmatrix.VecTimesMat(v, m)
	if got := v.At(0).Root().Val(); got != 10 {
		t.Errorf("accumulated time: expected 10, got %d", got)
	}
}

func TestCompileSequenceRejectsSplit(t *testing.T) {
	mgr := xdd.NewManager()
	c := NewCompiler(mgr, 2, &fixedProvider{mgr: mgr})
	if _, err := c.CompileSequence([]Step{UseStep(0, 1), SplitStep()}); err == nil {
		t.Errorf("CompileSequence with an embedded Split: expected an error")
	}
}

func TestCompileSequencePropagatesProviderError(t *testing.T) {
	mgr := xdd.NewManager()
	c := NewCompiler(mgr, 2, &fixedProvider{mgr: mgr, fail: true})
	if _, err := c.CompileSequence([]Step{UseStep(0, 1)}); err == nil {
		t.Errorf("CompileSequence with a failing provider: expected an error")
	}
}

func TestCompileSequenceBranchProducesConditionalTime(t *testing.T) {
	mgr := xdd.NewManager()
	c := NewCompiler(mgr, 2, &fixedProvider{mgr: mgr})
	m, err := c.CompileSequence([]Step{BranchStep(1, 1, 3)})
	if err != nil {
		t.Fatalf("CompileSequence: unexpected error %v", err)
	}
	v := xmatrix.NewVector(mgr, []xdd.XDD{mgr.Leaf(0), mgr.Leaf(0)})
	xmatrix.VecTimesMat(v, m)
	want := mgr.Node(1, mgr.Leaf(1), mgr.Leaf(3))
	if !v.At(0).Equal(want) {
		t.Errorf("branch result: expected %s, got %s", want.Root(), v.At(0).Root())
	}
}
