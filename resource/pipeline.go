// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package resource

import (
	"fmt"

	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xmatrix"
	"github.com/dalzilio/xengine/xsteps"
)

// PipelineModel is a reference resource model: a time coordinate at index
// 0 followed by one counter per named resource. It is deliberately simple:
// a Use step adds its duration to the time coordinate only, and a Release
// step is the identity. The resource counters are carried through every
// step unchanged; no step adds to them or resets them. Use and Release only
// check that the resource they name is in range.
type PipelineModel struct {
	resources int // number of resource counters, excluding the time slot
}

// NewPipelineModel builds a PipelineModel tracking resources resource
// counters in addition to the time coordinate.
func NewPipelineModel(resources int) *PipelineModel {
	return &PipelineModel{resources: resources}
}

// TimeIndex implements Manager. The time coordinate is always index 0.
func (p *PipelineModel) TimeIndex() int { return 0 }

// Length implements Manager.
func (p *PipelineModel) Length() int { return p.resources + 1 }

// InitialState implements Manager: the 0-leaf everywhere.
func (p *PipelineModel) InitialState(mgr *xdd.Manager) *xmatrix.Vector {
	entries := make([]xdd.XDD, p.Length())
	zero := mgr.Leaf(xdd.Zero)
	for i := range entries {
		entries[i] = zero
	}
	return xmatrix.NewVector(mgr, entries)
}

// PrimitiveMatrix implements xsteps.MatrixProvider.
func (p *PipelineModel) PrimitiveMatrix(mgr *xdd.Manager, step xsteps.Step) (*xmatrix.Matrix, error) {
	n := p.Length()
	switch step.Kind {
	case xsteps.Use:
		if step.Resource < 0 || step.Resource >= p.resources {
			return nil, fmt.Errorf("resource: use step names out-of-range resource %d", step.Resource)
		}
		m := xmatrix.Identity(mgr, n)
		return addToDiagonal(mgr, m, p.TimeIndex(), step.Duration), nil
	case xsteps.Release:
		if step.Resource < 0 || step.Resource >= p.resources {
			return nil, fmt.Errorf("resource: release step names out-of-range resource %d", step.Resource)
		}
		return xmatrix.Identity(mgr, n), nil
	case xsteps.Branch:
		entries := make([]xdd.XDD, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				switch {
				case i != j:
					entries[i*n+j] = mgr.Leaf(xdd.BOT)
				case i == p.TimeIndex():
					entries[i*n+j] = mgr.Node(step.Event, mgr.Leaf(xdd.Leaf(step.LowDelta)), mgr.Leaf(xdd.Leaf(step.HighDelta)))
				default:
					entries[i*n+j] = mgr.Leaf(xdd.Zero)
				}
			}
		}
		return xmatrix.NewMatrix(mgr, n, entries), nil
	default:
		return nil, fmt.Errorf("resource: no primitive matrix for step kind %s", step.Kind)
	}
}

// addToDiagonal returns a copy of m with d added to the (i, i) entry.
func addToDiagonal(mgr *xdd.Manager, m *xmatrix.Matrix, i int, d int64) *xmatrix.Matrix {
	n := m.N()
	entries := make([]xdd.XDD, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r == i && c == i {
				entries[r*n+c] = mgr.Add(m.At(r, c), mgr.Leaf(xdd.Leaf(d)))
			} else {
				entries[r*n+c] = m.At(r, c)
			}
		}
	}
	return xmatrix.NewMatrix(mgr, n, entries)
}
