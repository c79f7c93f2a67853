// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xsteps

import (
	"fmt"

	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xmatrix"
)

// MatrixProvider turns a single non-Split step into its primitive XDD
// matrix. Implementations are expected to come from a resource model: the
// compiler has no notion of what a resource or an event means, only how to
// fold the matrices the provider hands it.
type MatrixProvider interface {
	PrimitiveMatrix(mgr *xdd.Manager, step Step) (*xmatrix.Matrix, error)
}

// Compiler folds a step sequence into one XDD matrix.
type Compiler struct {
	mgr      *xdd.Manager
	n        int
	provider MatrixProvider
}

// NewCompiler builds a Compiler producing n x n matrices over mgr, using
// provider to turn individual steps into primitive matrices.
func NewCompiler(mgr *xdd.Manager, n int, provider MatrixProvider) *Compiler {
	return &Compiler{mgr: mgr, n: n, provider: provider}
}

// CompileSequence composes the primitive matrices of steps, in order, into
// a single matrix equivalent to their sequential composition. steps must
// not contain a Split step; the caller is responsible for partitioning a
// full sequence at Split boundaries before calling CompileSequence on each
// segment. An empty sequence returns the identity matrix.
func (c *Compiler) CompileSequence(steps []Step) (*xmatrix.Matrix, error) {
	acc := xmatrix.Identity(c.mgr, c.n)
	for i, s := range steps {
		if s.Kind == Split {
			return nil, fmt.Errorf("xsteps: CompileSequence given a Split step at index %d", i)
		}
		prim, err := c.provider.PrimitiveMatrix(c.mgr, s)
		if err != nil {
			return nil, fmt.Errorf("xsteps: step %d (%s): %w", i, s.Kind, err)
		}
		acc = xmatrix.Multiply(acc, prim)
	}
	return acc, nil
}
