// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package localtime

import (
	"log"

	"github.com/dalzilio/xengine/resource"
	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xmatrix"
	"github.com/dalzilio/xengine/xsteps"
)

// Processor computes BBTIMES for the in-edges of the basic blocks of a
// Graph. A Processor is safe for concurrent use by multiple workers
// sharing the same xdd.Manager: all node construction and memoization
// goes through that Manager.
type Processor struct {
	mgr            *xdd.Manager
	rman           resource.Manager
	compiler       *xsteps.Compiler
	splitThreshold int
	stats          *Stats
	logger         *log.Logger
}

// NewProcessor builds a Processor computing times over mgr, using rman for
// the resource-state vector layout and provider to turn individual steps
// into primitive matrices.
func NewProcessor(mgr *xdd.Manager, rman resource.Manager, provider xsteps.MatrixProvider, opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Processor{
		mgr:            mgr,
		rman:           rman,
		compiler:       xsteps.NewCompiler(mgr, rman.Length(), provider),
		splitThreshold: cfg.splitThreshold,
		stats:          cfg.stats,
		logger:         mgr.Logger(),
	}, nil
}

// ProcessEdge runs the split-accumulate-compile-subtract algorithm over
// e's step sequence, appending one XDD to e's time bag per segment.
func (p *Processor) ProcessEdge(e Edge) error {
	state := p.rman.InitialState(p.mgr)
	timeIdx := p.rman.TimeIndex()

	var buf []xsteps.Step
	flush := func() error {
		m, err := p.compiler.CompileSequence(buf)
		if err != nil {
			return err
		}
		if p.stats != nil {
			p.stats.Record(m)
		}
		xmatrix.VecTimesMat(state, m)
		root := state.At(timeIdx).Root()
		if root.MaxLeaf() == xdd.BOT {
			panic("localtime: time coordinate is infeasible on every path after compiling a segment")
		}
		if root.HighmostLeaf() == xdd.BOT {
			p.logger.Printf("localtime: all-events-true path is infeasible after compiling a segment\n")
		}
		e.AddTime(state.At(timeIdx))
		buf = buf[:0]
		return nil
	}

	for _, s := range e.Steps() {
		if s.Kind == xsteps.Split {
			if err := flush(); err != nil {
				return err
			}
			segmentTime := state.At(timeIdx)
			for i := 0; i < state.Len(); i++ {
				state.Set(i, p.mgr.Sub(state.At(i), segmentTime))
			}
			continue
		}
		buf = append(buf, s)
	}
	if len(buf) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}
