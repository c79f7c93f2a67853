// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package localtime

import (
	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xsteps"
)

// Edge is one control-flow edge carrying an ordered step sequence. AddTime
// is called once per timed segment, in segment order, to grow the edge's
// time bag (BBTIMES).
type Edge interface {
	Steps() []xsteps.Step
	AddTime(x xdd.XDD)
}

// Block is one node of the control-flow graph. Basic reports whether the
// block carries instructions; synthetic entry/exit blocks return false and
// are skipped by the processor.
type Block interface {
	Basic() bool
	InEdges() []Edge
}

// Graph is an ordered, iterable control-flow graph collection.
type Graph interface {
	Blocks() []Block
}
