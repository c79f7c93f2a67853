// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cfg

import (
	"github.com/dalzilio/xengine/localtime"
	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xsteps"
)

// Edge is a concrete localtime.Edge: a fixed step sequence plus the time
// bag the processor fills in as it runs.
type Edge struct {
	Label string
	steps []xsteps.Step
	times []xdd.XDD
}

// NewEdge builds an Edge with the given label (used only for diagnostics)
// and step sequence.
func NewEdge(label string, steps ...xsteps.Step) *Edge {
	return &Edge{Label: label, steps: steps}
}

// Steps implements localtime.Edge.
func (e *Edge) Steps() []xsteps.Step { return e.steps }

// AddTime implements localtime.Edge.
func (e *Edge) AddTime(x xdd.XDD) { e.times = append(e.times, x) }

// String names e by its label, letting localtime's worker debug log
// identify which edge it is processing.
func (e *Edge) String() string { return e.Label }

// Times returns the time bag accumulated by the processor, in segment
// order.
func (e *Edge) Times() []xdd.XDD { return e.times }

// Block is a concrete localtime.Block: a CFG node with a basic-ness flag
// and a fixed list of in-edges.
type Block struct {
	Label   string
	basic   bool
	inEdges []localtime.Edge
}

// NewBlock builds a Block. basic distinguishes real, instruction-carrying
// blocks from synthetic entry/exit blocks that the processor skips.
func NewBlock(label string, basic bool, inEdges ...localtime.Edge) *Block {
	return &Block{Label: label, basic: basic, inEdges: inEdges}
}

// Basic implements localtime.Block.
func (b *Block) Basic() bool { return b.basic }

// InEdges implements localtime.Block.
func (b *Block) InEdges() []localtime.Edge { return b.inEdges }

// Collection is a concrete localtime.Graph: an ordered, fixed list of
// blocks.
type Collection struct {
	blocks []localtime.Block
}

// NewCollection builds a Collection from blocks, in program order.
func NewCollection(blocks ...localtime.Block) *Collection {
	return &Collection{blocks: blocks}
}

// Blocks implements localtime.Graph.
func (c *Collection) Blocks() []localtime.Block { return c.blocks }
