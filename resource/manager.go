// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package resource

import (
	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xmatrix"
)

// Manager exposes the parts of a pipeline resource model that the timing
// processor needs: how many resource slots a state vector carries, which
// one is the time coordinate, and how to build a fresh initial state for
// an edge.
type Manager interface {
	// TimeIndex returns the index of the time coordinate in a state
	// vector produced by InitialState.
	TimeIndex() int
	// Length returns the length of a state vector.
	Length() int
	// InitialState returns a fresh state vector for the start of an
	// edge: the 0-leaf at TimeIndex, with other slots set as the
	// resource model specifies.
	InitialState(mgr *xdd.Manager) *xmatrix.Vector
}
