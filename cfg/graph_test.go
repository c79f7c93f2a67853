// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cfg

import (
	"testing"

	"github.com/dalzilio/xengine/xsteps"
)

func TestCollectionKeepsBasicFlags(t *testing.T) {
	entry := NewBlock("entry", false)
	body := NewBlock("body", true, NewEdge("e0", xsteps.UseStep(0, 1)))
	exit := NewBlock("exit", false)
	coll := NewCollection(entry, body, exit)

	var basic int
	for _, b := range coll.Blocks() {
		if b.Basic() {
			basic++
		}
	}
	if basic != 1 {
		t.Errorf("expected exactly one basic block, got %d", basic)
	}
}

func TestNewEdgeHasEmptyTimeBag(t *testing.T) {
	e := NewEdge("e0")
	if len(e.Times()) != 0 {
		t.Errorf("new edge: expected an empty time bag")
	}
}
