// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xsteps

import "github.com/dalzilio/xengine/xdd"

// Kind identifies the tag of a Step.
type Kind int

const (
	Use     Kind = iota // consume a resource for a duration
	Release             // release a resource
	Branch              // conditional on an event variable
	Split               // partition boundary, handled by the timing processor, not the compiler
)

var kindNames = [...]string{
	Use:     "use",
	Release: "release",
	Branch:  "branch",
	Split:   "split",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Step is one tagged pipeline action in an edge's step sequence. Resource
// and Duration are meaningful for Use/Release; Event, LowDelta and
// HighDelta are meaningful for Branch. The zero value of Step is a Use
// step on resource 0, which is never produced by a real front-end but is
// harmless as a zero value.
type Step struct {
	Kind      Kind
	Resource  int     // resource position, for Use/Release
	Duration  int64   // duration, for Use
	Event     xdd.Var // branching variable, for Branch
	LowDelta  int64   // time added when Event is false, for Branch
	HighDelta int64   // time added when Event is true, for Branch
}

// UseStep builds a Use step occupying resource r for duration d.
func UseStep(r int, d int64) Step {
	return Step{Kind: Use, Resource: r, Duration: d}
}

// ReleaseStep builds a Release step freeing resource r.
func ReleaseStep(r int) Step {
	return Step{Kind: Release, Resource: r}
}

// BranchStep builds a Branch step conditioned on event variable v: it adds
// lowDelta to the elapsed time when v is false and highDelta when v is
// true.
func BranchStep(v xdd.Var, lowDelta, highDelta int64) Step {
	return Step{Kind: Branch, Event: v, LowDelta: lowDelta, HighDelta: highDelta}
}

// SplitStep builds a Split marker.
func SplitStep() Step {
	return Step{Kind: Split}
}
