// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "fmt"

// mustSameManager panics if a and b were not produced by the same Manager.
// Mixing XDDs from different managers is a programming error, not a
// recoverable one, so it is reported with panic rather than an error
// return.
func mustSameManager(a, b XDD) {
	if a.mgr != b.mgr {
		panic(fmt.Sprintf("xdd: mixing XDDs from different managers (%p, %p)", a.mgr, b.mgr))
	}
}
