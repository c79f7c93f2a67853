// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"sync"
	"sync/atomic"
)

// opsCache memoizes the algebra operators on (op-tag, root(a), root(b)).
// The cache is a plain sync.Map keyed by a small comparable struct: node
// identity is a pointer, so no array-backed hash chain is needed, and
// racing insertions of the same key are permitted to let either value
// survive, which is exactly LoadOrStore's contract for equal values.
//
// sync.Map has no notion of capacity, so the size hint is enforced by
// hand: each table tracks its own approximate entry count and is flushed
// back to empty once it grows past the limit, trading a burst of
// recomputation for a bounded memory footprint. A flush only discards
// memoized results, never correctness: every eviction is safe to
// recompute from the children.
type opsCache struct {
	apply    sync.Map // applyKey -> *Node
	restrict sync.Map // restrictKey -> *Node

	limit     int64
	applyN    atomic.Int64
	restrictN atomic.Int64

	hits   atomic.Int64
	misses atomic.Int64
}

type applyKey struct {
	op   Op
	a, b *Node
}

type restrictKey struct {
	v    Var
	val  bool
	node *Node
}

const defaultCachesize = 10000

func newOpsCache(hint int) *opsCache {
	if hint <= 0 {
		hint = defaultCachesize
	}
	return &opsCache{limit: int64(hint)}
}

func (c *opsCache) getApply(op Op, a, b *Node) (*Node, bool) {
	v, ok := c.apply.Load(applyKey{op, a, b})
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return v.(*Node), true
}

func (c *opsCache) putApply(op Op, a, b *Node, res *Node) {
	if _, loaded := c.apply.LoadOrStore(applyKey{op, a, b}, res); loaded {
		return
	}
	if c.applyN.Add(1) > c.limit {
		c.flush(&c.apply, &c.applyN)
	}
}

func (c *opsCache) getRestrict(v Var, val bool, n *Node) (*Node, bool) {
	r, ok := c.restrict.Load(restrictKey{v, val, n})
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return r.(*Node), true
}

func (c *opsCache) putRestrict(v Var, val bool, n *Node, res *Node) {
	if _, loaded := c.restrict.LoadOrStore(restrictKey{v, val, n}, res); loaded {
		return
	}
	if c.restrictN.Add(1) > c.limit {
		c.flush(&c.restrict, &c.restrictN)
	}
}

// flush empties table and resets its entry counter. Concurrent callers may
// race to flush the same table; that is harmless, since a flush only ever
// discards cached results.
func (c *opsCache) flush(table *sync.Map, n *atomic.Int64) {
	table.Range(func(k, _ any) bool {
		table.Delete(k)
		return true
	})
	n.Store(0)
}
