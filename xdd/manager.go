// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// shardCount is the number of stripes in the unique table. Requests for
// unrelated nodes rarely land in the same stripe, which keeps lock
// contention low during parallel edge processing.
const shardCount = 64

type innerKey struct {
	v         Var
	low, high *Node
}

// shard is one stripe of the unique table, holding every canonical node
// whose hash falls in this stripe.
type shard struct {
	mu     sync.RWMutex
	inner  map[innerKey]*Node
	leaves map[Leaf]*Node
}

// Manager owns the unique table and the memoization caches for a single
// analysis run. Every Node reachable from an XDD produced by a Manager is
// owned by that Manager for its entire lifetime: there is no garbage
// collection or resizing.
type Manager struct {
	shards [shardCount]*shard

	bot, top, zero *Node

	ops *opsCache

	logger *log.Logger

	created  atomic.Uint64 // total nodes ever allocated
	lookups  atomic.Uint64 // calls to MkLeaf/MkNode
	tableHit atomic.Uint64 // lookups that found an existing node
}

// NewManager creates a Manager ready to build and memoize XDDs. The zero
// value of Manager is not usable; always construct one with NewManager.
func NewManager(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Manager{logger: cfg.logger}
	for i := range m.shards {
		m.shards[i] = &shard{
			inner:  make(map[innerKey]*Node),
			leaves: make(map[Leaf]*Node),
		}
	}
	m.ops = newOpsCache(cfg.cachesize)
	m.bot = m.newLeaf(BOT)
	m.top = m.newLeaf(TOP)
	m.zero = m.newLeaf(Zero)
	return m
}

// Bot returns the canonical BOT leaf of m.
func (m *Manager) Bot() *Node { return m.bot }

// Top returns the canonical TOP leaf of m.
func (m *Manager) Top() *Node { return m.top }

// ZeroLeaf returns the canonical 0 leaf of m.
func (m *Manager) ZeroLeaf() *Node { return m.zero }

// Logger returns the logger configured via WithLogger (a silent logger by
// default), so that packages built on top of Manager can share its debug
// output instead of opening one of their own.
func (m *Manager) Logger() *log.Logger { return m.logger }

func (m *Manager) shardFor(h uint64) *shard {
	return m.shards[h&(shardCount-1)]
}

// MkLeaf returns the unique Node carrying leaf value v. v must not be
// noLeaf; passing it is a programming error and panics.
func (m *Manager) MkLeaf(v Leaf) *Node {
	if v == noLeaf {
		panic("xdd: MkLeaf called with the reserved no-value sentinel")
	}
	switch v {
	case BOT:
		return m.bot
	case TOP:
		return m.top
	case Zero:
		return m.zero
	}
	m.lookups.Add(1)
	s := m.shardFor(leafHash(v))
	s.mu.RLock()
	if n, ok := s.leaves[v]; ok {
		s.mu.RUnlock()
		m.tableHit.Add(1)
		return n
	}
	s.mu.RUnlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.leaves[v]; ok {
		m.tableHit.Add(1)
		return n
	}
	n := &Node{variable: noVar, value: v, max: v, min: v}
	s.leaves[v] = n
	m.created.Add(1)
	m.logger.Printf("xdd: new leaf node value=%v\n", v)
	return n
}

// newLeaf is used only during Manager construction, before BOT/TOP/Zero
// exist, so it bypasses the special-case shortcuts in MkLeaf.
func (m *Manager) newLeaf(v Leaf) *Node {
	s := m.shardFor(leafHash(v))
	s.mu.Lock()
	defer s.mu.Unlock()
	n := &Node{variable: noVar, value: v, max: v, min: v}
	s.leaves[v] = n
	m.created.Add(1)
	return n
}

// MkNode returns the unique inner Node for (v, low, high). If low and high
// are the same Node the reduction rule applies and low is returned directly,
// without consulting the unique table. v must not be the reserved sentinel
// and low/high must not be nil; violating either is a programming error and
// panics.
func (m *Manager) MkNode(v Var, low, high *Node) *Node {
	if v == noVar {
		panic("xdd: MkNode called with the reserved no-var sentinel")
	}
	if low == nil || high == nil {
		panic("xdd: MkNode called with a nil child")
	}
	if low == high {
		return low
	}
	m.lookups.Add(1)
	key := innerKey{v, low, high}
	s := m.shardFor(innerHash(v, low, high))
	s.mu.RLock()
	if n, ok := s.inner[key]; ok {
		s.mu.RUnlock()
		m.tableHit.Add(1)
		return n
	}
	s.mu.RUnlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.inner[key]; ok {
		m.tableHit.Add(1)
		return n
	}
	n := &Node{
		variable: v,
		value:    noLeaf,
		low:      low,
		high:     high,
		max:      maxLeaf(low.max, high.max),
		min:      minLeaf(low.min, high.min),
	}
	s.inner[key] = n
	m.created.Add(1)
	m.logger.Printf("xdd: new inner node var=%d\n", v)
	return n
}

func maxLeaf(a, b Leaf) Leaf {
	if a > b {
		return a
	}
	return b
}

func minLeaf(a, b Leaf) Leaf {
	if a < b {
		return a
	}
	return b
}

// NodeCount returns the total number of distinct nodes (leaves and inner
// nodes) ever allocated by m.
func (m *Manager) NodeCount() int {
	return int(m.created.Load())
}

// Stats returns a short human-readable summary of the unique table's usage.
func (m *Manager) Stats() string {
	return fmt.Sprintf("created: %d  lookups: %d  hits: %d",
		m.created.Load(), m.lookups.Load(), m.tableHit.Load())
}
