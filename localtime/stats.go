// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package localtime

import (
	"fmt"
	"sync"

	"github.com/dalzilio/xengine/xmatrix"
)

// Stats collects size and leaf-count distributions for compiled matrices.
// It is safe for concurrent use: Record is called once per compiled
// segment, potentially from many workers at once. Collecting statistics
// never alters a Processor's results.
type Stats struct {
	mu sync.Mutex

	running bool

	matrices  int64
	entries   int64
	totalSize int64 // sum of node counts across all recorded entries
	maxSize   int
	totalLeaf int64 // sum of leaf counts across all recorded entries
	maxLeaf   int
}

// NewStats returns an idle Stats collector. Call Start before passing it
// to WithStats.
func NewStats() *Stats {
	return &Stats{}
}

// Start marks the collector as active.
func (s *Stats) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
}

// Stop marks the collector as inactive. Record becomes a no-op until the
// next Start.
func (s *Stats) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Record folds the size and leaf-count of every entry of m into s. It is a
// no-op if the collector has not been started.
func (s *Stats) Record(m *xmatrix.Matrix) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.matrices++
	n := m.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			root := m.At(i, j).Root()
			size := root.Size()
			leaves := root.LeafCount()
			s.entries++
			s.totalSize += int64(size)
			s.totalLeaf += int64(leaves)
			if size > s.maxSize {
				s.maxSize = size
			}
			if leaves > s.maxLeaf {
				s.maxLeaf = leaves
			}
		}
	}
}

// String returns a short human-readable summary of the collected
// statistics.
func (s *Stats) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == 0 {
		return "matrices: 0  entries: 0"
	}
	return fmt.Sprintf("matrices: %d  entries: %d  avg size: %.2f  max size: %d  avg leaves: %.2f  max leaves: %d",
		s.matrices, s.entries,
		float64(s.totalSize)/float64(s.entries), s.maxSize,
		float64(s.totalLeaf)/float64(s.entries), s.maxLeaf)
}
