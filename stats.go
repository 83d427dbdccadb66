package minne

import "sync/atomic"

// stats holds the hit/miss counters. Increments are independent atomics with
// no ordering relative to map mutation: totals may be momentarily
// inconsistent with Len under concurrent access. Counters only reset on a
// cache-wide Clear.
type stats struct {
	hits   atomic.Uint64
	misses atomic.Uint64
}

func (s *stats) addHit()  { s.hits.Add(1) }
func (s *stats) addMiss() { s.misses.Add(1) }

func (s *stats) reset() {
	s.hits.Store(0)
	s.misses.Store(0)
}
