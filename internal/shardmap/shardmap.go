// Package shardmap provides a generic hash map partitioned into
// independently locked shards. Operations on keys that hash to different
// shards never contend; cross-shard operations (Len, Clear, Range) visit
// shards one at a time and never hold a global lock, so their result may be
// momentarily inconsistent under concurrent mutation.
package shardmap

import "sync"

// DefaultShards is a reasonable shard count for general workloads.
const DefaultShards = 32

type shard[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// Map is a sharded key/value map safe for concurrent use.
type Map[K comparable, V any] struct {
	shards []shard[K, V]
	mask   uint64
	hash   func(K) uint64
}

// New builds a Map with the given shard count and key hash. shards is
// rounded up to the next power of two; values < 1 fall back to
// DefaultShards. hash must be non-nil and stable for the Map's lifetime.
func New[K comparable, V any](shards int, hash func(K) uint64) *Map[K, V] {
	if hash == nil {
		panic("shardmap: nil hash func")
	}
	if shards < 1 {
		shards = DefaultShards
	}
	n := 1
	for n < shards {
		n <<= 1
	}
	m := &Map[K, V]{
		shards: make([]shard[K, V], n),
		mask:   uint64(n - 1),
		hash:   hash,
	}
	for i := range m.shards {
		m.shards[i].items = make(map[K]V)
	}
	return m
}

func (m *Map[K, V]) shardFor(key K) *shard[K, V] {
	return &m.shards[m.hash(key)&m.mask]
}

// Set stores value under key, overwriting any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	s := m.shardFor(key)
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
}

// Get returns a copy of the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	return v, ok
}

// Delete detaches key and returns the removed value, if any.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	v, ok := s.items[key]
	if ok {
		delete(s.items, key)
	}
	s.mu.Unlock()
	return v, ok
}

// Len sums live entries across shards. Under concurrent mutation the sum is
// a snapshot aggregate, not a linearizable count.
func (m *Map[K, V]) Len() int {
	n := 0
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}

// Clear removes all entries, shard by shard.
func (m *Map[K, V]) Clear() {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		clear(s.items)
		s.mu.Unlock()
	}
}

// Range calls fn for every entry until fn returns false. Each shard's read
// lock is held only while that shard is scanned; fn must not call back into
// the Map.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		for k, v := range s.items {
			if !fn(k, v) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}
