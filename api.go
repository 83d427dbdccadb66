package minne

import (
	"context"
	"errors"

	"github.com/unkn0wn-root/minne/codec"
	"github.com/unkn0wn-root/minne/internal/order"
	"github.com/unkn0wn-root/minne/snapstore"
)

// Cache is the uniform handle over the eviction policies. The policy is
// selected once at construction and never changes for the handle's lifetime.
// All methods are safe for concurrent use; Write and Read are the only
// operations that block on external resources.
type Cache[K comparable, V any] interface {
	// Insert stores value under key, overwriting any previous value. On the
	// LRU policy the key becomes most recently used and the least recently
	// used entry is evicted if the cache is over capacity.
	Insert(key K, value V)

	// Get returns the value stored under key. A hit marks the key most
	// recently used (LRU) and increments the hit counter; a miss increments
	// the miss counter and mutates nothing else.
	Get(key K) (V, bool)

	// Remove detaches key and returns the removed value, if any. Counters
	// are not touched.
	Remove(key K) (V, bool)

	// Clear empties the cache and resets the hit/miss counters.
	Clear()

	Len() int
	IsEmpty() bool

	Hits() uint64
	Misses() uint64

	// Enabled reports whether this handle has an active policy. The handle
	// returned by Disabled reports false.
	Enabled() bool

	// Write serializes the full entry set and persists it under name in the
	// configured snapshot store. A failed write leaves the cache untouched.
	Write(ctx context.Context, name string) error

	// Read loads the snapshot stored under name and merges its entries into
	// the cache through the normal insert path. Any failure (missing or
	// empty payload, corruption, decode error) leaves the cache untouched.
	Read(ctx context.Context, name string) error
}

// Options tune a cache built by NewLRU or NewUnbounded. The zero value is
// usable: CBOR codecs, file snapshot store, no logging, default sharding.
type Options[K comparable, V any] struct {
	KeyCodec   codec.Codec[K]  // nil => CBOR
	ValueCodec codec.Codec[V]  // nil => CBOR
	Store      snapstore.Store // nil => snapstore.File{}
	Logger     Logger          // nil => NopLogger
	Shards     int             // map shard count; 0 => 32, rounded up to a power of two
	Hasher     func(K) uint64  // shard hash; nil => xxhash for strings, maphash otherwise

	// OnEvict, if set, is called after an entry is evicted from an LRU
	// cache, outside any lock. Other policies never call it.
	OnEvict func(key K, value V)
}

// NewLRU builds a cache that holds at most capacity entries, evicting the
// least recently used entry on overflow. capacity must be positive.
func NewLRU[K comparable, V any](capacity int, opts Options[K, V]) (Cache[K, V], error) {
	if capacity < 1 {
		return nil, errors.New("minne: lru capacity must be positive")
	}
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	return &lruCache[K, V]{
		engine:   e,
		capacity: capacity,
		order:    order.NewList[K](),
		onEvict:  opts.OnEvict,
	}, nil
}

// NewUnbounded builds a cache that never evicts; memory grows with the
// number of distinct keys.
func NewUnbounded[K comparable, V any](opts Options[K, V]) (Cache[K, V], error) {
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	return &unboundedCache[K, V]{engine: e}, nil
}

// Disabled returns a no-op cache: mutations do nothing, queries return zero
// values, snapshots succeed without effect. Useful as a default when caching
// is switched off.
func Disabled[K comparable, V any]() Cache[K, V] {
	return nopCache[K, V]{}
}
