package minne

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// defaultHasher picks the shard hash for K: xxhash for string keys, a
// per-cache seeded maphash for every other comparable key type.
func defaultHasher[K comparable]() func(K) uint64 {
	var zero K
	if _, ok := any(zero).(string); ok {
		return func(k K) uint64 { return xxhash.Sum64String(any(k).(string)) }
	}
	seed := maphash.MakeSeed()
	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}
