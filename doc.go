// Package minne implements an embedded, thread-safe key/value cache with two
// eviction policies and binary snapshotting.
//
// Components:
//   - sharded concurrent map: per-shard locking, unrelated keys never contend.
//   - policies: unbounded (no eviction) and LRU (fixed capacity, least
//     recently used entry evicted on overflow). A disabled variant turns the
//     whole cache into a no-op for "cache off" deployments.
//   - snapshots: the full entry set is framed into a length-prefixed binary
//     payload (keys/values serialized by pluggable codecs) and persisted
//     through a snapstore.Store (file by default, Redis optional). Loading
//     merges entries through the normal insert path: later insert wins, and
//     LRU eviction applies if capacity is exceeded.
//
// Consistency: hit/miss counters and the LRU recency order are maintained
// independently of the sharded map (atomics and a dedicated mutex
// respectively), so aggregate reads such as Len or Hits may be momentarily
// out of sync with each other under concurrent mutation. Per-key operations
// are serialized by the key's shard lock and never observe torn values.
package minne
