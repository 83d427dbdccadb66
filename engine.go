package minne

import (
	"github.com/unkn0wn-root/minne/codec"
	"github.com/unkn0wn-root/minne/internal/shardmap"
	"github.com/unkn0wn-root/minne/snapstore"
)

// engine bundles the state every policy shares: the sharded entry map, the
// hit/miss counters, the snapshot codecs and store, and the logger.
type engine[K comparable, V any] struct {
	entries *shardmap.Map[K, V]
	stats   stats
	keys    codec.Codec[K]
	values  codec.Codec[V]
	store   snapstore.Store
	log     Logger
}

func newEngine[K comparable, V any](opts Options[K, V]) (*engine[K, V], error) {
	keys := opts.KeyCodec
	if keys == nil {
		c, err := codec.NewCBOR[K](false)
		if err != nil {
			return nil, err
		}
		keys = c
	}
	values := opts.ValueCodec
	if values == nil {
		c, err := codec.NewCBOR[V](false)
		if err != nil {
			return nil, err
		}
		values = c
	}

	hash := opts.Hasher
	if hash == nil {
		hash = defaultHasher[K]()
	}

	return &engine[K, V]{
		entries: shardmap.New[K, V](opts.Shards, hash),
		keys:    keys,
		values:  values,
		store:   coalesce[snapstore.Store](opts.Store, snapstore.File{}),
		log:     coalesce[Logger](opts.Logger, NopLogger{}),
	}, nil
}

func (e *engine[K, V]) Len() int      { return e.entries.Len() }
func (e *engine[K, V]) IsEmpty() bool { return e.entries.Len() == 0 }

func (e *engine[K, V]) Hits() uint64   { return e.stats.hits.Load() }
func (e *engine[K, V]) Misses() uint64 { return e.stats.misses.Load() }

func (e *engine[K, V]) Enabled() bool { return true }
