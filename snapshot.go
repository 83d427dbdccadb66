package minne

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/minne/internal/wire"
)

type pair[K comparable, V any] struct {
	key   K
	value V
}

// Write drains the entry map (shard by shard, no global lock), encodes every
// pair with the configured codecs, frames the result and hands it to the
// snapshot store. Entries are collected first so no shard lock is held while
// codecs run.
func (e *engine[K, V]) Write(ctx context.Context, name string) error {
	pairs := make([]pair[K, V], 0, e.entries.Len())
	e.entries.Range(func(k K, v V) bool {
		pairs = append(pairs, pair[K, V]{key: k, value: v})
		return true
	})

	records := make([]wire.Entry, 0, len(pairs))
	for _, p := range pairs {
		kb, err := e.keys.Encode(p.key)
		if err != nil {
			return &SnapshotError{Op: "write", Name: name, Err: fmt.Errorf("encode key: %w", err)}
		}
		vb, err := e.values.Encode(p.value)
		if err != nil {
			return &SnapshotError{Op: "write", Name: name, Err: fmt.Errorf("encode value: %w", err)}
		}
		records = append(records, wire.Entry{Key: kb, Value: vb})
	}

	payload := wire.EncodeSnapshot(records)
	if err := e.store.Write(ctx, name, payload); err != nil {
		e.log.Warn("snapshot write failed", Fields{"name": name, "err": err})
		return &SnapshotError{Op: "write", Name: name, Err: err}
	}
	e.log.Debug("snapshot written", Fields{"name": name, "entries": len(records), "bytes": len(payload)})
	return nil
}

// loadEntries fetches and fully decodes a snapshot. Nothing is inserted
// here: the caller merges the returned pairs through its insert path only
// after the whole payload decoded, so a failed read never partially mutates
// the cache.
func (e *engine[K, V]) loadEntries(ctx context.Context, name string) ([]pair[K, V], error) {
	payload, err := e.store.Read(ctx, name)
	if err != nil {
		return nil, &SnapshotError{Op: "read", Name: name, Err: err}
	}
	if len(payload) == 0 {
		// A written empty cache still produces the framing header, so zero
		// bytes means the snapshot never made it to disk intact.
		return nil, &SnapshotError{Op: "read", Name: name, Err: ErrEmptySnapshot}
	}

	records, err := wire.DecodeSnapshot(payload)
	if err != nil {
		return nil, &SnapshotError{Op: "read", Name: name, Err: err}
	}

	pairs := make([]pair[K, V], 0, len(records))
	for _, r := range records {
		k, err := e.keys.Decode(r.Key)
		if err != nil {
			return nil, &SnapshotError{Op: "read", Name: name, Err: fmt.Errorf("decode key: %w", err)}
		}
		v, err := e.values.Decode(r.Value)
		if err != nil {
			return nil, &SnapshotError{Op: "read", Name: name, Err: fmt.Errorf("decode value: %w", err)}
		}
		pairs = append(pairs, pair[K, V]{key: k, value: v})
	}

	e.log.Debug("snapshot loaded", Fields{"name": name, "entries": len(pairs), "bytes": len(payload)})
	return pairs, nil
}
