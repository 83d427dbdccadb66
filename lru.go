package minne

import (
	"context"
	"sync"

	"github.com/unkn0wn-root/minne/internal/order"
)

// lruCache bounds the entry map to a fixed capacity. Recency is tracked in a
// single order.List behind its own mutex, deliberately separate from the map
// shards: map reads stay cheap and only recency bookkeeping serializes.
//
// The map and the order list are not updated in one transaction. Between the
// two mutations of an operation, a concurrent caller can observe a key in
// one structure but not the other. The window is short and self-correcting:
// a stale order entry is dropped the next time it loses an eviction race
// (the map delete finds nothing), and Len always reports the map, never the
// list.
type lruCache[K comparable, V any] struct {
	*engine[K, V]
	capacity int

	mu    sync.Mutex
	order *order.List[K]

	onEvict func(key K, value V)
}

func (c *lruCache[K, V]) Insert(key K, value V) {
	c.entries.Set(key, value)

	var victims []K
	c.mu.Lock()
	c.order.Touch(key)
	for c.order.Len() > c.capacity {
		k, ok := c.order.PopOldest()
		if !ok {
			break
		}
		victims = append(victims, k)
	}
	c.mu.Unlock()

	for _, k := range victims {
		v, ok := c.entries.Delete(k)
		if !ok {
			continue // stale order entry; already removed from the map
		}
		if c.onEvict != nil {
			c.onEvict(k, v)
		}
	}
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		c.stats.addMiss()
		var zero V
		return zero, false
	}
	c.mu.Lock()
	c.order.Touch(key)
	c.mu.Unlock()
	c.stats.addHit()
	return v, true
}

func (c *lruCache[K, V]) Remove(key K) (V, bool) {
	v, ok := c.entries.Delete(key)
	if ok {
		c.mu.Lock()
		c.order.Remove(key)
		c.mu.Unlock()
	}
	return v, ok
}

func (c *lruCache[K, V]) Clear() {
	c.entries.Clear()
	c.mu.Lock()
	c.order.Clear()
	c.mu.Unlock()
	c.stats.reset()
}

func (c *lruCache[K, V]) Read(ctx context.Context, name string) error {
	pairs, err := c.loadEntries(ctx, name)
	if err != nil {
		return err
	}
	// Merge through Insert so capacity is enforced: a snapshot larger than
	// the cache evicts down to capacity in load order.
	for _, p := range pairs {
		c.Insert(p.key, p.value)
	}
	return nil
}
