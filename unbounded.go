package minne

import "context"

// unboundedCache stores every inserted entry until removed or cleared. It is
// the baseline policy: the sharded map plus counters, nothing else.
type unboundedCache[K comparable, V any] struct {
	*engine[K, V]
}

func (c *unboundedCache[K, V]) Insert(key K, value V) {
	c.entries.Set(key, value)
}

func (c *unboundedCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries.Get(key)
	if ok {
		c.stats.addHit()
	} else {
		c.stats.addMiss()
	}
	return v, ok
}

func (c *unboundedCache[K, V]) Remove(key K) (V, bool) {
	return c.entries.Delete(key)
}

func (c *unboundedCache[K, V]) Clear() {
	c.entries.Clear()
	c.stats.reset()
}

func (c *unboundedCache[K, V]) Read(ctx context.Context, name string) error {
	pairs, err := c.loadEntries(ctx, name)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		c.Insert(p.key, p.value)
	}
	return nil
}
