package minne

import "context"

// nopCache is the disabled policy: every mutation is a no-op, every query
// returns an empty result, snapshots succeed without touching anything.
type nopCache[K comparable, V any] struct{}

func (nopCache[K, V]) Insert(K, V) {}

func (nopCache[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (nopCache[K, V]) Remove(K) (V, bool) {
	var zero V
	return zero, false
}

func (nopCache[K, V]) Clear() {}

func (nopCache[K, V]) Len() int      { return 0 }
func (nopCache[K, V]) IsEmpty() bool { return true }

func (nopCache[K, V]) Hits() uint64   { return 0 }
func (nopCache[K, V]) Misses() uint64 { return 0 }

func (nopCache[K, V]) Enabled() bool { return false }

func (nopCache[K, V]) Write(context.Context, string) error { return nil }
func (nopCache[K, V]) Read(context.Context, string) error  { return nil }
