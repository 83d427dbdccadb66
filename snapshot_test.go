package minne

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/unkn0wn-root/minne/internal/wire"
	"github.com/unkn0wn-root/minne/snapstore"
)

// memStore keeps snapshots in memory so tests don't need the filesystem.
type memStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

var _ snapstore.Store = (*memStore)(nil)

func newMemStore() *memStore { return &memStore{m: make(map[string][]byte)} }

func (s *memStore) Write(_ context.Context, name string, payload []byte) error {
	s.mu.Lock()
	s.m[name] = append([]byte(nil), payload...)
	s.mu.Unlock()
	return nil
}

func (s *memStore) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.m[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return b, nil
}

// errStore fails every operation.
type errStore struct{ err error }

func (s errStore) Write(context.Context, string, []byte) error { return s.err }
func (s errStore) Read(context.Context, string) ([]byte, error) {
	return nil, s.err
}

type user struct {
	ID   int    `cbor:"id"`
	Name string `cbor:"name"`
}

// Write to a file, read into a fresh cache of the same policy: same pairs.
func TestSnapshotFileRoundTrip(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "cache.snap")

	src, err := NewUnbounded[int, string](Options[int, string]{})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	src.Insert(1, "one")
	src.Insert(2, "two")

	if err := src.Write(ctx, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	dst, err := NewUnbounded[int, string](Options[int, string]{})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	if err := dst.Read(ctx, path); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if dst.Len() != 2 {
		t.Fatalf("Len = %d, want 2", dst.Len())
	}
	if got, ok := dst.Get(1); !ok || got != "one" {
		t.Fatalf("Get(1) = (%q, %v), want (one, true)", got, ok)
	}
	if got, ok := dst.Get(2); !ok || got != "two" {
		t.Fatalf("Get(2) = (%q, %v), want (two, true)", got, ok)
	}
}

func TestSnapshotRoundTripStructValues(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()

	src, err := NewLRU[string, user](10, Options[string, user]{Store: store})
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	want := map[string]user{
		"u:1": {ID: 1, Name: "Ada"},
		"u:2": {ID: 2, Name: "Grace"},
		"u:3": {ID: 3, Name: "Edsger"},
	}
	for k, v := range want {
		src.Insert(k, v)
	}

	if err := src.Write(ctx, "users"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	dst, err := NewLRU[string, user](10, Options[string, user]{Store: store})
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	if err := dst.Read(ctx, "users"); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if dst.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", dst.Len(), len(want))
	}
	for k, v := range want {
		if got, ok := dst.Get(k); !ok || got != v {
			t.Fatalf("Get(%s) = (%+v, %v), want (%+v, true)", k, got, ok, v)
		}
	}
}

// Reading a path that does not exist fails and leaves the cache empty.
func TestReadMissingFile(t *testing.T) {
	c, err := NewUnbounded[int, string](Options[int, string]{})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}

	path := filepath.Join(t.TempDir(), "does-not-exist")
	rerr := c.Read(t.Context(), path)
	if rerr == nil {
		t.Fatalf("Read on missing file succeeded")
	}

	var serr *SnapshotError
	if !errors.As(rerr, &serr) || serr.Op != "read" {
		t.Fatalf("error = %v, want *SnapshotError with Op=read", rerr)
	}
	if !errors.Is(rerr, os.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped os.ErrNotExist", rerr)
	}
	if !c.IsEmpty() {
		t.Fatalf("cache not empty after failed read")
	}
}

// A zero-byte file is a distinct failure, not "zero entries".
func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.snap")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := NewUnbounded[int, string](Options[int, string]{})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}

	rerr := c.Read(t.Context(), path)
	if !errors.Is(rerr, ErrEmptySnapshot) {
		t.Fatalf("error = %v, want ErrEmptySnapshot", rerr)
	}
	if !c.IsEmpty() {
		t.Fatalf("cache not empty after failed read")
	}
}

// A snapshot of an empty cache is a valid, non-empty payload that loads to
// zero entries without error.
func TestWriteEmptyCache(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()

	src, err := NewUnbounded[int, string](Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	if err := src.Write(ctx, "empty"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(store.m["empty"]) == 0 {
		t.Fatalf("empty cache produced a zero-byte payload")
	}

	dst, err := NewUnbounded[int, string](Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	if err := dst.Read(ctx, "empty"); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !dst.IsEmpty() {
		t.Fatalf("Len = %d after loading empty snapshot", dst.Len())
	}
}

func TestReadCorruptPayloadLeavesCacheUntouched(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()
	store.m["bad"] = []byte("definitely not a snapshot")

	c, err := NewUnbounded[int, string](Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	c.Insert(1, "one")

	rerr := c.Read(ctx, "bad")
	if !errors.Is(rerr, wire.ErrCorrupt) {
		t.Fatalf("error = %v, want wrapped wire.ErrCorrupt", rerr)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (no partial merge)", c.Len())
	}
	if got, _ := c.Get(1); got != "one" {
		t.Fatalf("existing entry mutated: %q", got)
	}
}

// Loading merges into live entries; loaded values win on duplicate keys.
func TestReadMergesLaterInsertWins(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()

	src, err := NewUnbounded[int, string](Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	src.Insert(1, "snapshot-one")
	src.Insert(2, "snapshot-two")
	if err := src.Write(ctx, "merge"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	dst, err := NewUnbounded[int, string](Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	dst.Insert(1, "live-one")
	dst.Insert(9, "live-nine")

	if err := dst.Read(ctx, "merge"); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got, _ := dst.Get(1); got != "snapshot-one" {
		t.Fatalf("Get(1) = %q, want loaded value to win", got)
	}
	if got, _ := dst.Get(9); got != "live-nine" {
		t.Fatalf("Get(9) = %q, live entry should survive", got)
	}
	if dst.Len() != 3 {
		t.Fatalf("Len = %d, want 3", dst.Len())
	}
}

// Loading a snapshot larger than the LRU capacity evicts down to capacity.
func TestLRUReadEnforcesCapacity(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()

	src, err := NewUnbounded[int, string](Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	for i := 0; i < 10; i++ {
		src.Insert(i, "v")
	}
	if err := src.Write(ctx, "big"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	dst, err := NewLRU[int, string](3, Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	if err := dst.Read(ctx, "big"); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if dst.Len() != 3 {
		t.Fatalf("Len = %d, want capacity 3", dst.Len())
	}
}

func TestWriteFailureSurfacesAndLeavesSourceUntouched(t *testing.T) {
	sentinel := errors.New("disk on fire")
	c, err := NewUnbounded[int, string](Options[int, string]{Store: errStore{err: sentinel}})
	if err != nil {
		t.Fatalf("NewUnbounded: %v", err)
	}
	c.Insert(1, "one")

	werr := c.Write(t.Context(), "whatever")
	if !errors.Is(werr, sentinel) {
		t.Fatalf("error = %v, want wrapped sentinel", werr)
	}

	var serr *SnapshotError
	if !errors.As(werr, &serr) || serr.Op != "write" {
		t.Fatalf("error = %v, want *SnapshotError with Op=write", werr)
	}
	if c.Len() != 1 {
		t.Fatalf("source mutated by failed write")
	}
}

// Snapshot operations never touch the hit/miss counters.
func TestSnapshotDoesNotAffectCounters(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()

	src, err := NewLRU[int, string](10, Options[int, string]{Store: store})
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	src.Insert(1, "one")
	src.Get(1)
	src.Get(2)

	if err := src.Write(ctx, "s"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := src.Read(ctx, "s"); err != nil {
		t.Fatalf("Read: %v", err)
	}

	if src.Hits() != 1 || src.Misses() != 1 {
		t.Fatalf("counters changed: hits=%d misses=%d", src.Hits(), src.Misses())
	}
}
