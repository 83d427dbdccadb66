package minne

import (
	"errors"
	"fmt"
)

// ErrEmptySnapshot reports a snapshot payload of zero bytes. A correctly
// written snapshot of an empty cache still carries the framing header, so an
// empty payload is corruption, not "no entries".
var ErrEmptySnapshot = errors.New("minne: snapshot payload is empty")

// SnapshotError wraps any failure of Write or Read: store I/O, an empty
// payload, framing corruption, or a codec error. Use errors.Is/As on the
// wrapped cause to distinguish them.
type SnapshotError struct {
	Op   string // "write" or "read"
	Name string // snapshot name (file path or store key)
	Err  error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("minne: snapshot %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }
