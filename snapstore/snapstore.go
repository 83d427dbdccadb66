// Package snapstore defines where encoded snapshot payloads live.
//
// Implementations must be byte-for-byte transparent: Read must return
// exactly the []byte previously passed to Write for the same name, with no
// prepended metadata, transcoding or mutation. The cache's wire-format
// validation treats foreign bytes as corruption.
package snapstore

import (
	"bufio"
	"context"
	"os"
)

// Store persists one snapshot payload per name. Names are caller-defined:
// the file store treats them as paths, the Redis store as key suffixes.
// Implementations must be safe for concurrent use.
type Store interface {
	// Write persists payload under name, replacing any previous snapshot.
	// It must not return success before the payload is fully handed off
	// (flushed to the file, acknowledged by the server).
	Write(ctx context.Context, name string, payload []byte) error

	// Read returns the payload stored under name. A missing snapshot is an
	// error, not an empty payload.
	Read(ctx context.Context, name string) ([]byte, error)
}

// File stores snapshots as plain files; name is the file path. Writes go
// through a buffered writer and are flushed before success. No atomic
// rename is performed: a crash mid-write can leave a truncated file, which
// later fails wire validation on Read.
type File struct{}

var _ Store = File{}

func (File) Write(_ context.Context, name string, payload []byte) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(payload); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (File) Read(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(name)
}
