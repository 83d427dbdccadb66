// Package wire implements the binary snapshot framing: a self-describing,
// length-prefixed list of (key, value) byte records. Keys and values arrive
// here already encoded by the caller's codecs; wire only frames them.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version      byte = 1
	kindSnapshot byte = 1
)

var (
	ErrCorrupt = errors.New("minne: corrupt snapshot payload")
	magic4     = [...]byte{'M', 'N', 'N', 'E'}
)

// Entry is one framed record. Key and Value are opaque codec output.
type Entry struct {
	Key   []byte
	Value []byte
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Snapshot layout:
//
//	magic(4) | ver(1) | kind(1=snapshot) | n(u32 be)
//	klen(u32 be) | key(klen) | vlen(u32 be) | value(vlen)  * n
//
// An empty cache still encodes to the 10-byte header with n=0, so a valid
// payload is never zero bytes.
func EncodeSnapshot(entries []Entry) []byte {
	total := 4 + 1 + 1 + 4
	for _, e := range entries {
		total += 4 + len(e.Key) + 4 + len(e.Value)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSnapshot)

	var u4 [4]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(entries)))
	buf.Write(u4[:])

	for _, e := range entries {
		if len(e.Key) == 0 {
			panic("minne: empty encoded key in snapshot")
		}
		binary.BigEndian.PutUint32(u4[:], uint32(len(e.Key)))
		buf.Write(u4[:])
		buf.Write(e.Key)

		binary.BigEndian.PutUint32(u4[:], uint32(len(e.Value)))
		buf.Write(u4[:])
		buf.Write(e.Value)
	}

	return buf.Bytes()
}

// DecodeSnapshot parses a payload produced by EncodeSnapshot. The whole
// payload must be consumed; trailing bytes are treated as corruption.
// Returned slices alias b.
func DecodeSnapshot(b []byte) ([]Entry, error) {
	const hdr = 4 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSnapshot {
		return nil, ErrCorrupt
	}

	off := 6

	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	// each record needs at least klen(4) + key(1) + vlen(4) bytes, so a
	// count the payload cannot hold is corruption, not an allocation hint
	if n < 0 || n > (len(b)-off)/9 {
		return nil, ErrCorrupt
	}

	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		klen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if klen <= 0 || klen > len(b)-off { // overflow-safe bound check
			return nil, ErrCorrupt
		}
		key := b[off : off+klen]
		off += klen

		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(b)-off {
			return nil, ErrCorrupt
		}
		value := b[off : off+vlen]
		off += vlen

		entries = append(entries, Entry{Key: key, Value: value})
	}

	if off != len(b) {
		return nil, ErrCorrupt
	}
	return entries, nil
}
