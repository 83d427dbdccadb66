// Package codec defines how cache keys and values are converted to and from
// the byte records stored inside snapshot payloads.
package codec

// Codec encodes/decodes values of type T to []byte for snapshot storage.
// Implementations must be safe for concurrent use.
type Codec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}
