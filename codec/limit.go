package codec

import "fmt"

// Limit wraps another codec to cap the permitted payload size at Decode
// time; Encode is forwarded unchanged. MaxDecode <= 0 disables the cap.
//
// Typical use: guard against oversized records in a snapshot coming from an
// untrusted or shared store.
type Limit[T any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[T]
	// MaxDecode is the largest payload length (in bytes) Decode accepts.
	MaxDecode int
}

func (c Limit[T]) Encode(v T) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[T]) Decode(b []byte) (T, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero T
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
