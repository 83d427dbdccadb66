package codec

// Bytes is an identity codec for []byte values; Encode/Decode return the
// input unchanged. Use it when keys or values are already raw bytes and only
// the snapshot framing is needed.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts Go strings to bytes and back. Assumes UTF-8 by convention
// and performs no validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
