package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes values using vmihailenco/msgpack/v5. The zero value is
// ready to use. Struct tags differ from JSON; use `msgpack:"name"` tags when
// the field layout must be explicit.
type Msgpack[T any] struct{}

func (Msgpack[T]) Encode(v T) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[T]) Decode(b []byte) (T, error) {
	var v T
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
