package codec

import "encoding/json"

// JSON serializes values with encoding/json. Verbose on the wire but handy
// when snapshots should stay inspectable with standard tooling.
type JSON[T any] struct{}

func (JSON[T]) Encode(v T) ([]byte, error) { return json.Marshal(v) }

func (JSON[T]) Decode(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}
