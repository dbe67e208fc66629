package codec

import (
	"bytes"
	"encoding/json"
)

// JSON stores values as JSON text. It is the default codec and the format
// other services reading the same keys expect.
type JSON[V any] struct{}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// IsNull matches the JSON literal null, ignoring surrounding whitespace.
func (JSON[V]) IsNull(b []byte) bool { return bytes.Equal(bytes.TrimSpace(b), []byte("null")) }
