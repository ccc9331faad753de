package codec

import "encoding/json"

// JSON is the default document codec. Numbers decode as float64.
type JSON[V any] struct{}

var _ Doc = JSON[map[string]any]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
