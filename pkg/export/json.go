package export

import "encoding/json"

// JSON is a Codec backed by encoding/json. The zero value is ready to use.
type JSON[V any] struct {
	Indent bool
}

func (c JSON[V]) Encode(v V) ([]byte, error) {
	if c.Indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
