package export

import "gopkg.in/yaml.v3"

// YAML is a Codec backed by gopkg.in/yaml.v3. The zero value is ready to use.
type YAML[V any] struct{}

func (YAML[V]) Encode(v V) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML[V]) Decode(b []byte) (V, error) {
	var v V
	err := yaml.Unmarshal(b, &v)
	return v, err
}
