// Package export serializes decoded circuits for other tools.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Format names a circuit codec and its file suffix.
type Format struct {
	Name      string
	Extension string
	Codec     Codec[*format_v6.Circuit]
}

var formats = map[string]Format{
	"json":    {Name: "json", Extension: ".json", Codec: JSON[*format_v6.Circuit]{Indent: true}},
	"yaml":    {Name: "yaml", Extension: ".yaml", Codec: YAML[*format_v6.Circuit]{}},
	"cbor":    {Name: "cbor", Extension: ".cbor", Codec: MustCBOR[*format_v6.Circuit]()},
	"msgpack": {Name: "msgpack", Extension: ".msgpack", Codec: Msgpack[*format_v6.Circuit]{}},
}

// Lookup returns the circuit format with the given name.
func Lookup(name string) (Format, error) {
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return Format{}, fmt.Errorf("unknown export format %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
