package export

import (
	"fmt"

	"github.com/danielrab/save-monger/pkg/save/format_v6"
	"github.com/danielrab/save-monger/pkg/save/operations"
)

// Result is an encoded, possibly compressed, circuit dump.
type Result struct {
	Data      []byte
	Format    string
	Chain     []uint8
	Extension string
}

// Encode serializes circuit in the named format, then applies the
// compression chain (e.g. "zstd", "gzip|bzip2", "raw").
func Encode(circuit *format_v6.Circuit, formatName, compression string) (*Result, error) {
	f, err := Lookup(formatName)
	if err != nil {
		return nil, err
	}
	chain, err := operations.ParseChain(compression)
	if err != nil {
		return nil, fmt.Errorf("parsing compression %q: %w", compression, err)
	}

	data, err := f.Codec.Encode(circuit)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", f.Name, err)
	}
	data, err = operations.ApplyChain(data, chain)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:      data,
		Format:    f.Name,
		Chain:     chain,
		Extension: f.Extension + operations.Extension(chain),
	}, nil
}

// Decode reverses Encode.
func Decode(data []byte, formatName, compression string) (*format_v6.Circuit, error) {
	f, err := Lookup(formatName)
	if err != nil {
		return nil, err
	}
	chain, err := operations.ParseChain(compression)
	if err != nil {
		return nil, fmt.Errorf("parsing compression %q: %w", compression, err)
	}
	data, err = operations.ReverseChain(data, chain)
	if err != nil {
		return nil, err
	}
	return f.Codec.Decode(data)
}
