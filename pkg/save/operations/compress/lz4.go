package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/danielrab/save-monger/pkg/save/operations"
)

func init() {
	operations.Register(NewLZ4Operation())
}

// LZ4Operation implements LZ4 compression using the self-describing
// frame format, so a dump can be inflated without knowing its size.
type LZ4Operation struct {
	operations.BaseOperation
}

// NewLZ4Operation creates a new LZ4 operation
func NewLZ4Operation() *LZ4Operation {
	return &LZ4Operation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_LZ4,
			OpName: "LZ4",
		},
	}
}

// Apply compresses data into an LZ4 frame
func (o *LZ4Operation) Apply(input []byte) ([]byte, error) {
	var buf bytes.Buffer

	lw := lz4.NewWriter(&buf)
	if _, err := lw.Write(input); err != nil {
		lw.Close()
		return nil, fmt.Errorf("writing lz4 data: %w", err)
	}
	if err := lw.Close(); err != nil {
		return nil, fmt.Errorf("closing lz4 writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Reverse decompresses an LZ4 frame
func (o *LZ4Operation) Reverse(input []byte) ([]byte, error) {
	data, err := io.ReadAll(lz4.NewReader(bytes.NewReader(input)))
	if err != nil {
		return nil, fmt.Errorf("reading lz4 data: %w", err)
	}
	return data, nil
}
