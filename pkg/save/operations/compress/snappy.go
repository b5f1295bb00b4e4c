package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/danielrab/save-monger/pkg/save/operations"
)

// snappyMaxExpansion bounds decoded/encoded size for a Snappy block: the
// densest element is a 3-byte copy producing 64 bytes.
const snappyMaxExpansion = 22

func init() {
	operations.Register(NewSnappyOperation())
}

// SnappyOperation handles raw (unframed) Snappy blocks, the codec the
// game wraps its save payload in. s2 decodes every Snappy block.
type SnappyOperation struct {
	operations.BaseOperation
}

// NewSnappyOperation creates a new Snappy operation
func NewSnappyOperation() *SnappyOperation {
	return &SnappyOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_SNAPPY,
			OpName: "SNAPPY",
		},
	}
}

// Apply encodes data as a Snappy-compatible raw block
func (o *SnappyOperation) Apply(input []byte) ([]byte, error) {
	return s2.EncodeSnappy(nil, input), nil
}

// Reverse decodes a raw Snappy block
func (o *SnappyOperation) Reverse(input []byte) ([]byte, error) {
	n, err := s2.DecodedLen(input)
	if err != nil {
		return nil, fmt.Errorf("reading snappy block length: %w", err)
	}
	if uint64(n) > uint64(len(input))*snappyMaxExpansion {
		return nil, fmt.Errorf("snappy block claims %d bytes from %d encoded: %w", n, len(input), s2.ErrCorrupt)
	}
	data, err := s2.Decode(nil, input)
	if err != nil {
		return nil, fmt.Errorf("decoding snappy block: %w", err)
	}
	return data, nil
}
