package operations

import (
	"fmt"
	"strings"
	"sync"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// Operation identifiers. The save container itself always uses OP_SNAPPY;
// the others are offered for compressing exported dumps.
const (
	// No operation - raw data
	OP_NONE = 0x00

	// Compression operations (0x10-0x2F)
	OP_GZIP   = 0x10 // GZIP compression
	OP_BZIP2  = 0x13 // BZIP2 compression
	OP_LZ4    = 0x19 // LZ4 frame compression
	OP_ZSTD   = 0x1B // Zstandard compression
	OP_SNAPPY = 0x1D // Snappy raw block (save payload)
)

// Operation is a reversible byte-block transformation.
type Operation interface {
	// ID returns the operation identifier (e.g., OP_GZIP)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Apply applies the operation to input data
	Apply(input []byte) ([]byte, error)

	// Reverse reverses the operation (e.g., decompress for compression)
	Reverse(input []byte) ([]byte, error)

	// CanReverse returns true if the operation is reversible
	CanReverse() bool
}

// BaseOperation provides common functionality for operations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

func (o *BaseOperation) CanReverse() bool {
	return true
}

var (
	registryMu sync.RWMutex
	registry   = make(map[uint8]Operation)
)

// Register registers an operation implementation
func Register(op Operation) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	op, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", saveerrors.ErrUnknownOperation, id)
	}
	return op, nil
}

// Lookup retrieves an operation by its case-insensitive name.
func Lookup(name string) (Operation, error) {
	id, ok := namedOperations[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", saveerrors.ErrUnknownOperation, name)
	}
	return Get(id)
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_GZIP:
		return "GZIP"
	case OP_BZIP2:
		return "BZIP2"
	case OP_LZ4:
		return "LZ4"
	case OP_ZSTD:
		return "ZSTD"
	case OP_SNAPPY:
		return "SNAPPY"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}

var namedOperations = map[string]uint8{
	"GZIP":   OP_GZIP,
	"BZIP2":  OP_BZIP2,
	"LZ4":    OP_LZ4,
	"ZSTD":   OP_ZSTD,
	"SNAPPY": OP_SNAPPY,
}
