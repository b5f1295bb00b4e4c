package operations

import (
	"fmt"
	"strings"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// MaxChainLength bounds how many operations a chain may hold.
const MaxChainLength = 8

// ParseChain parses a pipe-separated operation string such as
// "zstd" or "gzip|bzip2". An empty string or "raw" yields an empty chain.
// Every named operation must be registered.
func ParseChain(opString string) ([]uint8, error) {
	opString = strings.TrimSpace(opString)
	if opString == "" || strings.EqualFold(opString, "raw") {
		return nil, nil
	}

	if ops, ok := namedChains[strings.ToLower(opString)]; ok {
		return ops, nil
	}

	var ops []uint8
	for _, part := range strings.Split(opString, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		op, err := Lookup(part)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op.ID())
	}

	if len(ops) > MaxChainLength {
		return nil, fmt.Errorf("maximum %d operations allowed, got %d", MaxChainLength, len(ops))
	}
	return ops, nil
}

// ChainToString converts a chain to its human-readable form.
func ChainToString(ops []uint8) string {
	if len(ops) == 0 {
		return "raw"
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = strings.ToLower(GetName(op))
	}
	return strings.Join(names, "|")
}

// Extension returns the file suffix conventionally used for a chain.
func Extension(ops []uint8) string {
	var b strings.Builder
	for _, op := range ops {
		b.WriteString(extensions[op])
	}
	return b.String()
}

// Named chains for parsing
var namedChains = map[string][]uint8{
	"gzip":   {OP_GZIP},
	"gz":     {OP_GZIP},
	"bzip2":  {OP_BZIP2},
	"bz2":    {OP_BZIP2},
	"lz4":    {OP_LZ4},
	"zstd":   {OP_ZSTD},
	"zst":    {OP_ZSTD},
	"snappy": {OP_SNAPPY},
}

var extensions = map[uint8]string{
	OP_GZIP:   ".gz",
	OP_BZIP2:  ".bz2",
	OP_LZ4:    ".lz4",
	OP_ZSTD:   ".zst",
	OP_SNAPPY: ".sz",
}

// ApplyChain applies a chain of operations to data
func ApplyChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain reverses a chain of operations on data
func ReverseChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	// Apply operations in reverse order
	for i := len(operations) - 1; i >= 0; i-- {
		opID := operations[i]
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		if !op.CanReverse() {
			return nil, fmt.Errorf("%w: %s", saveerrors.ErrNotReversible, op.Name())
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}
