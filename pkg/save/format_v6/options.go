package format_v6

import (
	"github.com/danielrab/save-monger/pkg/save/operations/compress"
)

// Decompressor inflates the block that follows the version byte.
// Every operations.Operation satisfies it.
type Decompressor interface {
	Reverse(input []byte) ([]byte, error)
}

// Options tune a decode. The zero value decodes full wire paths with the
// Snappy block codec.
type Options struct {
	// PathMode selects full polylines or endpoints only.
	PathMode PathMode

	// Decompressor replaces the Snappy codec, mostly for tests.
	Decompressor Decompressor

	// OnStage, when set, is called after each stage completes with the
	// number of payload bytes consumed so far.
	OnStage func(stage Stage, consumed int)
}

func (o Options) withDefaults() Options {
	if o.Decompressor == nil {
		o.Decompressor = compress.NewSnappyOperation()
	}
	return o
}

func (o Options) stageDone(stage Stage, consumed int) {
	if o.OnStage != nil {
		o.OnStage(stage, consumed)
	}
}
