package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/danielrab/save-monger/pkg/save/operations"
)

// zstd.Encoder and zstd.Decoder are safe for concurrent use, so one of
// each is shared by every ZstdOperation.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}

	operations.Register(NewZstdOperation())
}

// ZstdOperation implements Zstandard compression
type ZstdOperation struct {
	operations.BaseOperation
}

// NewZstdOperation creates a new ZSTD operation
func NewZstdOperation() *ZstdOperation {
	return &ZstdOperation{
		BaseOperation: operations.BaseOperation{
			OpID:   operations.OP_ZSTD,
			OpName: "ZSTD",
		},
	}
}

// Apply compresses data using ZSTD
func (o *ZstdOperation) Apply(input []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(input, nil), nil
}

// Reverse decompresses ZSTD data
func (o *ZstdOperation) Reverse(input []byte) ([]byte, error) {
	data, err := zstdDecoder.DecodeAll(input, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return data, nil
}
