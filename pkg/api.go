// Package pkg is the convenience facade over the save decoder.
package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/danielrab/save-monger/pkg/export"
	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

// DecodeFile reads and decodes a circuit.data file.
func DecodeFile(path string) (*format_v6.Circuit, error) {
	return DecodeFileWithOptions(path, hclog.NewNullLogger(), format_v6.Options{})
}

// DecodeFileWithLogger decodes a save file, logging progress to logger.
func DecodeFileWithLogger(path string, logger hclog.Logger) (*format_v6.Circuit, error) {
	return DecodeFileWithOptions(path, logger, format_v6.Options{})
}

func DecodeFileWithOptions(path string, logger hclog.Logger, opts format_v6.Options) (*format_v6.Circuit, error) {
	reader, err := format_v6.NewReaderWithOptions(path, logger, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Debug("Failed to close reader", "error", err)
		}
	}()
	return reader.ReadCircuit()
}

// ReadHeader decodes a save file and returns only its header.
func ReadHeader(path string) (*format_v6.Header, error) {
	circuit, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return &circuit.Header, nil
}

// ExportFile decodes a save file and encodes it with the named format
// and compression chain.
func ExportFile(path, formatName, compression string, logger hclog.Logger, opts format_v6.Options) (*export.Result, error) {
	circuit, err := DecodeFileWithOptions(path, logger, opts)
	if err != nil {
		return nil, err
	}
	result, err := export.Encode(circuit, formatName, compression)
	if err != nil {
		return nil, err
	}
	logger.Debug("Exported circuit",
		"format", result.Format,
		"compression", compression,
		"size", len(result.Data),
	)
	return result, nil
}
