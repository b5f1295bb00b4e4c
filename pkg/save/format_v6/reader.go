package format_v6

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// Reader reads a save file from disk. The file is loaded whole; the
// payload and circuit are decoded lazily and cached.
type Reader struct {
	savePath string
	raw      []byte
	payload  []byte
	circuit  *Circuit
	opts     Options
	logger   hclog.Logger
}

// NewReader creates a new save reader
func NewReader(savePath string) (*Reader, error) {
	return NewReaderWithLogger(savePath, hclog.NewNullLogger())
}

// NewReaderWithLogger creates a new save reader with a custom logger
func NewReaderWithLogger(savePath string, logger hclog.Logger) (*Reader, error) {
	return NewReaderWithOptions(savePath, logger, Options{})
}

// NewReaderWithOptions creates a save reader with a logger and decode options
func NewReaderWithOptions(savePath string, logger hclog.Logger, opts Options) (*Reader, error) {
	if savePath == "" {
		return nil, fmt.Errorf("save path is empty")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{
		savePath: savePath,
		opts:     opts.withDefaults(),
		logger:   logger,
	}, nil
}

// Path returns the file the reader was created for.
func (r *Reader) Path() string { return r.savePath }

// Open loads the save file into memory
func (r *Reader) Open() error {
	if r.raw != nil {
		return nil
	}

	raw, err := os.ReadFile(r.savePath)
	if err != nil {
		return err
	}

	r.logger.Debug("Loaded save file", "path", r.savePath, "size", len(raw))
	r.raw = raw
	return nil
}

// Close drops the loaded buffers
func (r *Reader) Close() error {
	r.raw = nil
	r.payload = nil
	r.circuit = nil
	return nil
}

// ReadVersion returns the container version byte without validating it
func (r *Reader) ReadVersion() (byte, error) {
	if err := r.Open(); err != nil {
		return 0, err
	}
	if len(r.raw) == 0 {
		return 0, &StageError{Stage: StageVersionCheck, Err: saveerrors.ErrEmptyInput}
	}
	return r.raw[0], nil
}

// ReadPayload checks the version and returns the decompressed payload
func (r *Reader) ReadPayload() ([]byte, error) {
	if r.payload != nil {
		return r.payload, nil
	}

	if err := r.Open(); err != nil {
		return nil, err
	}

	payload, err := unwrapContainer(r.raw, r.opts)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Decompressed payload",
		"compressed_size", len(r.raw)-1,
		"payload_size", len(payload),
	)

	r.payload = payload
	return payload, nil
}

// ReadCircuit decodes the full circuit
func (r *Reader) ReadCircuit() (*Circuit, error) {
	if r.circuit != nil {
		return r.circuit, nil
	}

	payload, err := r.ReadPayload()
	if err != nil {
		return nil, err
	}

	opts := r.opts
	userHook := opts.OnStage
	opts.OnStage = func(stage Stage, consumed int) {
		r.logger.Trace("Stage complete", "stage", stage.String(), "consumed", consumed)
		if userHook != nil {
			userHook(stage, consumed)
		}
	}

	circuit, err := DecodePayload(payload, opts)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Decoded circuit",
		"components", len(circuit.Components),
		"wires", len(circuit.Wires),
	)

	r.circuit = circuit
	return circuit, nil
}

// Sizes returns the on-disk size and, once decompressed, the payload size.
func (r *Reader) Sizes() (fileSize, payloadSize int) {
	return len(r.raw), len(r.payload)
}
