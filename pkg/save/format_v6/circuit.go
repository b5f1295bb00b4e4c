package format_v6

import (
	"errors"
	"fmt"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// Stage is one step of decoding a save file, in the order they run.
type Stage uint8

const (
	StageVersionCheck Stage = iota
	StageDecompress
	StageHeader
	StageComponents
	StageWires
	StageVerifyComplete
	StageDone
)

var stageNames = [...]string{
	StageVersionCheck:   "version check",
	StageDecompress:     "decompress",
	StageHeader:         "header",
	StageComponents:     "components",
	StageWires:          "wires",
	StageVerifyComplete: "completeness check",
	StageDone:           "done",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// StageError wraps the failure of one decode stage. Offset is the payload
// position the cursor had reached; it is 0 before decompression.
type StageError struct {
	Stage  Stage
	Offset int
	Err    error
}

func (e *StageError) Error() string {
	if e.Stage <= StageDecompress {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s (payload offset %d): %v", e.Stage, e.Offset, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// VersionError reports a container version other than SaveVersion.
type VersionError struct {
	Got byte
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%v: got %d, expected %d", saveerrors.ErrUnsupportedVersion, e.Got, SaveVersion)
}

func (e *VersionError) Unwrap() error { return saveerrors.ErrUnsupportedVersion }

// FailedStage returns the stage a decode error came from.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return 0, false
}

// Circuit is a fully decoded save file.
type Circuit struct {
	Header     Header      `json:"header" yaml:"header" cbor:"header" msgpack:"header"`
	Components []Component `json:"components" yaml:"components" cbor:"components" msgpack:"components"`
	Wires      []Wire      `json:"wires" yaml:"wires" cbor:"wires" msgpack:"wires"`
}

// Decode decodes a whole save file with default options.
func Decode(raw []byte) (*Circuit, error) {
	return DecodeWithOptions(raw, Options{})
}

// DecodeWithOptions checks the version byte, inflates the payload and
// decodes it. Nothing is returned unless every stage succeeds.
func DecodeWithOptions(raw []byte, opts Options) (*Circuit, error) {
	opts = opts.withDefaults()
	payload, err := unwrapContainer(raw, opts)
	if err != nil {
		return nil, err
	}
	return DecodePayload(payload, opts)
}

// unwrapContainer runs the version check and decompress stages.
func unwrapContainer(raw []byte, opts Options) ([]byte, error) {
	if len(raw) == 0 {
		return nil, &StageError{Stage: StageVersionCheck, Err: saveerrors.ErrEmptyInput}
	}
	if raw[0] != SaveVersion {
		return nil, &StageError{Stage: StageVersionCheck, Err: &VersionError{Got: raw[0]}}
	}
	opts.stageDone(StageVersionCheck, 0)

	payload, err := opts.Decompressor.Reverse(raw[1:])
	if err != nil {
		return nil, &StageError{
			Stage: StageDecompress,
			Err:   fmt.Errorf("%w: %w", saveerrors.ErrDecompression, err),
		}
	}
	opts.stageDone(StageDecompress, 0)
	return payload, nil
}

// DecodePayload decodes an already-inflated payload: header, components,
// wires, then checks that every byte was consumed.
func DecodePayload(payload []byte, opts Options) (*Circuit, error) {
	c := NewCursor(payload)
	fail := func(stage Stage, err error) (*Circuit, error) {
		return nil, &StageError{Stage: stage, Offset: c.Offset(), Err: err}
	}

	header, err := ReadHeader(c)
	if err != nil {
		return fail(StageHeader, err)
	}
	opts.stageDone(StageHeader, c.Offset())

	components, err := ReadLongSeq(c, ReadComponent)
	if err != nil {
		return fail(StageComponents, err)
	}
	opts.stageDone(StageComponents, c.Offset())

	wires, err := ReadLongSeq(c, func(c *Cursor) (Wire, error) {
		return ReadWire(c, opts.PathMode)
	})
	if err != nil {
		return fail(StageWires, err)
	}
	opts.stageDone(StageWires, c.Offset())

	if rem := c.Remaining(); rem != 0 {
		return fail(StageVerifyComplete, fmt.Errorf("%w: %d of %d bytes unread",
			saveerrors.ErrTrailingBytes, rem, c.Len()))
	}
	opts.stageDone(StageVerifyComplete, c.Offset())

	circuit := &Circuit{
		Header:     header,
		Components: components,
		Wires:      wires,
	}
	opts.stageDone(StageDone, c.Offset())
	return circuit, nil
}
