package logging

import (
	"bytes"
	"io"
)

// PrefixWriter writes every complete line to the underlying writer with a
// prefix in front. A trailing partial line is held until its newline
// arrives.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending []byte
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer. It always reports len(p) on success.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)

	for {
		i := bytes.IndexByte(pw.pending, '\n')
		if i < 0 {
			break
		}
		line := make([]byte, 0, len(pw.prefix)+i+1)
		line = append(line, pw.prefix...)
		line = append(line, pw.pending[:i+1]...)
		if _, err := pw.writer.Write(line); err != nil {
			return 0, err
		}
		pw.pending = pw.pending[i+1:]
	}

	if len(pw.pending) == 0 {
		pw.pending = nil
	}
	return len(p), nil
}
