package format_v6

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielrab/save-monger/internal/savetest"
	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

func writeSave(t *testing.T, raw []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.data")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReaderReadCircuit(t *testing.T) {
	raw := savetest.Fixture()
	path := writeSave(t, raw)

	var stages int
	reader, err := NewReaderWithOptions(path, testLogger("reader_test"), Options{
		OnStage: func(Stage, int) { stages++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	version, err := reader.ReadVersion()
	if err != nil || version != SaveVersion {
		t.Fatalf("ReadVersion = %d, %v", version, err)
	}

	circuit, err := reader.ReadCircuit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(circuit.Components) != savetest.FixtureComponents || len(circuit.Wires) != savetest.FixtureWires {
		t.Errorf("decoded %d components, %d wires", len(circuit.Components), len(circuit.Wires))
	}

	again, err := reader.ReadCircuit()
	if err != nil || again != circuit {
		t.Errorf("second ReadCircuit did not return the cached circuit")
	}
	if stages == 0 {
		t.Error("OnStage hook was not chained through the reader")
	}

	fileSize, payloadSize := reader.Sizes()
	if fileSize != len(raw) || payloadSize != len(savetest.FixturePayload()) {
		t.Errorf("sizes = %d, %d", fileSize, payloadSize)
	}
}

func TestReaderErrors(t *testing.T) {
	if _, err := NewReader(""); err == nil {
		t.Error("NewReader accepted an empty path")
	}

	reader, err := NewReader(filepath.Join(t.TempDir(), "missing.data"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reader.ReadCircuit(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}

	reader, err = NewReader(writeSave(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reader.ReadVersion(); !errors.Is(err, saveerrors.ErrEmptyInput) {
		t.Errorf("empty file error = %v", err)
	}

	reader, err = NewReader(writeSave(t, savetest.ContainerVersion(5, nil)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reader.ReadPayload(); !errors.Is(err, saveerrors.ErrUnsupportedVersion) {
		t.Errorf("version 5 error = %v", err)
	}
}
