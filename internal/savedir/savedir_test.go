package savedir

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRootEnvOverride(t *testing.T) {
	t.Setenv(EnvSavesDir, "/srv/saves")
	if got := Root(); got != "/srv/saves" {
		t.Errorf("Root() = %q", got)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "component_factory", "adder", SaveFileName), []byte{6, 1, 2})
	touch(t, filepath.Join(dir, "architecture", "cpu", SaveFileName), []byte{6})
	touch(t, filepath.Join(dir, "architecture", "cpu", "notes.txt"), []byte("x"))
	touch(t, filepath.Join(dir, "circuit.data.bak"), []byte{5})

	entries, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []string{
		filepath.Join(dir, "architecture", "cpu", SaveFileName),
		filepath.Join(dir, "component_factory", "adder", SaveFileName),
	}
	if len(entries) != len(want) {
		t.Fatalf("Find returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Path != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Path, want[i])
		}
	}
	if entries[1].Size != 3 {
		t.Errorf("size = %d, want 3", entries[1].Size)
	}
}

func TestFindMissingDir(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Find on a missing directory succeeded")
	}
}

func TestPeekVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SaveFileName)
	touch(t, path, []byte{6, 0xff})

	v, err := PeekVersion(path)
	if err != nil || v != 6 {
		t.Errorf("PeekVersion = %d, %v", v, err)
	}

	empty := filepath.Join(dir, "empty", SaveFileName)
	touch(t, empty, nil)
	if _, err := PeekVersion(empty); !errors.Is(err, io.EOF) {
		t.Errorf("PeekVersion(empty) error = %v, want EOF", err)
	}
}
