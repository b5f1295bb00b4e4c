package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "save-monger.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PathMode() != format_v6.PathFull {
		t.Errorf("PathMode = %v, want full", cfg.PathMode())
	}
	if cfg.Export.Format != "json" || cfg.Export.Compression != "raw" {
		t.Errorf("export defaults = %+v", cfg.Export)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("SAVES_HOME", "/games/tc")
	path := writeConfig(t, `
log_level: debug
json_log: true
wire_paths: endpoints
saves_dir: ${SAVES_HOME}/schematics
export:
  format: cbor
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.JSONLog {
		t.Errorf("logging = %q/%v", cfg.LogLevel, cfg.JSONLog)
	}
	if cfg.PathMode() != format_v6.PathEndpoints {
		t.Errorf("PathMode = %v, want endpoints", cfg.PathMode())
	}
	if cfg.SavesDir != "/games/tc/schematics" {
		t.Errorf("SavesDir = %q", cfg.SavesDir)
	}
	if cfg.Export.Format != "cbor" {
		t.Errorf("Export.Format = %q", cfg.Export.Format)
	}
	// Missing keys keep their defaults.
	if cfg.Export.Compression != "raw" {
		t.Errorf("Export.Compression = %q, want raw", cfg.Export.Compression)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "export:\n  compression: gzip|zstd\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Compression != "gzip|zstd" {
		t.Errorf("Export.Compression = %q", cfg.Export.Compression)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "export: [", "parsing config"},
		{"bad wire mode", "wire_paths: sparse\n", "wire_paths"},
		{"bad format", "export:\n  format: xml\n", "export.format"},
		{"bad compression", "export:\n  compression: rar\n", "export.compression"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadFile error = %v, want mention of %q", err, tc.want)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}
