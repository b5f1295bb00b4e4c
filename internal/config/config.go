// Package config loads the optional save-monger configuration file.
//
// The file path comes from the --config flag or the SAVE_MONGER_CONFIG
// environment variable. There is no discovery: without either, the
// defaults are used as they are.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielrab/save-monger/pkg/export"
	"github.com/danielrab/save-monger/pkg/save/format_v6"
	"github.com/danielrab/save-monger/pkg/save/operations"
)

// EnvConfig names the environment variable holding the config path.
const EnvConfig = "SAVE_MONGER_CONFIG"

// Config is the save-monger configuration.
type Config struct {
	// LogLevel is an hclog level name. Empty defers to SAVE_MONGER_LOG_LEVEL.
	LogLevel string `yaml:"log_level"`

	// JSONLog switches the logger to JSON output.
	JSONLog bool `yaml:"json_log"`

	// WirePaths is "full" or "endpoints".
	WirePaths string `yaml:"wire_paths"`

	// SavesDir overrides the platform saves directory used by list.
	// ${HOME} style variables are expanded.
	SavesDir string `yaml:"saves_dir"`

	Export ExportConfig `yaml:"export"`
}

// ExportConfig holds the export command defaults.
type ExportConfig struct {
	// Format is one of json, yaml, cbor, msgpack.
	Format string `yaml:"format"`

	// Compression is an operation chain such as "zstd" or "gzip|bzip2".
	Compression string `yaml:"compression"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		WirePaths: format_v6.PathFull.String(),
		Export: ExportConfig{
			Format:      "json",
			Compression: "raw",
		},
	}
}

// Load reads the config file at path, falling back to SAVE_MONGER_CONFIG
// when path is empty. With neither set it returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Keys missing
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.SavesDir = os.ExpandEnv(cfg.SavesDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every enumerated value is known.
func (c *Config) Validate() error {
	if _, err := format_v6.ParsePathMode(c.WirePaths); err != nil {
		return fmt.Errorf("wire_paths: %w", err)
	}
	if _, err := export.Lookup(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if _, err := operations.ParseChain(c.Export.Compression); err != nil {
		return fmt.Errorf("export.compression: %w", err)
	}
	return nil
}

// PathMode returns the decoded wire_paths setting.
func (c *Config) PathMode() format_v6.PathMode {
	mode, err := format_v6.ParsePathMode(c.WirePaths)
	if err != nil {
		return format_v6.PathFull
	}
	return mode
}
