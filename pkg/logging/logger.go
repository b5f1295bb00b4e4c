package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables read by the logger factory.
const (
	EnvLogLevel = "SAVE_MONGER_LOG_LEVEL"
	EnvJSONLog  = "SAVE_MONGER_JSON_LOG"
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	return NewLoggerWithFormat(name, level, output, os.Getenv(EnvJSONLog) == "1")
}

// NewLoggerWithFormat is NewLogger with the JSON choice made by the caller
func NewLoggerWithFormat(name string, level string, output io.Writer, jsonFormat bool) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("💾 ", output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "warn"
	}
	return level
}
