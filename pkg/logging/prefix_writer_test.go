package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	testCases := []struct {
		name     string
		writes   []string
		expected string
	}{
		{
			name:     "single line",
			writes:   []string{"hello\n"},
			expected: "> hello\n",
		},
		{
			name:     "line split across writes",
			writes:   []string{"hel", "lo\nwor", "ld\n"},
			expected: "> hello\n> world\n",
		},
		{
			name:     "incomplete line is held back",
			writes:   []string{"done\npartial"},
			expected: "> done\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			pw := NewPrefixWriter("> ", &out)
			for _, w := range tc.writes {
				n, err := pw.Write([]byte(w))
				if err != nil || n != len(w) {
					t.Fatalf("Write(%q) = %d, %v", w, n, err)
				}
			}
			if out.String() != tc.expected {
				t.Errorf("output = %q, want %q", out.String(), tc.expected)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerWithFormat("save-monger", "info", &out, false)
	logger.Debug("hidden")
	logger.Info("shown", "components", 3)

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line written at info level: %q", got)
	}
	if !strings.HasPrefix(got, "💾 ") || !strings.Contains(got, "components=3") {
		t.Errorf("unexpected log output %q", got)
	}
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	if GetLogLevel() != "warn" {
		t.Errorf("default level = %q, want warn", GetLogLevel())
	}
	t.Setenv(EnvLogLevel, "trace")
	if GetLogLevel() != "trace" {
		t.Errorf("level = %q, want trace", GetLogLevel())
	}
}
