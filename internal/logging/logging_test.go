package logging_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-slidedeck/internal/logging"
)

// ---------------------------------------------------------------------------
// TestParseLevel - Level names
// ---------------------------------------------------------------------------

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    logging.Level
		wantErr error
	}{
		{input: "debug", want: logging.LevelDebug},
		{input: "INFO", want: logging.LevelInfo},
		{input: "", want: logging.LevelInfo},
		{input: " warn ", want: logging.LevelWarn},
		{input: "warning", want: logging.LevelWarn},
		{input: "error", want: logging.LevelError},
		{input: "trace", want: logging.LevelInfo, wantErr: logging.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseLevel(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	for _, name := range logging.LevelNames {
		l, err := logging.ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q) unexpected error: %v", name, err)
		}
		if l.String() != name {
			t.Errorf("Level.String() = %q, want %q", l.String(), name)
		}
	}
}

// ---------------------------------------------------------------------------
// TestNewLogger - Level filtering and plain output
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, logging.Options{Level: logging.LevelWarn, NoColor: true})

	logger.Info("hidden")
	logger.Warn("unknown slide type", "index", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "unknown slide type") || !strings.Contains(out, "index=3") {
		t.Errorf("warn record missing: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("NoColor output contains ANSI escapes: %q", out)
	}
}

func TestColorDisabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "default", env: map[string]string{}, want: false},
		{name: "NO_COLOR", env: map[string]string{"NO_COLOR": "1"}, want: true},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, want: true},
		{name: "xterm", env: map[string]string{"TERM": "xterm-256color"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getenv := func(k string) string { return tt.env[k] }
			if got := logging.ColorDisabled(getenv); got != tt.want {
				t.Errorf("ColorDisabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(t.Context(), logging.LevelError.Slog()) {
		t.Error("Discard logger should not be enabled at any level")
	}
}
