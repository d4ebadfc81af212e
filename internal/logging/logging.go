// Package logging builds the colorized slog logger used by the command line.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ErrInvalidLevel is returned by ParseLevel for unrecognized names.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is a slog level restricted to the four named levels.
type Level slog.Level

// Log levels.
const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// LevelNames lists the accepted level names, most verbose first.
var LevelNames = []string{"debug", "info", "warn", "error"}

// ParseLevel converts a level name (case-insensitive; "warning" is an alias
// of "warn"). An empty name is info.
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidLevel, value, strings.Join(LevelNames, ", "))
}

// String returns the lower-case level name.
func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// Slog returns the level as a slog.Level.
func (l Level) Slog() slog.Level { return slog.Level(l) }

// Options configures NewLogger.
type Options struct {
	Level   Level
	NoColor bool
	// TimeFormat is the timestamp layout; empty uses time.Kitchen.
	TimeFormat string
}

// NewLogger returns a tint-backed logger writing to w (stderr when nil).
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	format := opts.TimeFormat
	if format == "" {
		format = time.Kitchen
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level.Slog(),
		NoColor:    opts.NoColor,
		TimeFormat: format,
	}))
}

// ColorDisabled reports whether the environment asks for plain output
// (NO_COLOR set, or TERM=dumb).
func ColorDisabled(getenv func(string) string) bool {
	return getenv("NO_COLOR") != "" || getenv("TERM") == "dumb"
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
