package main

import (
	"errors"
	"os"

	"github.com/alnah/go-slidedeck"
	"github.com/alnah/go-slidedeck/internal/config"
)

// Exit codes for slidedeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Deck written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or environment
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitInput   = 4 // Descriptor or Markdown input rejected
	ExitRender  = 5 // Package encoding failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 5)
	if errors.Is(err, slidedeck.ErrEncodeDeck) {
		return ExitRender
	}

	// Input data errors (exit 4)
	if slidedeck.IsInputError(err) {
		return ExitInput
	}

	// I/O errors (exit 3)
	if errors.Is(err, slidedeck.ErrWriteDeck) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrEnvFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrConflictingInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrWatchNeedsFile) ||
		errors.Is(err, ErrEnvConfig) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
