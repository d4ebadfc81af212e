package slidedeck

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrDescriptorParse   = errors.New("failed to parse slide descriptors")
	ErrInvalidDescriptor = errors.New("invalid slide descriptor")
	ErrUnknownSlideType  = errors.New("unknown slide type")
	ErrEmptyInput        = errors.New("descriptor data is empty")
	ErrMarkdownParse     = errors.New("failed to parse markdown")

	// Rendering errors.
	ErrEncodeDeck = errors.New("failed to encode presentation")

	// I/O errors.
	ErrWriteDeck   = errors.New("failed to write presentation")
	ErrEmptyPath   = errors.New("destination path cannot be empty")
	ErrNilDocument = errors.New("document cannot be nil")

	// Programming errors, raised as panics.
	ErrDocumentSealed = errors.New("document has been written and is sealed")
)

// DescriptorError locates an input error inside a descriptor list.
type DescriptorError struct {
	Index int    // position in the list, 0-based
	Field string // offending field, empty for the descriptor as a whole
	Err   error
}

func (e *DescriptorError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("slide %d: %v", e.Index+1, e.Err)
	}
	return fmt.Sprintf("slide %d: %s: %v", e.Index+1, e.Field, e.Err)
}

func (e *DescriptorError) Unwrap() error { return e.Err }

// WriteError reports a failed write of a presentation file.
// It matches ErrWriteDeck with errors.Is and unwraps to the underlying cause.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrWriteDeck, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrWriteDeck.
func (e *WriteError) Is(target error) bool { return target == ErrWriteDeck }
