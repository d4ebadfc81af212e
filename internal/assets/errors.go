package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrPartNotFound indicates the requested part does not exist.
	ErrPartNotFound = errors.New("part not found")

	// ErrIncompletePartSet indicates a required part could not be loaded.
	ErrIncompletePartSet = errors.New("part set missing required part")

	// ErrInvalidPartName indicates a part name that could escape the
	// embedded directory or carries an extension.
	ErrInvalidPartName = errors.New("invalid part name")

	// ErrThemeRender indicates the theme template failed to execute.
	ErrThemeRender = errors.New("theme rendering failed")
)
