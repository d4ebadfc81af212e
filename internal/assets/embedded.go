package assets

import (
	"embed"
	"fmt"
	"path"
)

// partDir is the embedded directory holding one <name>.xml file per part.
const partDir = "ooxml"

//go:embed ooxml/*.xml
var parts embed.FS

// EmbeddedLoader serves the OOXML parts compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadPart returns the raw XML of the named part.
func (e *EmbeddedLoader) LoadPart(name string) (string, error) {
	if err := ValidatePartName(name); err != nil {
		return "", err
	}

	content, err := parts.ReadFile(path.Join(partDir, name+".xml"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}
	return string(content), nil
}

var _ PartLoader = (*EmbeddedLoader)(nil)
