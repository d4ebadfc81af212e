// Package yamlutil wraps YAML parsing to isolate the external dependency.
// JSON documents parse too, since JSON is a subset of YAML 1.2.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateSize(data []byte) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

func validateInput(data []byte, v any) error {
	if err := validateSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// wrap formats a parser error with its source position, without color.
func wrap(err error) error {
	return fmt.Errorf("yamlutil: %s", yaml.FormatError(err, false, true))
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return wrap(err)
	}
	return nil
}

// Decode parses data into generic values: map[string]any, []any, string,
// numbers, bool or nil. Callers inspect the shape before converting.
func Decode(data []byte) (any, error) {
	if err := validateSize(data); err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, wrap(err)
	}
	return v, nil
}
