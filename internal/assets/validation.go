package assets

import "fmt"

// ValidatePartName checks that name can address an embedded part file.
// A name starts with an ASCII letter and continues with letters, digits or
// hyphens, so it can carry neither a directory nor an extension.
func ValidatePartName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPartName)
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return fmt.Errorf("%w: %q", ErrInvalidPartName, name)
		}
	}
	return nil
}
