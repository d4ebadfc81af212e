package assets

// PartLoader defines the contract for loading static OOXML parts.
type PartLoader interface {
	// LoadPart loads a part by name (without .xml extension).
	// Returns ErrPartNotFound if the part doesn't exist.
	// Returns ErrInvalidPartName if the name contains invalid characters.
	LoadPart(name string) (string, error)
}
