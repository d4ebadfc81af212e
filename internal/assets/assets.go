package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadPart loads a part by name using the default embedded loader.
func LoadPart(name string) (string, error) {
	return defaultLoader.LoadPart(name)
}

// LoadDefaultPartSet loads the complete part set from embedded assets.
func LoadDefaultPartSet() (*PartSet, error) {
	return LoadPartSet(defaultLoader)
}
