// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathIsDirectory = errors.New("path is a directory")
)

// DefaultFileMode is the permission of files written by WriteFileAtomic.
const DefaultFileMode os.FileMode = 0o644

// WriteFileAtomic writes data to a temporary file in the destination directory
// and renames it over path. Readers see either the old file or the complete
// new one. The destination directory must exist.
func WriteFileAtomic(path string, data []byte) (err error) {
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathIsDirectory, path)
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, DefaultFileMode); chmodErr != nil {
		return fmt.Errorf("setting file mode: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}
	return nil
}

// EnsureExtension appends "."+extension to path unless it already ends with it
// (case-insensitive).
//
// Examples:
//   - ("deck", "pptx") -> "deck.pptx"
//   - ("deck.PPTX", "pptx") -> "deck.PPTX"
//   - ("out/deck.v2", "pptx") -> "out/deck.v2.pptx"
func EnsureExtension(path, extension string) string {
	if strings.EqualFold(filepath.Ext(path), "."+extension) {
		return path
	}
	return path + "." + extension
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirWritable reports whether a file can be created in dir.
func DirWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".slidedeck-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "slidedeck" -> false (name)
//   - "./team.yaml" -> true (relative path)
//   - "/etc/slidedeck.yaml" -> true (absolute)
//   - "C:\config\deck.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
