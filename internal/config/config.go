package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-slidedeck/internal/fileutil"
	"github.com/alnah/go-slidedeck/internal/logging"
	"github.com/alnah/go-slidedeck/internal/yamlutil"
)

// AppDir is the directory searched under the user config directory.
const AppDir = "go-slidedeck"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxNameLength     = 100 // author
	MaxTitleLength    = 200 // deck title, closing subtitle
	MaxCompanyLength  = 100
	MaxHeadingLength  = 100 // one summary heading
	MaxSummaryHeading = 32  // number of summary headings
)

// Worker limits, mirrored from the assembler.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// Config holds all configuration for deck generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Build    BuildConfig    `yaml:"build"`
	Metadata MetadataConfig `yaml:"metadata"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Log      LogConfig      `yaml:"log"`
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"` // default destination (empty = must specify)
}

// BuildConfig defines rendering options.
type BuildConfig struct {
	Workers int  `yaml:"workers"` // 0 = sequential
	Strict  bool `yaml:"strict"`  // reject unknown slide types
}

// MetadataConfig defines document properties.
type MetadataConfig struct {
	Author  string `yaml:"author"`
	Title   string `yaml:"title"`   // used when the input has none
	Company string `yaml:"company"` // recorded with the author
}

// MarkdownConfig defines Markdown import options.
type MarkdownConfig struct {
	Closing         bool     `yaml:"closing"`
	ClosingTitle    string   `yaml:"closingTitle"`
	ClosingSubtitle string   `yaml:"closingSubtitle"`
	SummaryHeadings []string `yaml:"summaryHeadings"` // nil = built-in keywords
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for callers that build a
// Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}

	if c.Build.Workers != 0 && (c.Build.Workers < MinWorkers || c.Build.Workers > MaxWorkers) {
		return fmt.Errorf("%w: build.workers must be between %d and %d, got %d",
			ErrInvalidValue, MinWorkers, MaxWorkers, c.Build.Workers)
	}

	if err := validateFieldLength("metadata.author", c.Metadata.Author, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("metadata.title", c.Metadata.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("metadata.company", c.Metadata.Company, MaxCompanyLength); err != nil {
		return err
	}

	if err := validateFieldLength("markdown.closingTitle", c.Markdown.ClosingTitle, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.closingSubtitle", c.Markdown.ClosingSubtitle, MaxTitleLength); err != nil {
		return err
	}
	if len(c.Markdown.SummaryHeadings) > MaxSummaryHeading {
		return fmt.Errorf("%w: markdown.summaryHeadings has %d entries, max %d",
			ErrInvalidValue, len(c.Markdown.SummaryHeadings), MaxSummaryHeading)
	}
	for i, h := range c.Markdown.SummaryHeadings {
		if err := validateFieldLength(fmt.Sprintf("markdown.summaryHeadings[%d]", i), h, MaxHeadingLength); err != nil {
			return err
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the neutral configuration: no default output,
// sequential rendering, permissive type tags.
func DefaultConfig() *Config {
	return &Config{}
}

// Author returns the author line for document properties, with the company
// in parentheses when set.
func (c *Config) Author() string {
	switch {
	case c.Metadata.Author == "":
		return c.Metadata.Company
	case c.Metadata.Company == "":
		return c.Metadata.Author
	}
	return c.Metadata.Author + " (" + c.Metadata.Company + ")"
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in search order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name.
// Tries the current directory first, then the user config directory, with
// .yaml before .yml in each.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
