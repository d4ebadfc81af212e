// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-slidedeck/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// IsCI reports whether a known CI system is driving the process.
func IsCI(getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	return getenv("CI") != "" ||
		getenv("GITHUB_ACTIONS") != "" ||
		getenv("GITLAB_CI") != "" ||
		getenv("JENKINS_URL") != ""
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-slidedeck/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-slidedeck") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForPermission returns hints for permission denied errors on the output.
// In containers the mounted volume is the usual culprit.
func ForPermission() string {
	if IsInContainer() {
		return format("check the output volume is mounted read-write")
	}
	return format("choose another --output path or fix the file permissions")
}

// ForUnknownSlideType lists the accepted type tags.
func ForUnknownSlideType(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("known types: " + strings.Join(known, ", ") + "; drop --strict to render unknown types as content")
}

// ForInputFormat returns hints for undecodable input.
func ForInputFormat() string {
	return formatHints([]string{
		"input is a YAML or JSON list of slides, or a mapping with a slides key",
		"use --markdown for .md outlines",
	})
}

// ForEmptyInput returns hints for input with no slides.
func ForEmptyInput() string {
	return format("use --title with --sections for a quick deck")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
