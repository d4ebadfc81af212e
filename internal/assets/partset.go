package assets

import (
	"bytes"
	"fmt"
	"text/template"
)

// Part names, without the .xml extension.
const (
	PartTheme       = "theme"
	PartSlideMaster = "slideMaster"
	PartSlideLayout = "slideLayout"
	PartPresProps   = "presProps"
	PartViewProps   = "viewProps"
	PartTableStyles = "tableStyles"
)

// RequiredParts lists every part a PartSet must hold.
var RequiredParts = []string{
	PartTheme,
	PartSlideMaster,
	PartSlideLayout,
	PartPresProps,
	PartViewProps,
	PartTableStyles,
}

// PartSet holds the static parts shared by every presentation.
type PartSet struct {
	theme       *template.Template
	SlideMaster string
	SlideLayout string
	PresProps   string
	ViewProps   string
	TableStyles string
}

// ThemeColors are the hex colors (RRGGBB) substituted into the theme.
type ThemeColors struct {
	Primary   string
	Secondary string
	Accent    string
	Text      string
	LightBg   string
}

// LoadPartSet loads and parses every required part from l.
// Returns ErrIncompletePartSet if any part is missing or the theme does not parse.
func LoadPartSet(l PartLoader) (*PartSet, error) {
	loaded := make(map[string]string, len(RequiredParts))
	for _, name := range RequiredParts {
		content, err := l.LoadPart(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrIncompletePartSet, name, err)
		}
		loaded[name] = content
	}

	theme, err := template.New(PartTheme).Option("missingkey=error").Parse(loaded[PartTheme])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompletePartSet, PartTheme, err)
	}

	return &PartSet{
		theme:       theme,
		SlideMaster: loaded[PartSlideMaster],
		SlideLayout: loaded[PartSlideLayout],
		PresProps:   loaded[PartPresProps],
		ViewProps:   loaded[PartViewProps],
		TableStyles: loaded[PartTableStyles],
	}, nil
}

// Theme renders the theme part with the given colors.
func (ps *PartSet) Theme(colors ThemeColors) (string, error) {
	var buf bytes.Buffer
	if err := ps.theme.Execute(&buf, colors); err != nil {
		return "", fmt.Errorf("%w: %v", ErrThemeRender, err)
	}
	return buf.String(), nil
}
