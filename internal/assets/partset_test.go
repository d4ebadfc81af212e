package assets

// Notes:
// - The theme template is only checked for color substitution; the XML schema
//   validity of the embedded parts is covered by the pptx package tests that
//   read back a complete archive.

import (
	"errors"
	"strings"
	"testing"
)

// mapLoader serves parts from memory.
type mapLoader map[string]string

func (m mapLoader) LoadPart(name string) (string, error) {
	content, ok := m[name]
	if !ok {
		return "", ErrPartNotFound
	}
	return content, nil
}

func completeParts() mapLoader {
	m := mapLoader{}
	for _, name := range RequiredParts {
		m[name] = "<" + name + "/>"
	}
	m[PartTheme] = `<a:theme><a:dk2 val="{{.Primary}}"/><a:accent1 val="{{.Secondary}}"/></a:theme>`
	return m
}

func TestLoadDefaultPartSet(t *testing.T) {
	t.Parallel()

	ps, err := LoadDefaultPartSet()
	if err != nil {
		t.Fatalf("LoadDefaultPartSet() error: %v", err)
	}

	theme, err := ps.Theme(ThemeColors{
		Primary:   "1A365D",
		Secondary: "2D7DD2",
		Accent:    "ED8936",
		Text:      "4A5568",
		LightBg:   "F7FAFC",
	})
	if err != nil {
		t.Fatalf("Theme() error: %v", err)
	}
	for _, want := range []string{`<a:srgbClr val="1A365D"/>`, `<a:srgbClr val="F7FAFC"/>`} {
		if !strings.Contains(theme, want) {
			t.Errorf("theme should contain %s", want)
		}
	}
	if strings.Contains(theme, "{{") {
		t.Error("theme still contains template actions")
	}
}

func TestLoadPartSet(t *testing.T) {
	t.Parallel()

	t.Run("complete set loads", func(t *testing.T) {
		t.Parallel()

		ps, err := LoadPartSet(completeParts())
		if err != nil {
			t.Fatalf("LoadPartSet() error: %v", err)
		}
		if ps.SlideMaster != "<slideMaster/>" {
			t.Errorf("SlideMaster = %q", ps.SlideMaster)
		}
		theme, err := ps.Theme(ThemeColors{Primary: "000000", Secondary: "FFFFFF"})
		if err != nil {
			t.Fatalf("Theme() error: %v", err)
		}
		if theme != `<a:theme><a:dk2 val="000000"/><a:accent1 val="FFFFFF"/></a:theme>` {
			t.Errorf("Theme() = %q", theme)
		}
	})

	t.Run("missing part is incomplete", func(t *testing.T) {
		t.Parallel()

		parts := completeParts()
		delete(parts, PartViewProps)

		_, err := LoadPartSet(parts)
		if !errors.Is(err, ErrIncompletePartSet) {
			t.Fatalf("error = %v, want ErrIncompletePartSet", err)
		}
		if !strings.Contains(err.Error(), PartViewProps) {
			t.Errorf("error should name the missing part, got %v", err)
		}
	})

	t.Run("unparsable theme is incomplete", func(t *testing.T) {
		t.Parallel()

		parts := completeParts()
		parts[PartTheme] = "{{.Primary"

		_, err := LoadPartSet(parts)
		if !errors.Is(err, ErrIncompletePartSet) {
			t.Fatalf("error = %v, want ErrIncompletePartSet", err)
		}
	})

	t.Run("unknown theme field fails at render", func(t *testing.T) {
		t.Parallel()

		parts := completeParts()
		parts[PartTheme] = "{{.Missing}}"

		ps, err := LoadPartSet(parts)
		if err != nil {
			t.Fatalf("LoadPartSet() error: %v", err)
		}
		if _, err := ps.Theme(ThemeColors{}); !errors.Is(err, ErrThemeRender) {
			t.Errorf("Theme() error = %v, want ErrThemeRender", err)
		}
	})
}
