package slidedeck

import (
	"fmt"
	"math"
)

// EMU (English Metric Unit) conversion factors used by PresentationML.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Length is a distance on the canvas in EMU.
type Length int64

// Inches converts a length in inches to EMU, rounded to the nearest unit.
func Inches(in float64) Length {
	return Length(math.Round(in * EMUPerInch))
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / EMUPerInch
}

// FontSize is a type size in hundredths of a point, the unit of
// DrawingML run and spacing attributes.
type FontSize int

// Pt converts points to a FontSize, rounded to a hundredth of a point.
func Pt(pt float64) FontSize {
	return FontSize(math.Round(pt * 100))
}

// Points returns the size in points.
func (f FontSize) Points() float64 {
	return float64(f) / 100
}

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as six uppercase hex digits without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Fixed colors outside the semantic palette.
var (
	White = RGB{255, 255, 255}
	Muted = RGB{200, 200, 200} // subtitles over a colored band
)

// ColorName is a semantic palette entry.
type ColorName string

// Semantic palette names.
const (
	ColorPrimary   ColorName = "primary"
	ColorSecondary ColorName = "secondary"
	ColorAccent    ColorName = "accent"
	ColorText      ColorName = "text"
	ColorLightBg   ColorName = "light_bg"
)

// Palette maps the semantic color names to concrete colors.
// It is a value type: templates receive copies, nothing mutates it.
type Palette struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB
	Text      RGB
	LightBg   RGB
}

// DefaultPalette returns the deck palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   RGB{26, 54, 93},    // #1A365D deep blue
		Secondary: RGB{45, 125, 210},  // #2D7DD2 tech blue
		Accent:    RGB{237, 137, 54},  // #ED8936 orange
		Text:      RGB{74, 85, 104},   // #4A5568 dark gray
		LightBg:   RGB{247, 250, 252}, // #F7FAFC light gray
	}
}

// Color looks up a semantic color.
// Panics on an unknown name: names are compile-time constants, so a miss is a
// programmer error.
func (p Palette) Color(name ColorName) RGB {
	switch name {
	case ColorPrimary:
		return p.Primary
	case ColorSecondary:
		return p.Secondary
	case ColorAccent:
		return p.Accent
	case ColorText:
		return p.Text
	case ColorLightBg:
		return p.LightBg
	}
	panic(fmt.Sprintf("slidedeck: unknown palette color %q", string(name)))
}

// Canvas is the slide size shared by every slide of a deck.
type Canvas struct {
	Width  Length
	Height Length
}

// DefaultCanvas returns the 10 x 7.5 inch (4:3) canvas.
func DefaultCanvas() Canvas {
	return Canvas{Width: Inches(10), Height: Inches(7.5)}
}
