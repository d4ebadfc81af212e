// Package pptx encodes presentations as Office Open XML PresentationML
// packages (.pptx).
//
// The package owns the container layout only: part names, relationships,
// content types and the DrawingML markup for rectangles and text boxes.
// Slide content and geometry are decided by the caller.
package pptx

import "time"

// Presentation is the neutral input of the encoder.
type Presentation struct {
	Width  int64 // EMU
	Height int64 // EMU
	Slides []Slide

	Title   string
	Author  string
	Lang    string    // default text language, e.g. "zh-CN"; "" = omit
	Created time.Time // zero = Unix epoch, for reproducible output

	Theme ThemeColors
}

// ThemeColors are RRGGBB hex colors written into the theme part.
type ThemeColors struct {
	Primary   string
	Secondary string
	Accent    string
	Text      string
	LightBg   string
}

// Slide is an ordered list of shapes, bottom-most first.
type Slide struct {
	Shapes []Shape
}

// Shape is a rectangle or a text box.
type Shape struct {
	Name    string
	TextBox bool

	X, Y, CX, CY int64 // EMU

	Fill string // RRGGBB solid fill; "" = no fill

	WordWrap   bool
	Paragraphs []Paragraph
}

// Paragraph is a single-run paragraph.
type Paragraph struct {
	Text       string
	Size       int // hundredths of a point; 0 = inherit
	Bold       bool
	Color      string // RRGGBB; "" = inherit
	Center     bool
	SpaceAfter int // hundredths of a point; 0 = none
}
