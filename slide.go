package slidedeck

import "slices"

// ShapeKind distinguishes filled rectangles from text boxes.
type ShapeKind int

// Shape kinds.
const (
	ShapeRect ShapeKind = iota + 1
	ShapeTextBox
)

// Align is a paragraph alignment.
type Align int

// Paragraph alignments.
const (
	AlignLeft Align = iota
	AlignCenter
)

// Frame is the position and size of a shape on the canvas.
type Frame struct {
	X, Y          Length
	Width, Height Length
}

// Paragraph is a single-run paragraph of text.
type Paragraph struct {
	Text       string
	Size       FontSize
	Bold       bool
	Color      RGB
	Align      Align
	SpaceAfter FontSize // 0 = no explicit spacing
}

// Shape is one element of a slide, in z-order (first is bottom-most).
type Shape struct {
	Kind  ShapeKind
	Name  string
	Frame Frame

	// Fill is the solid fill of a rectangle. Text boxes have no fill.
	Fill RGB

	// WordWrap wraps text at the frame width. Unwrapped boxes grow to fit.
	WordWrap   bool
	Paragraphs []Paragraph
}

// Text returns the paragraph texts of the shape in order.
func (s Shape) Text() []string {
	out := make([]string, len(s.Paragraphs))
	for i, p := range s.Paragraphs {
		out[i] = p.Text
	}
	return out
}

// Slide is a rendered slide: its archetype and its shapes.
type Slide struct {
	Kind   Kind
	Shapes []Shape
}

func (s Slide) clone() Slide {
	shapes := slices.Clone(s.Shapes)
	for i := range shapes {
		shapes[i].Paragraphs = slices.Clone(shapes[i].Paragraphs)
	}
	s.Shapes = shapes
	return s
}

// TextBoxes returns the text boxes of the slide in z-order.
func (s Slide) TextBoxes() []Shape {
	var boxes []Shape
	for _, sh := range s.Shapes {
		if sh.Kind == ShapeTextBox {
			boxes = append(boxes, sh)
		}
	}
	return boxes
}

// Title returns the text of the first paragraph of the first text box,
// which every archetype uses for its title.
func (s Slide) Title() string {
	boxes := s.TextBoxes()
	if len(boxes) == 0 || len(boxes[0].Paragraphs) == 0 {
		return ""
	}
	return boxes[0].Paragraphs[0].Text
}
