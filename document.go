package slidedeck

import (
	"fmt"
	"sync/atomic"
)

// Document is an ordered, append-only sequence of rendered slides.
// Once handed to a Writer it is sealed and further appends panic.
type Document struct {
	canvas Canvas
	slides []Slide
	sealed atomic.Bool

	// Metadata recorded in the package properties.
	Title  string
	Author string
}

// NewDocument creates an empty document on canvas c.
func NewDocument(c Canvas) *Document {
	return &Document{canvas: c}
}

// Append adds s after the last slide.
// Panics with an error wrapping ErrDocumentSealed if the document has been
// written.
func (d *Document) Append(s Slide) {
	if d.sealed.Load() {
		panic(fmt.Errorf("slidedeck: append: %w", ErrDocumentSealed))
	}
	d.slides = append(d.slides, s)
}

// Len returns the number of slides.
func (d *Document) Len() int { return len(d.slides) }

// Canvas returns the slide size of the document.
func (d *Document) Canvas() Canvas { return d.canvas }

// Slide returns a copy of the slide at index i (0-based).
func (d *Document) Slide(i int) Slide { return d.slides[i].clone() }

// Slides returns a copy of the slide list. Shapes and paragraphs are
// copied too, so callers cannot reach the document's own slides.
func (d *Document) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}

// Sealed reports whether the document has been written.
func (d *Document) Sealed() bool { return d.sealed.Load() }

func (d *Document) seal() { d.sealed.Store(true) }
