package slidedeck

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alnah/go-slidedeck/internal/fileutil"
	"github.com/alnah/go-slidedeck/internal/logging"
	"github.com/alnah/go-slidedeck/internal/pptx"
)

// DefaultLanguage is the default text language recorded in the package.
const DefaultLanguage = "zh-CN"

// PartLoader supplies the static package parts (theme, slide master, slide
// layout, property parts) by name. The embedded set is used by default.
type PartLoader interface {
	LoadPart(name string) (string, error)
}

// Writer serializes documents to .pptx files.
// Create with NewWriter. Safe for concurrent use.
type Writer struct {
	encoder *pptx.Encoder
	palette Palette
	clock   func() time.Time
	lang    string
	title   string
	author  string
	logger  *slog.Logger
	loader  PartLoader
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock sets the source of the creation timestamp. A nil clock, or one
// returning the zero time, stamps the Unix epoch so output is reproducible.
func WithClock(clock func() time.Time) WriterOption {
	return func(w *Writer) {
		w.clock = clock
	}
}

// WithDefaultTitle sets the title recorded when the document has none.
func WithDefaultTitle(title string) WriterOption {
	return func(w *Writer) {
		w.title = title
	}
}

// WithDefaultAuthor sets the author recorded when the document has none.
func WithDefaultAuthor(author string) WriterOption {
	return func(w *Writer) {
		w.author = author
	}
}

// WithLanguage sets the default text language. Empty omits it.
func WithLanguage(lang string) WriterOption {
	return func(w *Writer) {
		w.lang = lang
	}
}

// WithWriterLogger sets the logger for write diagnostics.
func WithWriterLogger(l *slog.Logger) WriterOption {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithPartLoader replaces the embedded package parts.
func WithPartLoader(l PartLoader) WriterOption {
	return func(w *Writer) {
		w.loader = l
	}
}

// NewWriter creates a Writer. Returns an error if the package parts cannot
// be loaded or parsed.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		palette: DefaultPalette(),
		lang:    DefaultLanguage,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}

	var err error
	if w.loader != nil {
		w.encoder, err = pptx.NewEncoderWithLoader(w.loader)
	} else {
		w.encoder, err = pptx.NewEncoder()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeDeck, err)
	}
	return w, nil
}

// Encode serializes doc to the bytes of a .pptx package without sealing it.
func (w *Writer) Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	data, err := w.encoder.EncodeBytes(w.presentation(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeDeck, err)
	}
	return data, nil
}

// Write serializes doc and replaces the file at path in one atomic step:
// on failure the destination is left untouched. The document is sealed once
// encoded, whether or not the file write succeeds. I/O failures are returned
// as *WriteError and are not retried.
func (w *Writer) Write(doc *Document, path string) error {
	if path == "" {
		return &WriteError{Path: path, Err: ErrEmptyPath}
	}
	data, err := w.Encode(doc)
	if err != nil {
		return err
	}
	doc.seal()

	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	w.logger.Debug("wrote presentation", "path", path, "slides", doc.Len(), "bytes", len(data))
	return nil
}

// WriteFile writes doc to path with default settings. See Writer.Write.
func WriteFile(doc *Document, path string) error {
	w, err := NewWriter()
	if err != nil {
		return err
	}
	return w.Write(doc, path)
}

func (w *Writer) presentation(doc *Document) *pptx.Presentation {
	c := doc.Canvas()
	p := &pptx.Presentation{
		Width:  int64(c.Width),
		Height: int64(c.Height),
		Slides: make([]pptx.Slide, doc.Len()),
		Title:  firstNonEmpty(doc.Title, w.title),
		Author: firstNonEmpty(doc.Author, w.author),
		Lang:   w.lang,
		Theme: pptx.ThemeColors{
			Primary:   w.palette.Primary.Hex(),
			Secondary: w.palette.Secondary.Hex(),
			Accent:    w.palette.Accent.Hex(),
			Text:      w.palette.Text.Hex(),
			LightBg:   w.palette.LightBg.Hex(),
		},
	}
	if w.clock != nil {
		p.Created = w.clock()
	}
	for i, s := range doc.slides {
		p.Slides[i] = toPPTXSlide(s)
	}
	return p
}

func toPPTXSlide(s Slide) pptx.Slide {
	out := pptx.Slide{Shapes: make([]pptx.Shape, len(s.Shapes))}
	for i, sh := range s.Shapes {
		ps := pptx.Shape{
			Name:     sh.Name,
			TextBox:  sh.Kind == ShapeTextBox,
			X:        int64(sh.Frame.X),
			Y:        int64(sh.Frame.Y),
			CX:       int64(sh.Frame.Width),
			CY:       int64(sh.Frame.Height),
			WordWrap: sh.WordWrap,
		}
		if sh.Kind == ShapeRect {
			ps.Fill = sh.Fill.Hex()
		}
		for _, p := range sh.Paragraphs {
			ps.Paragraphs = append(ps.Paragraphs, pptx.Paragraph{
				Text:       p.Text,
				Size:       int(p.Size),
				Bold:       p.Bold,
				Color:      p.Color.Hex(),
				Center:     p.Align == AlignCenter,
				SpaceAfter: int(p.SpaceAfter),
			})
		}
		out.Shapes[i] = ps
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
