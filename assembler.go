package slidedeck

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-slidedeck/internal/logging"
)

// Worker bounds for parallel rendering.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// Assembler renders descriptor lists into documents.
// Create with NewAssembler. Safe for concurrent use: it holds no mutable state.
type Assembler struct {
	canvas  Canvas
	palette Palette
	workers int
	logger  *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithWorkers sets how many slides are rendered concurrently.
// Panics if n is outside [MinWorkers, MaxWorkers] (programmer error).
func WithWorkers(n int) Option {
	if n < MinWorkers || n > MaxWorkers {
		panic(fmt.Sprintf("slidedeck: WithWorkers(%d) out of range [%d, %d]", n, MinWorkers, MaxWorkers))
	}
	return func(a *Assembler) {
		a.workers = n
	}
}

// WithLogger sets the logger used for per-slide debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAssembler creates an Assembler on the default canvas and palette,
// rendering sequentially unless WithWorkers is given.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		canvas:  DefaultCanvas(),
		palette: DefaultPalette(),
		workers: MinWorkers,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble renders descriptors with default settings. See Assembler.Assemble.
func Assemble(descriptors []Descriptor) *Document {
	doc, _ := NewAssembler().Assemble(context.Background(), descriptors)
	return doc
}

// Assemble renders every descriptor and appends the slides to a new document
// in input order. An empty list yields an empty document.
// With more than one worker, slides are rendered concurrently and placed by
// input index. The only error is ctx cancellation; no document is returned then.
func (a *Assembler) Assemble(ctx context.Context, descriptors []Descriptor) (*Document, error) {
	slides := make([]Slide, len(descriptors))

	if a.workers <= 1 || len(descriptors) <= 1 {
		for i, d := range descriptors {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			slides[i] = a.render(i, d)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.workers)
		for i, d := range descriptors {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				slides[i] = a.render(i, d)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	doc := NewDocument(a.canvas)
	for _, s := range slides {
		doc.Append(s)
	}
	return doc, nil
}

// Render renders a single descriptor with the assembler's canvas and palette.
func (a *Assembler) Render(d Descriptor) Slide {
	switch d := d.(type) {
	case TitleSlide:
		return RenderTitle(a.canvas, a.palette, d.Title, d.Subtitle)
	case ContentSlide:
		return RenderContent(a.canvas, a.palette, d.Title, d.Lines)
	case SummarySlide:
		return RenderSummary(a.canvas, a.palette, d.Title, d.Points)
	case ClosingSlide:
		return RenderClosing(a.canvas, a.palette, d.Title, d.Subtitle)
	case *TitleSlide:
		return a.Render(*d)
	case *ContentSlide:
		return a.Render(*d)
	case *SummarySlide:
		return a.Render(*d)
	case *ClosingSlide:
		return a.Render(*d)
	}
	panic(fmt.Sprintf("slidedeck: unhandled descriptor type %T", d))
}

func (a *Assembler) render(i int, d Descriptor) Slide {
	s := a.Render(d)
	a.logger.Debug("rendered slide", "index", i+1, "kind", s.Kind.String(), "shapes", len(s.Shapes))
	return s
}
