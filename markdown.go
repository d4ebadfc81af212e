package slidedeck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-slidedeck/internal/outline"
)

// DefaultSummaryHeadings are the section headings imported as Summary slides.
var DefaultSummaryHeadings = []string{"总结", "小结", "要点", "summary", "conclusion", "takeaways", "key points"}

// MarkdownOptions controls Markdown import.
type MarkdownOptions struct {
	// SummaryHeadings lists headings (case-insensitive) whose sections become
	// Summary slides. Nil uses DefaultSummaryHeadings; empty disables.
	SummaryHeadings []string
	// Closing appends a Closing slide.
	Closing bool
	// ClosingTitle overrides DefaultClosingTitle.
	ClosingTitle    string
	ClosingSubtitle string
}

var markdownParser = outline.NewParser()

// FromMarkdown converts a Markdown document into a deck.
//
// The first level-1 heading becomes a Title slide, with the paragraph right
// below it as subtitle. Each level-2 heading opens a Content slide whose lines
// are the section's paragraphs, list items, table rows and code lines. Text
// between the subtitle and the first section gets a Content slide titled
// DefaultContentTitle.
func FromMarkdown(ctx context.Context, src []byte, opts MarkdownOptions) (*Deck, error) {
	o, err := markdownParser.Parse(ctx, src)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if errors.Is(err, outline.ErrEmptyDocument) {
			return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMarkdownParse, err)
	}

	summary := opts.SummaryHeadings
	if summary == nil {
		summary = DefaultSummaryHeadings
	}

	deck := &Deck{Title: o.Title}
	if o.Title != "" {
		deck.Slides = append(deck.Slides, TitleSlide{Title: o.Title, Subtitle: o.Subtitle})
	}
	for _, sec := range o.Sections {
		title := sec.Heading
		if title == "" {
			title = DefaultContentTitle
		}
		lines := sec.Lines
		if lines == nil {
			lines = []string{}
		}
		if isSummaryHeading(sec.Heading, summary) {
			deck.Slides = append(deck.Slides, SummarySlide{Title: title, Points: lines})
			continue
		}
		deck.Slides = append(deck.Slides, ContentSlide{Title: title, Lines: lines})
	}
	if opts.Closing {
		deck.Slides = append(deck.Slides, ClosingSlide{
			Title:    firstNonEmpty(opts.ClosingTitle, DefaultClosingTitle),
			Subtitle: opts.ClosingSubtitle,
		})
	}
	return deck, nil
}

func isSummaryHeading(heading string, keywords []string) bool {
	h := strings.TrimSpace(heading)
	for _, k := range keywords {
		if strings.EqualFold(h, strings.TrimSpace(k)) {
			return true
		}
	}
	return false
}
