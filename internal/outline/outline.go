// Package outline extracts a slide outline from Markdown.
//
// The first level-1 heading becomes the deck title and the paragraph right
// below it the subtitle. Every level-2 heading (and any later level-1
// heading) opens a section. Inside a section, paragraphs, list items, table
// rows, code lines and deeper headings each become one line of plain text.
package outline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Sentinel errors.
var (
	ErrEmptyDocument = errors.New("markdown has no headings or text")
	ErrParse         = errors.New("failed to parse markdown")
)

// Outline is the slide structure found in a Markdown document.
type Outline struct {
	Title    string
	Subtitle string
	Sections []Section
}

// Section is one slide's worth of content. Heading is empty for text that
// appears between the title and the first section heading.
type Section struct {
	Heading string
	Lines   []string
}

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Parser turns Markdown into an Outline. Safe for concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with GitHub Flavored Markdown tables, task
// lists and strikethrough enabled.
func NewParser() *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Parse builds an outline from src. Goldmark has no cancellation hook, so the
// parse runs in a goroutine and ctx only bounds the wait.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		outline *Outline
		err     error
	}
	done := make(chan result, 1)

	go func() {
		o, err := p.parse(src)
		done <- result{outline: o, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.outline, r.err
	}
}

func (p *Parser) parse(src []byte) (o *Outline, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, fmt.Errorf("%w: %v", ErrParse, r)
		}
	}()

	src = crlfOrCR.ReplaceAll(src, []byte("\n"))
	doc := p.md.Parser().Parse(text.NewReader(src))

	b := &builder{src: src, out: &Outline{}}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		b.block(n)
	}

	if b.out.Title == "" && len(b.out.Sections) == 0 {
		return nil, ErrEmptyDocument
	}
	return b.out, nil
}

type builder struct {
	src      []byte
	out      *Outline
	current  *Section
	hasTitle bool
	// wantSubtitle is set between the title heading and the next block.
	wantSubtitle bool
}

func (b *builder) block(n ast.Node) {
	wantSubtitle := b.wantSubtitle
	b.wantSubtitle = false

	switch n := n.(type) {
	case *ast.Heading:
		b.heading(n)
	case *ast.Paragraph:
		line := b.inline(n)
		if wantSubtitle {
			b.out.Subtitle = line
			return
		}
		b.add(line)
	case *ast.TextBlock:
		b.add(b.inline(n))
	case *ast.List:
		b.list(n)
	case *east.Table:
		b.table(n)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		b.code(n)
	case *ast.Blockquote:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.block(c)
		}
	case *ast.ThematicBreak, *ast.HTMLBlock:
		// no text
	}
}

func (b *builder) heading(h *ast.Heading) {
	title := b.inline(h)
	switch {
	case h.Level == 1 && !b.hasTitle:
		b.out.Title = title
		b.hasTitle = true
		b.current = nil
		b.wantSubtitle = true
	case h.Level <= 2:
		b.out.Sections = append(b.out.Sections, Section{Heading: title})
		b.current = &b.out.Sections[len(b.out.Sections)-1]
	default:
		b.add(title)
	}
}

// add appends a line to the open section, opening an untitled one if needed.
func (b *builder) add(line string) {
	if line == "" {
		return
	}
	if b.current == nil {
		b.out.Sections = append(b.out.Sections, Section{})
		b.current = &b.out.Sections[len(b.out.Sections)-1]
	}
	b.current.Lines = append(b.current.Lines, line)
}

func (b *builder) list(l *ast.List) {
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				b.list(c)
			case *ast.Paragraph, *ast.TextBlock:
				b.add(b.inline(c))
			default:
				b.block(c)
			}
		}
	}
}

func (b *builder) table(t *east.Table) {
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, b.inline(cell))
		}
		b.add(strings.Join(cells, " | "))
	}
}

func (b *builder) code(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.add(strings.TrimRight(string(seg.Value(b.src)), " \t\n"))
	}
}

// inline flattens the inline children of n to plain text.
func (b *builder) inline(n ast.Node) string {
	var sb strings.Builder
	b.collect(&sb, n)
	return strings.TrimSpace(sb.String())
}

func (b *builder) collect(sb *strings.Builder, n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(b.src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.AutoLink:
			sb.Write(c.URL(b.src))
		case *ast.RawHTML, *east.TaskCheckBox:
			// markup only
		default:
			b.collect(sb, c)
		}
	}
}
