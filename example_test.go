package slidedeck_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-slidedeck"
)

// Example renders a small deck and writes it to disk.
func Example() {
	doc := slidedeck.Assemble([]slidedeck.Descriptor{
		slidedeck.TitleSlide{Title: "Report"},
		slidedeck.ContentSlide{Title: "Findings", Lines: []string{"Line1", "Line2"}},
		slidedeck.ClosingSlide{Title: slidedeck.DefaultClosingTitle},
	})

	dir, err := os.MkdirTemp("", "slidedeck-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	if err := slidedeck.WriteFile(doc, filepath.Join(dir, "report.pptx")); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(doc.Len(), "slides written")
	// Output: 3 slides written
}

// ExampleParseDescriptors decodes a descriptor list. Unknown types render as
// content slides.
func ExampleParseDescriptors() {
	data := []byte(`[
  {"type": "title", "title": "季度汇报", "subtitle": "2024"},
  {"type": "summary", "title": "总结", "points": ["稳定", "增长"]},
  {"type": "closing"}
]`)

	descriptors, err := slidedeck.ParseDescriptors(data, slidedeck.ParseOptions{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range slidedeck.Assemble(descriptors).Slides() {
		fmt.Println(s.Kind, s.Title())
	}
	// Output:
	// title 季度汇报
	// summary 总结
	// closing 感谢聆听
}

// ExampleQuickDeck builds the two-slide deck of the "a|b|c" form.
func ExampleQuickDeck() {
	doc := slidedeck.Assemble(slidedeck.QuickDeck("Weekly", "Done|Next|Risks"))
	content := doc.Slide(1)
	fmt.Println(content.Title(), content.TextBoxes()[1].Text())
	// Output: 内容 [Done Next Risks]
}

// ExampleFromMarkdown turns a Markdown outline into descriptors.
func ExampleFromMarkdown() {
	src := []byte("# Launch\n\nPlan for Q4\n\n## Goals\n\n- Ship\n- Measure\n\n## Summary\n\n- On track\n")

	deck, err := slidedeck.FromMarkdown(context.Background(), src, slidedeck.MarkdownOptions{Closing: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range deck.Slides {
		fmt.Println(d.Kind())
	}
	// Output:
	// title
	// content
	// summary
	// closing
}

// ExampleNewAssembler renders slides concurrently while keeping input order.
func ExampleNewAssembler() {
	a := slidedeck.NewAssembler(slidedeck.WithWorkers(4))
	doc, err := a.Assemble(context.Background(), []slidedeck.Descriptor{
		slidedeck.TitleSlide{Title: "One"},
		slidedeck.TitleSlide{Title: "Two"},
		slidedeck.TitleSlide{Title: "Three"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range doc.Slides() {
		fmt.Println(s.Title())
	}
	// Output:
	// One
	// Two
	// Three
}
