// Package slidedeck renders typed slide descriptors into PowerPoint (.pptx)
// presentations.
//
// # Quick Start
//
// Describe the slides, assemble them into a document, and write it:
//
//	doc := slidedeck.Assemble([]slidedeck.Descriptor{
//	    slidedeck.TitleSlide{Title: "Report"},
//	    slidedeck.ContentSlide{Title: "Findings", Lines: []string{"Line1", "Line2"}},
//	    slidedeck.SummarySlide{Title: "Takeaways", Points: []string{"A", "B"}},
//	    slidedeck.ClosingSlide{Title: slidedeck.DefaultClosingTitle},
//	})
//	if err := slidedeck.WriteFile(doc, "report.pptx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Data flows one way:
//
//  1. Descriptors come from code, from a JSON/YAML file (ParseDeck,
//     LoadDeck), from a Markdown outline (FromMarkdown) or from the quick
//     "a|b|c" form (QuickDeck).
//  2. The Assembler dispatches each descriptor to its archetype template
//     (RenderTitle, RenderContent, RenderSummary, RenderClosing) and appends
//     the slides to a Document in input order.
//  3. The Writer encodes the Document as an Office Open XML package and
//     replaces the destination file atomically.
//
// # Design System
//
// Every slide shares one canvas (10 x 7.5 inches) and one fixed palette
// (DefaultPalette). Templates are pure functions of canvas, palette and
// descriptor fields: the same input always yields the same shapes.
//
// # Parallel Rendering
//
// Rendering is independent per slide. NewAssembler(WithWorkers(n)) renders
// up to n slides at once; slides are still placed by input index.
//
// # Errors
//
// Input problems are reported before rendering and wrap ErrDescriptorParse,
// ErrInvalidDescriptor, ErrUnknownSlideType, ErrEmptyInput or
// ErrMarkdownParse (see IsInputError). Field-level problems are
// *DescriptorError values carrying the slide index. Encoding problems wrap
// ErrEncodeDeck. File-system failures are *WriteError values matching
// ErrWriteDeck; the destination is untouched when they occur.
package slidedeck
