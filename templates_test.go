package slidedeck_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-slidedeck"
)

var (
	canvas  = slidedeck.DefaultCanvas()
	palette = slidedeck.DefaultPalette()
)

// ---------------------------------------------------------------------------
// TestRenderTitle - Hero slide and the empty-subtitle rule
// ---------------------------------------------------------------------------

func TestRenderTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		subtitle  string
		wantBoxes [][]string
	}{
		{
			name:      "empty subtitle creates no subtitle box",
			subtitle:  "",
			wantBoxes: [][]string{{"Report"}},
		},
		{
			name:      "subtitle gets its own box",
			subtitle:  "X",
			wantBoxes: [][]string{{"Report"}, {"X"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := slidedeck.RenderTitle(canvas, palette, "Report", tt.subtitle)
			if s.Kind != slidedeck.KindTitle {
				t.Errorf("Kind = %v, want title", s.Kind)
			}
			if diff := cmp.Diff(tt.wantBoxes, boxTexts(s)); diff != "" {
				t.Errorf("text boxes mismatch (-want +got):\n%s", diff)
			}

			bg := s.Shapes[0]
			if bg.Kind != slidedeck.ShapeRect || bg.Frame.Height != canvas.Height || bg.Frame.Width != canvas.Width {
				t.Errorf("background = %+v, want full-canvas rectangle", bg.Frame)
			}
			if bg.Fill != palette.Primary {
				t.Errorf("background fill = %s, want primary", bg.Fill.Hex())
			}

			title := s.TextBoxes()[0].Paragraphs[0]
			if title.Size != slidedeck.Pt(44) || !title.Bold || title.Color != slidedeck.White || title.Align != slidedeck.AlignCenter {
				t.Errorf("title paragraph = %+v, want 44pt bold white centered", title)
			}
			if tt.subtitle != "" {
				sub := s.TextBoxes()[1].Paragraphs[0]
				if sub.Color != slidedeck.Muted || sub.Align != slidedeck.AlignCenter {
					t.Errorf("subtitle paragraph = %+v, want muted centered", sub)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderContent - Header band and ordered lines
// ---------------------------------------------------------------------------

func TestRenderContent(t *testing.T) {
	t.Parallel()

	s := slidedeck.RenderContent(canvas, palette, "Findings", []string{"Line1", "Line2", ""})

	if s.Kind != slidedeck.KindContent {
		t.Errorf("Kind = %v, want content", s.Kind)
	}
	want := [][]string{{"Findings"}, {"Line1", "Line2", ""}}
	if diff := cmp.Diff(want, boxTexts(s)); diff != "" {
		t.Errorf("text boxes mismatch (-want +got):\n%s", diff)
	}

	band := s.Shapes[0]
	if band.Frame.Height != slidedeck.Inches(1.2) || band.Fill != palette.Primary {
		t.Errorf("band = %+v fill %s, want 1.2in primary", band.Frame, band.Fill.Hex())
	}

	header := s.TextBoxes()[0].Paragraphs[0]
	if header.Size != slidedeck.Pt(32) || !header.Bold || header.Color != slidedeck.White || header.Align != slidedeck.AlignLeft {
		t.Errorf("header paragraph = %+v, want 32pt bold white left", header)
	}

	body := s.TextBoxes()[1]
	if !body.WordWrap {
		t.Error("content body should wrap")
	}
	for _, p := range body.Paragraphs {
		if p.Size != slidedeck.Pt(20) || p.Color != palette.Text || p.SpaceAfter != slidedeck.Pt(12) {
			t.Errorf("body paragraph = %+v, want 20pt text color 12pt spacing", p)
		}
	}
}

func TestRenderContent_EmptyLines(t *testing.T) {
	t.Parallel()

	s := slidedeck.RenderContent(canvas, palette, "", nil)
	if got := len(s.TextBoxes()); got != 2 {
		t.Fatalf("text boxes = %d, want 2", got)
	}
	if got := len(s.TextBoxes()[1].Paragraphs); got != 0 {
		t.Errorf("body paragraphs = %d, want 0", got)
	}
	if s.Title() != "" {
		t.Errorf("Title() = %q, want empty", s.Title())
	}
}

// ---------------------------------------------------------------------------
// TestRenderSummary - Bullet prefix and wider spacing
// ---------------------------------------------------------------------------

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	s := slidedeck.RenderSummary(canvas, palette, "Takeaways", []string{"A", "B"})

	want := [][]string{{"Takeaways"}, {"• A", "• B"}}
	if diff := cmp.Diff(want, boxTexts(s)); diff != "" {
		t.Errorf("text boxes mismatch (-want +got):\n%s", diff)
	}
	if s.Shapes[0].Fill != palette.Secondary {
		t.Errorf("band fill = %s, want secondary", s.Shapes[0].Fill.Hex())
	}

	content := slidedeck.RenderContent(canvas, palette, "x", []string{"x"})
	summarySpacing := s.TextBoxes()[1].Paragraphs[0].SpaceAfter
	contentSpacing := content.TextBoxes()[1].Paragraphs[0].SpaceAfter
	if summarySpacing != slidedeck.Pt(16) || summarySpacing <= contentSpacing {
		t.Errorf("summary spacing = %v, content spacing = %v, want 16pt > 12pt", summarySpacing.Points(), contentSpacing.Points())
	}
	if size := s.TextBoxes()[1].Paragraphs[0].Size; size < slidedeck.Pt(20) || size > slidedeck.Pt(24) {
		t.Errorf("summary size = %vpt, want 20-24pt", size.Points())
	}
}

// ---------------------------------------------------------------------------
// TestRenderClosing - Closing slide layout
// ---------------------------------------------------------------------------

func TestRenderClosing(t *testing.T) {
	t.Parallel()

	s := slidedeck.RenderClosing(canvas, palette, slidedeck.DefaultClosingTitle, "")
	if diff := cmp.Diff([][]string{{"感谢聆听"}}, boxTexts(s)); diff != "" {
		t.Errorf("text boxes mismatch (-want +got):\n%s", diff)
	}

	s = slidedeck.RenderClosing(canvas, palette, "Bye", "Questions?")
	if diff := cmp.Diff([][]string{{"Bye"}, {"Questions?"}}, boxTexts(s)); diff != "" {
		t.Errorf("text boxes mismatch (-want +got):\n%s", diff)
	}
	boxes := s.TextBoxes()
	if boxes[1].Frame.Y <= boxes[0].Frame.Y {
		t.Error("subtitle should sit below the title")
	}
}

// ---------------------------------------------------------------------------
// TestTemplates_Deterministic - Same input, same slide
// ---------------------------------------------------------------------------

func TestTemplates_Deterministic(t *testing.T) {
	t.Parallel()

	renders := []func() slidedeck.Slide{
		func() slidedeck.Slide { return slidedeck.RenderTitle(canvas, palette, "T", "S") },
		func() slidedeck.Slide { return slidedeck.RenderContent(canvas, palette, "T", []string{"a", "b"}) },
		func() slidedeck.Slide { return slidedeck.RenderSummary(canvas, palette, "T", []string{"a"}) },
		func() slidedeck.Slide { return slidedeck.RenderClosing(canvas, palette, "T", "") },
	}
	for i, render := range renders {
		if diff := cmp.Diff(render(), render()); diff != "" {
			t.Errorf("render %d differs between calls (-first +second):\n%s", i, diff)
		}
	}
}

func TestTemplates_ShapeNamesUnique(t *testing.T) {
	t.Parallel()

	s := slidedeck.RenderTitle(canvas, palette, "T", "S")
	want := []string{"Rectangle 1", "TextBox 2", "TextBox 3"}
	got := make([]string, len(s.Shapes))
	for i, sh := range s.Shapes {
		got[i] = sh.Name
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shape names mismatch (-want +got):\n%s", diff)
	}
}

// boxTexts returns the paragraph texts of every text box, in z-order.
func boxTexts(s slidedeck.Slide) [][]string {
	var out [][]string
	for _, b := range s.TextBoxes() {
		out = append(out, b.Text())
	}
	return out
}
