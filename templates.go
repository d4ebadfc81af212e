package slidedeck

import "strconv"

// Layout constants, in inches and points.
const (
	headerBandHeight = 1.2

	heroTitleSize   = 44
	headerTitleSize = 32
	subtitleSize    = 24
	contentSize     = 20
	summarySize     = 22

	contentSpacing = 12
	summarySpacing = 16

	bulletPrefix = "• "
)

// RenderTitle renders a Title slide: full-canvas primary fill, centered hero
// title and, when subtitle is non-empty, a muted centered subtitle.
func RenderTitle(c Canvas, p Palette, title, subtitle string) Slide {
	s := Slide{Kind: KindTitle}
	s.Shapes = append(s.Shapes,
		background(c, c.Height, p.Color(ColorPrimary)),
		heroTitle(title, Frame{X: Inches(1), Y: Inches(2.5), Width: Inches(8), Height: Inches(1.5)}),
	)
	if subtitle != "" {
		s.Shapes = append(s.Shapes,
			subtitleBox(subtitle, Frame{X: Inches(1), Y: Inches(4), Width: Inches(8), Height: Inches(1)}))
	}
	return numberShapes(s)
}

// RenderContent renders a Content slide: a primary header band with the
// left-aligned title and one wrapped paragraph per line, in input order.
func RenderContent(c Canvas, p Palette, title string, lines []string) Slide {
	body := bodyBox(lines, "", contentSize, contentSpacing, p.Color(ColorText),
		Frame{X: Inches(0.5), Y: Inches(1.5), Width: Inches(9), Height: Inches(5.5)})
	body.WordWrap = true

	return numberShapes(Slide{
		Kind: KindContent,
		Shapes: []Shape{
			background(c, Inches(headerBandHeight), p.Color(ColorPrimary)),
			headerTitle(title),
			body,
		},
	})
}

// RenderSummary renders a Summary slide: a secondary header band with the
// title and one bulleted paragraph per point, spaced wider than content.
func RenderSummary(c Canvas, p Palette, title string, points []string) Slide {
	return numberShapes(Slide{
		Kind: KindSummary,
		Shapes: []Shape{
			background(c, Inches(headerBandHeight), p.Color(ColorSecondary)),
			headerTitle(title),
			bodyBox(points, bulletPrefix, summarySize, summarySpacing, p.Color(ColorText),
				Frame{X: Inches(0.5), Y: Inches(1.5), Width: Inches(9), Height: Inches(5)}),
		},
	})
}

// RenderClosing renders a Closing slide. It mirrors the Title slide with the
// title and subtitle set lower on the canvas.
func RenderClosing(c Canvas, p Palette, title, subtitle string) Slide {
	s := Slide{Kind: KindClosing}
	s.Shapes = append(s.Shapes,
		background(c, c.Height, p.Color(ColorPrimary)),
		heroTitle(title, Frame{X: Inches(1), Y: Inches(3), Width: Inches(8), Height: Inches(1)}),
	)
	if subtitle != "" {
		s.Shapes = append(s.Shapes,
			subtitleBox(subtitle, Frame{X: Inches(1), Y: Inches(4.5), Width: Inches(8), Height: Inches(1)}))
	}
	return numberShapes(s)
}

// background is a band spanning the canvas width from the top edge.
func background(c Canvas, height Length, fill RGB) Shape {
	return Shape{
		Kind:  ShapeRect,
		Name:  "Rectangle",
		Frame: Frame{Width: c.Width, Height: height},
		Fill:  fill,
	}
}

func heroTitle(title string, f Frame) Shape {
	return Shape{
		Kind:  ShapeTextBox,
		Name:  "TextBox",
		Frame: f,
		Paragraphs: []Paragraph{{
			Text:  title,
			Size:  Pt(heroTitleSize),
			Bold:  true,
			Color: White,
			Align: AlignCenter,
		}},
	}
}

func headerTitle(title string) Shape {
	return Shape{
		Kind:  ShapeTextBox,
		Name:  "TextBox",
		Frame: Frame{X: Inches(0.5), Y: Inches(0.3), Width: Inches(9), Height: Inches(0.8)},
		Paragraphs: []Paragraph{{
			Text:  title,
			Size:  Pt(headerTitleSize),
			Bold:  true,
			Color: White,
		}},
	}
}

func subtitleBox(subtitle string, f Frame) Shape {
	return Shape{
		Kind:  ShapeTextBox,
		Name:  "TextBox",
		Frame: f,
		Paragraphs: []Paragraph{{
			Text:  subtitle,
			Size:  Pt(subtitleSize),
			Color: Muted,
			Align: AlignCenter,
		}},
	}
}

// bodyBox renders one paragraph per item. An empty list still yields the
// text box, holding no paragraphs.
func bodyBox(items []string, prefix string, size, spacing float64, color RGB, f Frame) Shape {
	paras := make([]Paragraph, len(items))
	for i, item := range items {
		paras[i] = Paragraph{
			Text:       prefix + item,
			Size:       Pt(size),
			Color:      color,
			SpaceAfter: Pt(spacing),
		}
	}
	return Shape{Kind: ShapeTextBox, Name: "TextBox", Frame: f, Paragraphs: paras}
}

// numberShapes suffixes shape names with their position so every name on a
// slide is unique and stable across renders.
func numberShapes(s Slide) Slide {
	for i := range s.Shapes {
		s.Shapes[i].Name += " " + strconv.Itoa(i+1)
	}
	return s
}
