package slidedeck

import "strings"

// Kind identifies a slide archetype.
type Kind int

// Slide archetypes.
const (
	KindTitle Kind = iota + 1
	KindContent
	KindSummary
	KindClosing
)

// Type tags as they appear in descriptor files.
const (
	TagTitle   = "title"
	TagContent = "content"
	TagSummary = "summary"
	TagClosing = "closing"
)

// Default texts used when a descriptor omits them.
const (
	DefaultClosingTitle = "感谢聆听"
	DefaultDeckTitle    = "演示文稿"
	DefaultContentTitle = "内容"
)

// String returns the descriptor type tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindTitle:
		return TagTitle
	case KindContent:
		return TagContent
	case KindSummary:
		return TagSummary
	case KindClosing:
		return TagClosing
	}
	return "unknown"
}

// ParseKind maps a type tag to its kind. Tags match exactly; the second
// result is false for anything else, including differently cased tags.
func ParseKind(tag string) (Kind, bool) {
	switch tag {
	case TagTitle:
		return KindTitle, true
	case TagContent:
		return KindContent, true
	case TagSummary:
		return KindSummary, true
	case TagClosing:
		return KindClosing, true
	}
	return 0, false
}

// KnownTags lists the accepted type tags in archetype order.
func KnownTags() []string {
	return []string{TagTitle, TagContent, TagSummary, TagClosing}
}

// Descriptor is the declarative description of one slide.
// The set of implementations is closed: TitleSlide, ContentSlide,
// SummarySlide and ClosingSlide.
type Descriptor interface {
	Kind() Kind
	sealed()
}

// TitleSlide is a full-bleed hero slide with an optional subtitle.
type TitleSlide struct {
	Title    string
	Subtitle string
}

// ContentSlide is a header band followed by one paragraph per line.
type ContentSlide struct {
	Title string
	Lines []string
}

// SummarySlide is a header band followed by bulleted takeaways.
type SummarySlide struct {
	Title  string
	Points []string
}

// ClosingSlide is a full-bleed ending slide with an optional subtitle.
// Decoders fill Title with DefaultClosingTitle when the field is absent.
type ClosingSlide struct {
	Title    string
	Subtitle string
}

func (TitleSlide) Kind() Kind   { return KindTitle }
func (ContentSlide) Kind() Kind { return KindContent }
func (SummarySlide) Kind() Kind { return KindSummary }
func (ClosingSlide) Kind() Kind { return KindClosing }

func (TitleSlide) sealed()   {}
func (ContentSlide) sealed() {}
func (SummarySlide) sealed() {}
func (ClosingSlide) sealed() {}

// QuickDeck builds the two-slide deck of the simple command-line mode:
// a Title slide followed by a Content slide whose lines come from splitting
// joined on '|'. An empty title falls back to DefaultDeckTitle.
func QuickDeck(title, joined string) []Descriptor {
	if title == "" {
		title = DefaultDeckTitle
	}
	return []Descriptor{
		TitleSlide{Title: title},
		ContentSlide{Title: DefaultContentTitle, Lines: strings.Split(joined, "|")},
	}
}
