package slidedeck

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-slidedeck/internal/logging"
	"github.com/alnah/go-slidedeck/internal/yamlutil"
)

// Descriptor field names as they appear in descriptor files.
const (
	fieldType     = "type"
	fieldTitle    = "title"
	fieldSubtitle = "subtitle"
	fieldContent  = "content"
	fieldPoints   = "points"
	fieldAuthor   = "author"
	fieldSlides   = "slides"
)

// Deck is a parsed descriptor file: the slide list plus optional metadata.
type Deck struct {
	Title  string
	Author string
	Slides []Descriptor
}

// ParseOptions controls descriptor decoding.
type ParseOptions struct {
	// Strict rejects unrecognized type tags with ErrUnknownSlideType instead
	// of rendering them as Content slides.
	Strict bool
	// Logger receives a warning per fallback. Nil discards.
	Logger *slog.Logger
}

func (o ParseOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

// LoadDeck reads and parses a descriptor file. See ParseDeck.
func LoadDeck(path string, opts ParseOptions) (*Deck, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading descriptors: %w", err)
	}
	return ParseDeck(data, opts)
}

// ParseDescriptors parses a JSON or YAML descriptor list.
// See ParseDeck for the accepted shapes and defaults.
func ParseDescriptors(data []byte, opts ParseOptions) ([]Descriptor, error) {
	deck, err := ParseDeck(data, opts)
	if err != nil {
		return nil, err
	}
	return deck.Slides, nil
}

// ParseDeck parses JSON or YAML holding either a sequence of descriptors or a
// mapping with "title", "author" and "slides" keys.
//
// Each descriptor is a mapping with a "type" tag (default "content") and the
// fields of its archetype. Missing text fields default to "", missing lists to
// empty, and a closing slide without a title gets DefaultClosingTitle.
// Unrecognized tags render as Content unless opts.Strict is set.
//
// Parsing is all-or-nothing: the first invalid descriptor aborts with a
// *DescriptorError.
func ParseDeck(data []byte, opts ParseOptions) (*Deck, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyInput
	}

	root, err := yamlutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptorParse, err)
	}

	deck := &Deck{}
	var list []any

	switch v := root.(type) {
	case []any:
		list = v
	case map[string]any:
		if deck.Title, err = scalarField(v, fieldTitle); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDescriptorParse, err)
		}
		if deck.Author, err = scalarField(v, fieldAuthor); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDescriptorParse, err)
		}
		raw, ok := v[fieldSlides]
		if !ok {
			return nil, fmt.Errorf("%w: mapping has no %q key", ErrDescriptorParse, fieldSlides)
		}
		if raw != nil {
			if list, ok = raw.([]any); !ok {
				return nil, fmt.Errorf("%w: %q must be a sequence, got %s", ErrDescriptorParse, fieldSlides, describe(raw))
			}
		}
	default:
		return nil, fmt.Errorf("%w: expected a sequence of descriptors, got %s", ErrDescriptorParse, describe(root))
	}

	log := opts.logger()
	deck.Slides = make([]Descriptor, 0, len(list))
	for i, item := range list {
		d, err := decodeDescriptor(i, item, opts.Strict, log)
		if err != nil {
			return nil, err
		}
		deck.Slides = append(deck.Slides, d)
	}
	return deck, nil
}

func decodeDescriptor(i int, item any, strict bool, log *slog.Logger) (Descriptor, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return nil, &DescriptorError{
			Index: i,
			Err:   fmt.Errorf("%w: expected a mapping, got %s", ErrInvalidDescriptor, describe(item)),
		}
	}

	field := func(name string) (string, error) {
		s, err := scalarField(m, name)
		if err != nil {
			return "", &DescriptorError{Index: i, Field: name, Err: err}
		}
		return s, nil
	}
	list := func(name string) ([]string, error) {
		l, err := listField(m, name)
		if err != nil {
			return nil, &DescriptorError{Index: i, Field: name, Err: err}
		}
		return l, nil
	}

	tag := TagContent
	if raw, present := m[fieldType]; present && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, &DescriptorError{
				Index: i, Field: fieldType,
				Err: fmt.Errorf("%w: type tag must be a string, got %s", ErrInvalidDescriptor, describe(raw)),
			}
		}
		tag = s
	}

	kind, known := ParseKind(tag)
	if !known {
		if strict {
			return nil, &DescriptorError{
				Index: i, Field: fieldType,
				Err: fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSlideType, tag, strings.Join(KnownTags(), ", ")),
			}
		}
		log.Warn("unknown slide type, rendering as content", "index", i+1, "type", tag)
		kind = KindContent
	}

	title, err := field(fieldTitle)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindTitle:
		subtitle, err := field(fieldSubtitle)
		if err != nil {
			return nil, err
		}
		return TitleSlide{Title: title, Subtitle: subtitle}, nil
	case KindContent:
		lines, err := list(fieldContent)
		if err != nil {
			return nil, err
		}
		return ContentSlide{Title: title, Lines: lines}, nil
	case KindSummary:
		points, err := list(fieldPoints)
		if err != nil {
			return nil, err
		}
		return SummarySlide{Title: title, Points: points}, nil
	case KindClosing:
		subtitle, err := field(fieldSubtitle)
		if err != nil {
			return nil, err
		}
		if raw, present := m[fieldTitle]; !present || raw == nil {
			title = DefaultClosingTitle
		}
		return ClosingSlide{Title: title, Subtitle: subtitle}, nil
	}
	panic(fmt.Sprintf("slidedeck: unhandled kind %v", kind))
}

// scalarField returns m[name] as text. Absent and null yield "".
// Numbers and booleans are formatted; sequences and mappings are rejected.
func scalarField(m map[string]any, name string) (string, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := scalarText(raw)
	if !ok {
		return "", fmt.Errorf("%w: expected text, got %s", ErrInvalidDescriptor, describe(raw))
	}
	return s, nil
}

// listField returns m[name] as a list of lines. Absent and null yield an
// empty list; anything other than a sequence is rejected.
func listField(m map[string]any, name string) ([]string, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return []string{}, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a sequence of text, got %s", ErrInvalidDescriptor, describe(raw))
	}
	out := make([]string, len(items))
	for j, item := range items {
		if item == nil {
			continue
		}
		s, ok := scalarText(item)
		if !ok {
			return nil, fmt.Errorf("%w: item %d: expected text, got %s", ErrInvalidDescriptor, j+1, describe(item))
		}
		out[j] = s
	}
	return out, nil
}

func scalarText(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}

// describe names the shape of a decoded value for error messages.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a sequence"
	case map[string]any:
		return "a mapping"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	}
	if _, ok := scalarText(v); ok {
		return "a number"
	}
	return fmt.Sprintf("%T", v)
}

// IsInputError reports whether err belongs to the input stage.
func IsInputError(err error) bool {
	return errors.Is(err, ErrDescriptorParse) ||
		errors.Is(err, ErrInvalidDescriptor) ||
		errors.Is(err, ErrUnknownSlideType) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrMarkdownParse)
}
