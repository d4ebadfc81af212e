package yamlutil_test

// Notes:
// - Decode is tested on shapes only; descriptor semantics live in the root
//   package tests.
// - TestInputSizeLimit mutates MaxInputSize and therefore runs sequentially.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-slidedeck/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

type testDeck struct {
	Title  string           `yaml:"title"`
	Slides []map[string]any `yaml:"slides"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML with known fields only",
			data: []byte("name: strict\ncount: 10"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "strict" {
					t.Errorf("Name = %q, want %q", cfg.Name, "strict")
				}
				if cfg.Count != 10 {
					t.Errorf("Count = %d, want %d", cfg.Count, 10)
				}
			},
		},
		{
			name:    "unknown field causes error",
			data:    []byte("name: test\nunknown_field: value"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"), // should error on unknown field
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecode - Generic decoding for shape inspection
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, v any)
		wantErr error
	}{
		{
			name: "JSON array",
			data: `[{"type": "title", "title": "Q3"}, {"type": "content"}]`,
			check: func(t *testing.T, v any) {
				list, ok := v.([]any)
				if !ok {
					t.Fatalf("Decode() = %T, want []any", v)
				}
				if len(list) != 2 {
					t.Fatalf("len = %d, want 2", len(list))
				}
				m, ok := list[0].(map[string]any)
				if !ok {
					t.Fatalf("element = %T, want map[string]any", list[0])
				}
				if m["title"] != "Q3" {
					t.Errorf("title = %v, want Q3", m["title"])
				}
			},
		},
		{
			name: "YAML mapping",
			data: "title: 季度汇报\nslides:\n  - type: closing\n",
			check: func(t *testing.T, v any) {
				m, ok := v.(map[string]any)
				if !ok {
					t.Fatalf("Decode() = %T, want map[string]any", v)
				}
				if m["title"] != "季度汇报" {
					t.Errorf("title = %v, want 季度汇报", m["title"])
				}
				if _, ok := m["slides"].([]any); !ok {
					t.Errorf("slides = %T, want []any", m["slides"])
				}
			},
		},
		{
			name: "scalar",
			data: `"just a string"`,
			check: func(t *testing.T, v any) {
				if v != "just a string" {
					t.Errorf("Decode() = %v, want scalar string", v)
				}
			},
		},
		{
			name:    "empty input",
			data:    "",
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "syntax error",
			data:    `[{"type": "title"`,
			wantErr: errors.New("yamlutil:"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := yamlutil.Decode([]byte(tt.data))
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) && !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, v)
		})
	}
}

func TestUnmarshalStrict_DeckDocument(t *testing.T) {
	t.Parallel()

	data := []byte("title: Review\nslides:\n  - type: summary\n    points: [a, b]\n")
	var deck testDeck
	if err := yamlutil.UnmarshalStrict(data, &deck); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.Title != "Review" {
		t.Errorf("Title = %q, want Review", deck.Title)
	}
	if len(deck.Slides) != 1 || deck.Slides[0]["type"] != "summary" {
		t.Errorf("Slides = %v, want one summary slide", deck.Slides)
	}
}

// ---------------------------------------------------------------------------
// TestErrorWrapping - Verifies error types are detectable via errors.Is
// ---------------------------------------------------------------------------

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	t.Run("ErrNilData is detectable via errors.Is", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict(nil, &testConfig{})
		if !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("errors.Is(err, ErrNilData) = false, want true")
		}
	})

	t.Run("ErrNilDestination is detectable via errors.Is", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("name: test"), nil)
		if !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("errors.Is(err, ErrNilDestination) = false, want true")
		}
	})

	t.Run("wrapped errors have yamlutil prefix", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("invalid: [unclosed"), &testConfig{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want prefix 'yamlutil:'", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Note: This test modifies the global MaxInputSize variable, so it cannot
// run in parallel with other tests to avoid data races.

func TestInputSizeLimit(t *testing.T) {
	// Save and restore original MaxInputSize
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	t.Run("input at limit succeeds", func(t *testing.T) {
		yamlutil.MaxInputSize = 100
		data := make([]byte, 100)
		copy(data, []byte("name: x"))
		var cfg testConfig
		err := yamlutil.UnmarshalStrict(data, &cfg)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("input exceeding limit fails", func(t *testing.T) {
		yamlutil.MaxInputSize = 100
		data := make([]byte, 101)
		copy(data, []byte("name: x"))
		var cfg testConfig
		err := yamlutil.UnmarshalStrict(data, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})

	t.Run("error message includes sizes", func(t *testing.T) {
		yamlutil.MaxInputSize = 50
		data := make([]byte, 100)
		var cfg testConfig
		err := yamlutil.UnmarshalStrict(data, &cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		msg := err.Error()
		if !strings.Contains(msg, "100 bytes") {
			t.Errorf("error should contain actual size, got: %s", msg)
		}
		if !strings.Contains(msg, "max 50") {
			t.Errorf("error should contain max size, got: %s", msg)
		}
	})

	t.Run("Decode also enforces limit", func(t *testing.T) {
		yamlutil.MaxInputSize = 10
		_, err := yamlutil.Decode([]byte("[1, 2, 3, 4, 5]"))
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})
}
