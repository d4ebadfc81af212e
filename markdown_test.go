package slidedeck_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-slidedeck"
)

const article = `# 季度汇报

2024 第三季度

## 业绩

- 收入增长 20%
- 新客户 12 家

## 总结

1. 稳定
2. 增长
`

// ---------------------------------------------------------------------------
// TestFromMarkdown - Outline to descriptors
// ---------------------------------------------------------------------------

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		opts slidedeck.MarkdownOptions
		want *slidedeck.Deck
	}{
		{
			name: "title content and summary",
			src:  article,
			want: &slidedeck.Deck{
				Title: "季度汇报",
				Slides: []slidedeck.Descriptor{
					slidedeck.TitleSlide{Title: "季度汇报", Subtitle: "2024 第三季度"},
					slidedeck.ContentSlide{Title: "业绩", Lines: []string{"收入增长 20%", "新客户 12 家"}},
					slidedeck.SummarySlide{Title: "总结", Points: []string{"稳定", "增长"}},
				},
			},
		},
		{
			name: "closing slide appended",
			src:  article,
			opts: slidedeck.MarkdownOptions{Closing: true, ClosingSubtitle: "Q&A", SummaryHeadings: []string{}},
			want: &slidedeck.Deck{
				Title: "季度汇报",
				Slides: []slidedeck.Descriptor{
					slidedeck.TitleSlide{Title: "季度汇报", Subtitle: "2024 第三季度"},
					slidedeck.ContentSlide{Title: "业绩", Lines: []string{"收入增长 20%", "新客户 12 家"}},
					slidedeck.ContentSlide{Title: "总结", Lines: []string{"稳定", "增长"}},
					slidedeck.ClosingSlide{Title: "感谢聆听", Subtitle: "Q&A"},
				},
			},
		},
		{
			name: "custom summary keyword and closing title",
			src:  "## Notes\n\ntext\n\n## Lessons Learned\n\n- one\n",
			opts: slidedeck.MarkdownOptions{SummaryHeadings: []string{"lessons learned"}, Closing: true, ClosingTitle: "Thanks"},
			want: &slidedeck.Deck{
				Slides: []slidedeck.Descriptor{
					slidedeck.ContentSlide{Title: "Notes", Lines: []string{"text"}},
					slidedeck.SummarySlide{Title: "Lessons Learned", Points: []string{"one"}},
					slidedeck.ClosingSlide{Title: "Thanks"},
				},
			},
		},
		{
			name: "untitled intro and empty section",
			src:  "# Deck\n\nsub\n\nintro\n\n## Empty\n",
			want: &slidedeck.Deck{
				Title: "Deck",
				Slides: []slidedeck.Descriptor{
					slidedeck.TitleSlide{Title: "Deck", Subtitle: "sub"},
					slidedeck.ContentSlide{Title: "内容", Lines: []string{"intro"}},
					slidedeck.ContentSlide{Title: "Empty", Lines: []string{}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := slidedeck.FromMarkdown(context.Background(), []byte(tt.src), tt.opts)
			if err != nil {
				t.Fatalf("FromMarkdown() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromMarkdown() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMarkdown_Errors(t *testing.T) {
	t.Parallel()

	_, err := slidedeck.FromMarkdown(context.Background(), []byte("\n\n"), slidedeck.MarkdownOptions{})
	if !errors.Is(err, slidedeck.ErrEmptyInput) {
		t.Errorf("FromMarkdown(blank) error = %v, want ErrEmptyInput", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = slidedeck.FromMarkdown(ctx, []byte(article), slidedeck.MarkdownOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FromMarkdown(cancelled) error = %v, want context.Canceled", err)
	}
}
