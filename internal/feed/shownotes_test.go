package feed

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPlainDescription(t *testing.T) {
	tests := []struct {
		name string
		html string
		max  int
		want string
	}{
		{
			name: "strips_tags",
			html: "<p>Welcome to the <b>show</b>.</p>",
			max:  0,
			want: "Welcome to the show.",
		},
		{
			name: "collapses_whitespace",
			html: "<div>line one</div>\n\t<div>line   two</div>",
			max:  0,
			want: "line one line two",
		},
		{
			name: "plain_text_passes_through",
			html: "no markup at all",
			max:  0,
			want: "no markup at all",
		},
		{
			name: "decodes_entities",
			html: "<p>tea &amp; biscuits</p>",
			max:  0,
			want: "tea & biscuits",
		},
		{
			name: "empty_input",
			html: "",
			max:  0,
			want: "",
		},
		{
			name: "whitespace_only",
			html: "  \n\t ",
			max:  0,
			want: "",
		},
		{
			name: "truncates_long_text",
			html: "<p>one two three four five</p>",
			max:  11,
			want: "one two th…",
		},
		{
			name: "no_truncation_when_short_enough",
			html: "<p>short</p>",
			max:  40,
			want: "short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlainDescription(Episode{Description: tt.html}, tt.max)
			if got != tt.want {
				t.Errorf("PlainDescription(%q, %d) = %q, want %q", tt.html, tt.max, got, tt.want)
			}
		})
	}
}

func TestPlainDescriptionRespectsMaxRunes(t *testing.T) {
	long := strings.Repeat("словослово ", 30)
	got := PlainDescription(Episode{Description: long}, 50)
	if n := utf8.RuneCountInString(got); n > 50 {
		t.Errorf("PlainDescription() produced %d runes, want at most 50", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("PlainDescription() = %q, want ellipsis suffix", got)
	}
}
