package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainDescription reduces an episode's HTML description to one line of
// plain text for display, truncated to max runes (0 means no truncation).
// Shownotes are untrusted markup from the feed; anything that fails to
// parse degrades to an empty string rather than an error.
func PlainDescription(ep Episode, max int) string {
	if strings.TrimSpace(ep.Description) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ep.Description))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if max > 0 {
		if runes := []rune(text); len(runes) > max {
			text = strings.TrimRight(string(runes[:max-1]), " ") + "…"
		}
	}
	return text
}
