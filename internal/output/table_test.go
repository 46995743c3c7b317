package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_RendersHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"Name", "URL"})
	table.AddRow([]string{"Cozy Up (Doctor)", "https://omny.fm/shows/cozy-up/playlists/doctor.rss"})
	table.AddRow([]string{"Other Show", "https://example.com/feed.rss"})
	table.Render()

	out := buf.String()
	if !strings.Contains(strings.ToUpper(out), "NAME") || !strings.Contains(strings.ToUpper(out), "URL") {
		t.Errorf("table output missing headers, got:\n%s", out)
	}
	if !strings.Contains(out, "Cozy Up (Doctor)") {
		t.Errorf("table output missing first row, got:\n%s", out)
	}
	if !strings.Contains(out, "https://example.com/feed.rss") {
		t.Errorf("table output missing second row, got:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Errorf("table output has %d lines, want header plus two rows:\n%s", len(lines), out)
	}
}
