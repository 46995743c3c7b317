package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestUseColors_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if UseColors() {
		t.Error("UseColors() with NO_COLOR set should return false")
	}
}

func TestUseColors_TermDumb(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	t.Setenv("TERM", "dumb")
	if UseColors() {
		t.Error("UseColors() with TERM=dumb should return false")
	}
}

func TestUseColors_Default(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	t.Setenv("TERM", "xterm-256color")
	if !UseColors() {
		t.Error("UseColors() should return true when no overrides")
	}
}

func TestPrinter_RoutesToWriters(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	p := NewPrinterWithWriters(&stdout, &stderr, false)

	p.Banner("pdl")
	p.Info("fetching %s", "feed")
	p.Success("saved %s", "file.mp3")
	p.Print("plain")
	p.Warning("nothing found")
	p.Error("broke: %v", "reason")

	out := stdout.String()
	if !strings.Contains(out, "pdl") || !strings.Contains(out, "fetching feed") || !strings.Contains(out, "plain") {
		t.Errorf("stdout missing expected lines, got: %q", out)
	}
	if !strings.Contains(out, "[OK] saved file.mp3") {
		t.Errorf("stdout missing success line, got: %q", out)
	}

	errOut := stderr.String()
	if !strings.Contains(errOut, "[WARN] nothing found") {
		t.Errorf("stderr missing warning, got: %q", errOut)
	}
	if !strings.Contains(errOut, "[ERROR] broke: reason") {
		t.Errorf("stderr missing error, got: %q", errOut)
	}
	if strings.Contains(out, "WARN") || strings.Contains(out, "ERROR") {
		t.Errorf("warnings or errors leaked to stdout: %q", out)
	}
}

func TestPrinter_PlainFallbacksWithoutColor(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	p := NewPrinterWithWriters(&stdout, &stderr, false)

	p.Success("done")
	p.Error("failed")

	if strings.Contains(stdout.String(), "\x1b[") || strings.Contains(stderr.String(), "\x1b[") {
		t.Errorf("ANSI escapes emitted with colors disabled: %q %q", stdout.String(), stderr.String())
	}
}

func TestPrinter_BoldAndDimPassThrough(t *testing.T) {
	p := NewPrinterWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)

	if p.Bold("title") != "title" {
		t.Errorf("Bold() without colors = %q, want passthrough", p.Bold("title"))
	}
	if p.Dim("note") != "note" {
		t.Errorf("Dim() without colors = %q, want passthrough", p.Dim("note"))
	}
}
