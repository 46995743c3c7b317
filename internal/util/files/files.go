package files

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// maxFileNameRunes keeps sanitized names comfortably below common
// filesystem limits once an extension is appended.
const maxFileNameRunes = 120

// FallbackFileName is used when a title sanitizes down to nothing.
const FallbackFileName = "episode"

// audioExtensions are the media extensions recognized in enclosure URLs.
var audioExtensions = map[string]bool{
	"mp3":  true,
	"m4a":  true,
	"wav":  true,
	"ogg":  true,
	"flac": true,
	"ape":  true,
	"aac":  true,
	"opus": true,
}

func isReservedChar(r rune) bool {
	switch r {
	case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
		return true
	}
	return false
}

// SanitizeFileName maps an episode title to a filesystem-safe file name.
// Reserved characters become underscores, control characters are dropped,
// whitespace runs collapse to a single space, and the result is trimmed
// and truncated. Sanitizing an already sanitized name returns it unchanged.
func SanitizeFileName(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	inSpace := false
	for _, r := range title {
		switch {
		case isReservedChar(r):
			b.WriteRune('_')
			inSpace = false
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteRune(' ')
			}
			inSpace = true
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
			inSpace = false
		}
	}

	name := strings.TrimSpace(b.String())

	if runes := []rune(name); len(runes) > maxFileNameRunes {
		name = strings.TrimRight(string(runes[:maxFileNameRunes]), " ")
	}

	if name == "" {
		return FallbackFileName
	}
	return name
}

// ExtensionFromURL extracts the media extension from an enclosure URL,
// ignoring any query string. Unknown or missing extensions fall back to mp3.
func ExtensionFromURL(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	} else if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if audioExtensions[ext] {
		return ext
	}
	return "mp3"
}

// EnsureDir creates dir (and parents) if it does not exist yet.
func EnsureDir(fsys afero.Fs, dir string) error {
	info, err := fsys.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
