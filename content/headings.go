package content

import (
	"strings"
	"unicode"
)

// Heading is a document heading with a generated anchor id. IDs are
// deterministic per heading text but not deduplicated across a document.
type Heading struct {
	ID    string
	Text  string
	Level int // 2–4
}

// ExtractHeadings scans body for level 2–4 Markdown headings in document
// order. Level 1 is reserved for the document title and levels past 4
// are ignored, as are heading-looking lines inside fenced code blocks.
func ExtractHeadings(body string) []Heading {
	var headings []Heading
	inCode := false
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}
		var level int
		switch {
		case strings.HasPrefix(line, "## "):
			level = 2
		case strings.HasPrefix(line, "### "):
			level = 3
		case strings.HasPrefix(line, "#### "):
			level = 4
		default:
			continue
		}
		text := strings.TrimSpace(line[level+1:])
		if text == "" {
			continue
		}
		headings = append(headings, Heading{ID: HeadingID(text), Text: text, Level: level})
	}
	return headings
}

// HeadingID converts heading text to a URL-safe anchor id: lowercase,
// ASCII letters and digits separated by single hyphens, no hyphen at
// either end. Text with nothing left after stripping yields "section"
// so anchor hrefs are never empty.
func HeadingID(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(text))
	prevHyphen := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == '-' || unicode.IsSpace(r):
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	id := strings.TrimRight(b.String(), "-")
	if id == "" {
		return "section"
	}
	return id
}
