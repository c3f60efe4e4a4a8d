// Package markdown renders post bodies to HTML as a templ component.
// It covers the subset of Markdown the content files use: headings up
// to level 4 (levels 2–4 get anchor ids so the table of contents can
// link into the body), paragraphs, lists, blockquotes, tables, fenced
// code blocks, and inline formatting.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/kotoba/content"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reImg              = regexp.MustCompile(`\!\[(.*?)\]\((.*?)\)`)
	reOrderedItem      = regexp.MustCompile(`^(\d+)\.\s`)
	reHeading          = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		Render(&buf, md)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// blockState tracks which block element is currently open so a new
// block can close it first.
type blockState int

const (
	blockNone blockState = iota
	blockParagraph
	blockList
	blockOrderedList
	blockQuote
	blockTable
)

// Render writes the HTML representation of md to buf.
func Render(buf *bytes.Buffer, md string) {
	state := blockNone
	inCode := false
	codeHasLang := false
	tableInBody := false

	closeBlock := func() {
		switch state {
		case blockParagraph:
			buf.WriteString("</p>")
		case blockList:
			buf.WriteString("</ul>")
		case blockOrderedList:
			buf.WriteString("</ol>")
		case blockQuote:
			buf.WriteString("</blockquote>")
		case blockTable:
			if tableInBody {
				buf.WriteString("</tbody>")
			}
			buf.WriteString("</table>")
			tableInBody = false
		}
		state = blockNone
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if inCode {
				buf.WriteString("</code></pre>")
				if codeHasLang {
					buf.WriteString("</div>")
					codeHasLang = false
				}
				inCode = false
			} else {
				closeBlock()
				lang := html.EscapeString(strings.TrimSpace(line[3:]))
				if lang != "" {
					codeHasLang = true
					buf.WriteString(`<div class="code-block-wrapper"><span class="code-lang code-lang-` + lang + `">` + lang + `</span>`)
					buf.WriteString(`<pre class="code-block"><code class="language-` + lang + `">`)
				} else {
					buf.WriteString(`<pre class="code-block"><code>`)
				}
				inCode = true
			}
			continue
		}
		if inCode {
			buf.WriteString(html.EscapeString(line))
			buf.WriteString("\n")
			continue
		}

		if strings.TrimSpace(line) == "" {
			closeBlock()
			continue
		}

		if m := reHeading.FindStringSubmatch(line); m != nil {
			closeBlock()
			level := len(m[1])
			text := strings.TrimSpace(m[2])
			tag := "h" + strconv.Itoa(level)
			if level >= 2 {
				buf.WriteString(`<` + tag + ` id="` + content.HeadingID(text) + `">`)
			} else {
				buf.WriteString(`<` + tag + `>`)
			}
			buf.WriteString(FormatInline(text))
			buf.WriteString(`</` + tag + `>`)
			continue
		}

		switch {
		case strings.HasPrefix(line, "---"):
			closeBlock()
			buf.WriteString("<hr/>")
		case strings.HasPrefix(line, "|"):
			writeTableRow(buf, line, &state, &tableInBody, closeBlock)
		case strings.HasPrefix(line, "- "):
			if state != blockList {
				closeBlock()
				buf.WriteString("<ul>")
				state = blockList
			}
			buf.WriteString("<li>" + FormatInline(strings.TrimSpace(line[2:])) + "</li>")
		case reOrderedItem.MatchString(line):
			if state != blockOrderedList {
				closeBlock()
				buf.WriteString("<ol>")
				state = blockOrderedList
			}
			item := reOrderedItem.ReplaceAllString(line, "")
			buf.WriteString("<li>" + FormatInline(strings.TrimSpace(item)) + "</li>")
		case strings.HasPrefix(line, "> "):
			if state != blockQuote {
				closeBlock()
				buf.WriteString("<blockquote>")
				state = blockQuote
			}
			buf.WriteString(FormatInline(strings.TrimSpace(line[2:])))
		default:
			if state != blockParagraph {
				closeBlock()
				buf.WriteString("<p>")
				state = blockParagraph
			} else {
				buf.WriteString(" ")
			}
			buf.WriteString(FormatInline(strings.TrimSpace(line)) + "\n")
		}
	}
	closeBlock()
	if inCode {
		buf.WriteString("</code></pre>")
		if codeHasLang {
			buf.WriteString("</div>")
		}
	}
}

func writeTableRow(buf *bytes.Buffer, line string, state *blockState, tableInBody *bool, closeBlock func()) {
	if *state != blockTable {
		closeBlock()
		buf.WriteString("<table><thead><tr>")
		for _, cell := range tableCells(line) {
			buf.WriteString("<th>" + FormatInline(cell) + "</th>")
		}
		buf.WriteString("</tr></thead>")
		*state = blockTable
		return
	}
	if isTableSeparator(line) {
		if !*tableInBody {
			buf.WriteString("<tbody>")
			*tableInBody = true
		}
		return
	}
	if !*tableInBody {
		buf.WriteString("<tbody>")
		*tableInBody = true
	}
	buf.WriteString("<tr>")
	for _, cell := range tableCells(line) {
		buf.WriteString("<td>" + FormatInline(cell) + "</td>")
	}
	buf.WriteString("</tr>")
}

func tableCells(line string) []string {
	line = strings.Trim(strings.TrimSpace(line), "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isTableSeparator(line string) bool {
	line = strings.Trim(strings.TrimSpace(line), "|")
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		cleaned := strings.ReplaceAll(strings.ReplaceAll(cell, "-", ""), ":", "")
		if cleaned != "" {
			return false
		}
	}
	return true
}

// applyOutsideTags applies fn only to text segments outside HTML tags,
// so formatting regexes never touch URLs inside href attributes.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// FormatInline applies inline formatting (bold, italic, code, links,
// images) to s.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reImg.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reImg.FindStringSubmatch(m)
		src := SafeURL(match[2])
		if src == "" {
			return match[1]
		}
		return `<img loading="lazy" decoding="async" alt="` + match[1] + `" src="` + src + `"/>`
	})
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if match[3] == "^" {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})
	// Pull inline code out first so bold/italic regexes cannot format
	// content inside backticks.
	var codeSpans []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		placeholder := "\x00IC" + strconv.Itoa(len(codeSpans)) + "\x00"
		codeSpans = append(codeSpans, "<code>"+match[1]+"</code>")
		return placeholder
	})
	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})
	for i, code := range codeSpans {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
// Relative paths and fragments pass through; absolute URLs must carry
// an http, https, mailto or tel scheme.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
