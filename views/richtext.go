package views

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// Editable copy supports a small inline syntax: **bold**, *italic* and
// [label](url). Everything else is escaped.
var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reLink   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
)

// RichText renders s as one or more paragraphs. Blank lines separate
// paragraphs; single newlines become <br/>.
func RichText(s string) templ.Component {
	return component(func(b *htmlBuf) {
		writeRichText(b, s)
	})
}

func writeRichText(b *htmlBuf, s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, para := range strings.Split(s, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		for i, l := range lines {
			lines[i] = formatInline(strings.TrimSpace(l))
		}
		b.raw(`<p>`, strings.Join(lines, `<br/>`), `</p>`)
	}
}

// formatInline escapes s and applies the inline syntax.
func formatInline(s string) string {
	escaped := html.EscapeString(s)
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := safeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="underline"`
		if match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})
	return applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})
}

// applyOutsideTags applies fn only to text outside HTML tags so formatting
// never touches URLs inside href attributes.
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

// safeURL allows relative links and http, https, mailto, tel and whatsapp
// schemes. It returns "" for anything else.
func safeURL(raw string) string {
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
	case "http", "https", "mailto", "tel", "whatsapp":
		return html.EscapeString(val)
	default:
		return ""
	}
}
