package placeholder

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"
)

// sanitizeText makes remote text safe to print: markup is reduced to its text
// and terminal escape sequences are removed.
func sanitizeText(s string) string {
	return strings.TrimSpace(sanitizeForTerminal(stripHTML(s)))
}

// stripHTML reduces markup to text. Entities are decoded, line-level elements
// become newlines and the content of script/style elements is dropped.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			return b.String()
		case nethtml.TextToken:
			if skip == 0 {
				b.WriteString(z.Token().Data)
			}
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript":
				if tt == nethtml.StartTagToken {
					skip++
				}
			case "br":
				b.WriteByte('\n')
			}
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript":
				if skip > 0 {
					skip--
				}
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteByte('\n')
			}
		}
	}
}

// sanitizeForTerminal removes ANSI/OSC sequences and control characters,
// keeping newlines and tabs.
func sanitizeForTerminal(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r <= 0x9f:
			return -1
		default:
			return r
		}
	}, s)
}
