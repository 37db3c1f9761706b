package common

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Initials returns up to two uppercase initials of name, or "?" when there
// are none.
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		r := []rune(f)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// AvatarBadge renders the terminal stand-in for a user's avatar image.
func AvatarBadge(userID int, name string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(AvatarColor(userID)).
		Bold(true).
		Width(4).
		Align(lipgloss.Center).
		Render(Initials(name))
}

// ClampLinesToWidth cuts every line of text to at most width cells.
func ClampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
