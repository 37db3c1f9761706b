package feed

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

func (m Model) helpView() string {
	var items []string
	if m.state.Len() > 0 {
		items = []string{
			"j/k: focus",
			"l: like",
			"c: comments",
			"←/→: page",
			"tab: authors",
			"q: quit",
			"?: all keys",
		}
	} else {
		items = []string{
			"tab: authors",
			"a: all posts",
			"q: quit",
			"?: all keys",
		}
	}

	width := max(m.contentWidth()-2, 16)
	return common.StatusBarStyle.Render(common.Truncate("  "+strings.Join(items, " • "), width))
}

func (m Model) renderKeyDialog() string {
	core := []string{
		"l               like/unlike focused post",
		"c / space       show/hide comments",
		"o               open author avatar in browser",
		"left/h/[        previous page",
		"right/n/]       next page",
		"1-9             jump to page",
		"g / G           first/last page",
		"pgup / pgdn     scroll the page",
		"tab             switch between authors and feed",
		"enter           filter by selected author",
		"/               search authors",
		"a               show all posts",
		"q               quit",
	}
	lines := buildKeyDialogLines(core)

	body := "Keyboard Shortcuts\n\n" + strings.Join(lines, "\n") + "\n\nPress ?, esc, q, or enter to close."
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF8700")).
		Padding(1, 2).
		Margin(1, 2).
		Render(body)
}

func buildKeyDialogLines(core []string) []string {
	out := make([]string, 0, len(core)+3)
	out = append(out, "j/k or up/down  move focus")
	out = append(out, core...)
	out = append(out, "ctrl+c          force quit", "?               toggle this dialog")
	return out
}
