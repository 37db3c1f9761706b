package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6600")).
			Bold(true)
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))
)

// View renders the sidebar.
func (m Model) View() string {
	inner := max(m.width-4, 12) // border + padding

	lines := []string{common.AppTitleStyle.Render("Authors")}
	if m.searching || m.search.Value() != "" {
		lines = append(lines, m.search.View())
	}
	header := len(lines)

	rows := m.renderRows(inner)
	avail := len(rows)
	if m.height > 0 {
		avail = max(m.height-2-header, 1)
	}
	start := 0
	if m.cursor >= avail {
		start = m.cursor - avail + 1
	}
	end := min(start+avail, len(rows))
	lines = append(lines, rows[start:end]...)
	if len(m.matches) == 0 && len(m.users) > 0 {
		lines = append(lines, common.MetadataStyle.Render("  no matches"))
	}

	style := common.SidebarStyle
	if m.focused {
		style = common.SidebarFocusedStyle
	}
	style = style.Width(max(m.width-2, 14))
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(common.ClampLinesToWidth(strings.Join(lines, "\n"), inner))
}

func (m Model) renderRows(width int) []string {
	rows := make([]string, 0, len(m.matches)+1)

	label := ShowAllLabel
	if !m.hasActive {
		label = activeStyle.Render("●") + " " + label
	} else {
		label = "  " + label
	}
	rows = append(rows, m.decorate(0, label))

	for i, u := range m.matches {
		name := common.Truncate(u.Name, max(width-8, 4))
		if m.hasActive && m.activeID == u.ID {
			name = activeStyle.Render(name)
		} else {
			name = rowStyle.Render(name)
		}
		rows = append(rows, m.decorate(i+1, common.AvatarBadge(u.ID, u.Name)+" "+name))
	}
	return rows
}

func (m Model) decorate(row int, s string) string {
	if row == m.cursor && m.focused {
		return cursorStyle.Render("›") + s
	}
	return " " + s
}
