package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showAllHints {
		if key.Matches(msg, m.keys.ToggleHints) || msg.String() == "esc" || msg.String() == "q" || msg.String() == "enter" {
			m.showAllHints = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.ToggleHints) {
		m.showAllHints = true
		return m, nil
	}
	if !m.Ready() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.PageSlice())-1 {
			m.cursor++
			m.syncViewport()
		}

	case key.Matches(msg, m.keys.Like):
		m.toggleLike()

	case key.Matches(msg, m.keys.Comments):
		return m.toggleComments()

	case key.Matches(msg, m.keys.PrevPage):
		// Prev is disabled on the first page.
		if m.state.HasPrev() {
			m.goToPage(m.state.Page() - 1)
		}

	case key.Matches(msg, m.keys.NextPage):
		// Next is disabled on the last page.
		if m.state.HasNext() {
			m.goToPage(m.state.Page() + 1)
		}

	case key.Matches(msg, m.keys.FirstPage):
		m.goToPage(1)

	case key.Matches(msg, m.keys.LastPage):
		m.goToPage(m.state.TotalPages())

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfPageUp()

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfPageDown()

	case key.Matches(msg, m.keys.OpenAvatar):
		if p, ok := m.SelectedPost(); ok {
			return m, openURL(domain.AvatarURL(m.avatarHost, p.UserID))
		}

	default:
		if n, ok := digitPage(msg); ok {
			m.goToPage(n)
		}
	}

	return m, nil
}

// digitPage maps the keys 1-9 to page buttons.
func digitPage(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func (m *Model) toggleLike() {
	p, ok := m.SelectedPost()
	if !ok {
		return
	}
	m.likes[p.ID] = !m.likes[p.ID]
	m.syncViewport()
}

func (m Model) toggleComments() (Model, tea.Cmd) {
	p, ok := m.SelectedPost()
	if !ok {
		return m, nil
	}
	panel, fetch := m.panels[p.ID].Toggle()
	m.panels[p.ID] = panel
	m.syncViewport()
	if fetch {
		return m, m.fetchComments(p.ID)
	}
	return m, nil
}
