package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		if m.Ready() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case PostsLoadedMsg, PostsErrorMsg, UsersLoadedMsg, UsersErrorMsg:
		return m.handleLoadingMsg(msg)
	case CommentsLoadedMsg, CommentsErrorMsg:
		return m.handleCommentsMsg(msg)
	case FilterByUserMsg, ResetFilterMsg:
		return m.handleFilterMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// rebuildPage discards every card of the current page and builds the page
// again from the feed state. Likes and comment panels do not survive.
func (m *Model) rebuildPage() {
	m.pageSeq++
	m.likes = make(map[int]bool)
	m.panels = make(map[int]CommentPanel)
	m.cursor = 0
	m.viewport.GotoTop()
	m.syncViewport()
}

func (m *Model) goToPage(n int) bool {
	if err := m.state.SetPage(n); err != nil {
		return false
	}
	m.rebuildPage()
	return true
}
