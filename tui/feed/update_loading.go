package feed

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		m.state = NewState(msg.Posts)
		m.postsLoaded = true
		m.rebuildPage()
		return m, nil

	case PostsErrorMsg:
		m.logger.Error("fetch failed", "resource", "posts", "err", msg.Err)
		m.state = NewState(nil)
		m.postsLoaded = true
		m.rebuildPage()
		return m, nil

	case UsersLoadedMsg:
		m.users = msg.Users
		m.usersLoaded = true
		m.syncViewport()
		return m, nil

	case UsersErrorMsg:
		m.logger.Error("fetch failed", "resource", "users", "err", msg.Err)
		m.users = nil
		m.usersLoaded = true
		m.syncViewport()
		return m, nil
	}

	return m, nil
}

func (m Model) handleCommentsMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		// Ignore responses for cards discarded by a page rebuild.
		if msg.PageSeq != m.pageSeq {
			return m, nil
		}
		p, ok := m.panels[msg.PostID]
		if !ok {
			return m, nil
		}
		m.panels[msg.PostID] = p.Loaded(msg.Comments)
		m.syncViewport()
		return m, nil

	case CommentsErrorMsg:
		m.logger.Error("fetch failed", "resource", "comments", "post_id", msg.PostID, "err", msg.Err)
		if msg.PageSeq != m.pageSeq {
			return m, nil
		}
		p, ok := m.panels[msg.PostID]
		if !ok {
			return m, nil
		}
		m.panels[msg.PostID] = p.Failed()
		m.syncViewport()
		return m, nil
	}

	return m, nil
}

func (m Model) handleFilterMsg(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Ready() {
		return m, nil
	}
	switch msg := msg.(type) {
	case FilterByUserMsg:
		id := msg.UserID
		m.state.FilterByUser(&id)
		m.rebuildPage()
	case ResetFilterMsg:
		m.state.ResetFilter()
		m.rebuildPage()
	}
	return m, nil
}
