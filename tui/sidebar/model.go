// Package sidebar renders the author list used to filter the feed.
package sidebar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

// ShowAllLabel is the first row of the sidebar.
const ShowAllLabel = "Show All Posts"

// SelectUserMsg asks for the feed to be filtered to one author.
type SelectUserMsg struct {
	UserID int
}

// ShowAllMsg asks for the author filter to be cleared.
type ShowAllMsg struct{}

// Model is the author sidebar. Row 0 is "Show All Posts"; the remaining rows
// are the users matching the current search, if any.
type Model struct {
	keys      common.KeyMap
	users     []domain.User
	matches   []domain.User
	cursor    int
	activeID  int
	hasActive bool
	search    textinput.Model
	searching bool
	width     int
	height    int
	focused   bool
}

// New creates an empty sidebar.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "search authors"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return Model{
		keys:   common.DefaultKeyMap(),
		search: ti,
	}
}

// SetUsers replaces the author list.
func (m *Model) SetUsers(users []domain.User) {
	m.users = append([]domain.User(nil), users...)
	m.refilter()
}

// SetActive marks the author whose posts are shown; nil marks "Show All Posts".
func (m *Model) SetActive(userID *int) {
	if userID == nil {
		m.activeID, m.hasActive = 0, false
		return
	}
	m.activeID, m.hasActive = *userID, true
}

// Active returns the marked author, if any.
func (m Model) Active() (int, bool) {
	return m.activeID, m.hasActive
}

// SetFocused marks whether key input is routed to the sidebar.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if !focused && m.searching {
		m.stopSearch(false)
	}
}

// Focused reports whether the sidebar has focus.
func (m Model) Focused() bool { return m.focused }

// Searching reports whether the search input is capturing keys.
func (m Model) Searching() bool { return m.searching }

// SetSize sets the outer dimensions of the sidebar.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(width-8, 4)
}

// Cursor returns the highlighted row; 0 is "Show All Posts".
func (m Model) Cursor() int { return m.cursor }

// Matches returns the users currently listed below "Show All Posts".
func (m Model) Matches() []domain.User {
	return append([]domain.User(nil), m.matches...)
}

// Update handles key input while the sidebar is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.matches) {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.LastPage):
		m.cursor = len(m.matches)
	case key.Matches(keyMsg, m.keys.Select):
		return m, m.selectRow()
	case key.Matches(keyMsg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, m.keys.Cancel):
		if m.search.Value() != "" {
			m.search.Reset()
			m.refilter()
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopSearch(true)
		return m, nil
	case tea.KeyEnter:
		m.stopSearch(false)
		if len(m.matches) > 0 {
			m.cursor = 1
		}
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		m.searching = false
		m.search.Blur()
		return m.Update(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *Model) stopSearch(clear bool) {
	m.searching = false
	m.search.Blur()
	if clear {
		m.search.Reset()
		m.refilter()
	}
}

func (m Model) selectRow() tea.Cmd {
	if m.cursor == 0 {
		return func() tea.Msg { return ShowAllMsg{} }
	}
	if m.cursor > len(m.matches) {
		return nil
	}
	id := m.matches[m.cursor-1].ID
	return func() tea.Msg { return SelectUserMsg{UserID: id} }
}

// refilter recomputes the listed users from the search query. An empty query
// lists every user in directory order; otherwise users are ranked by fuzzy
// match score on their name.
func (m *Model) refilter() {
	query := m.search.Value()
	if query == "" {
		m.matches = append([]domain.User(nil), m.users...)
	} else {
		found := fuzzy.FindFrom(query, userSource(m.users))
		m.matches = make([]domain.User, 0, len(found))
		for _, f := range found {
			m.matches = append(m.matches, m.users[f.Index])
		}
	}
	m.cursor = min(m.cursor, len(m.matches))
}

type userSource []domain.User

func (s userSource) String(i int) string { return s[i].Name }
func (s userSource) Len() int            { return len(s) }
