package feed

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalfeed/app"
	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

// --- Messages ---

// PostsLoadedMsg is sent when the post collection has been fetched.
type PostsLoadedMsg struct {
	Posts []domain.Post
}

// PostsErrorMsg is sent when the post fetch fails.
type PostsErrorMsg struct {
	Err error
}

// UsersLoadedMsg is sent when the user directory has been read.
type UsersLoadedMsg struct {
	Users []domain.User
}

// UsersErrorMsg is sent when the user directory cannot be read.
type UsersErrorMsg struct {
	Err error
}

// CommentsLoadedMsg carries the comments of one post. PageSeq identifies the
// page build that requested them.
type CommentsLoadedMsg struct {
	PostID   int
	PageSeq  int
	Comments []domain.Comment
}

// CommentsErrorMsg is sent when a comment fetch fails.
type CommentsErrorMsg struct {
	PostID  int
	PageSeq int
	Err     error
}

// FilterByUserMsg narrows the feed to one author.
type FilterByUserMsg struct {
	UserID int
}

// ResetFilterMsg shows all posts again.
type ResetFilterMsg struct{}

// --- Model ---

type modelServices struct {
	postService app.PostService
	userService app.UserService
	logger      *slog.Logger
}

type feedState struct {
	state       State
	users       []domain.User
	postsLoaded bool
	usersLoaded bool
	cursor      int                  // index into the current page slice
	pageSeq     int                  // bumped on every page rebuild
	likes       map[int]bool         // post ID -> liked, current page only
	panels      map[int]CommentPanel // post ID -> comment panel, current page only
}

type uiState struct {
	keys         common.KeyMap
	spinner      spinner.Model
	viewport     viewport.Model
	width        int
	height       int
	avatarHost   string
	focused      bool
	showAllHints bool
}

// Model holds the state for the feed view.
type Model struct {
	modelServices
	feedState
	uiState
}

// Options configures a feed model.
type Options struct {
	AvatarHost string
	Logger     *slog.Logger
}

// New creates a feed model with injected dependencies.
func New(posts app.PostService, users app.UserService, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	host := opts.AvatarHost
	if host == "" {
		host = domain.DefaultAvatarHost
	}

	return Model{
		modelServices: modelServices{
			postService: posts,
			userService: users,
			logger:      logger,
		},
		feedState: feedState{
			state:  NewState(nil),
			likes:  make(map[int]bool),
			panels: make(map[int]CommentPanel),
		},
		uiState: uiState{
			keys:       common.DefaultKeyMap(),
			spinner:    s,
			viewport:   viewport.New(defaultWidth, defaultHeight-chromeLines-1),
			avatarHost: host,
			focused:    true,
		},
	}
}

// Init starts the posts and users fetches concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPosts(),
		m.fetchUsers(),
		m.spinner.Tick,
	)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// Ready reports whether both startup fetches have resolved.
func (m Model) Ready() bool {
	return m.postsLoaded && m.usersLoaded
}

// State returns a copy of the feed state.
func (m Model) State() State {
	return m.state
}

// Users returns the loaded user directory.
func (m Model) Users() []domain.User {
	return m.users
}

// Cursor returns the focused card's index within the current page.
func (m Model) Cursor() int {
	return m.cursor
}

// Liked reports the like flag of a post on the current page.
func (m Model) Liked(postID int) bool {
	return m.likes[postID]
}

// Panel returns the comment panel of a post on the current page.
func (m Model) Panel(postID int) CommentPanel {
	return m.panels[postID]
}

// SelectedPost returns the focused post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	page := m.state.PageSlice()
	if m.cursor < 0 || m.cursor >= len(page) {
		return domain.Post{}, false
	}
	return page[m.cursor], true
}

// SetFocused marks whether key input is routed to the feed.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsShowingHints reports whether the key dialog is open.
func (m Model) IsShowingHints() bool {
	return m.showAllHints
}
