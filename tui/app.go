package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalfeed/app"
	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/infra/logging"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
	"github.com/CrestNiraj12/terminalfeed/tui/feed"
	"github.com/CrestNiraj12/terminalfeed/tui/sidebar"
)

const (
	defaultSidebar  = 30
	minSidebarWidth = 16
	minFeedWidth    = 40
	statusBarHeight = 1
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts      app.PostService
	Users      app.UserService
	Logger     *slog.Logger
	AvatarHost string
}

type focusPane int

const (
	feedPane focusPane = iota
	sidebarPane
)

// App is the root Bubble Tea model. It lays out the sidebar and the feed and
// routes messages between them.
type App struct {
	deps    Deps
	focus   focusPane
	feed    feed.Model
	sidebar sidebar.Model
	keys    common.KeyMap
	width   int
	height  int
	status  string // transient status message (e.g. "Showing all posts.")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	f := feed.New(deps.Posts, deps.Users, feed.Options{
		AvatarHost: deps.AvatarHost,
		Logger:     deps.Logger,
	})
	f.SetFocused(true)
	return App{
		deps:    deps,
		focus:   feedPane,
		feed:    f,
		sidebar: sidebar.New(),
		keys:    common.DefaultKeyMap(),
	}
}

// Init starts the feed's startup fetches.
func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles messages and routes them to the sidebar and the feed.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a.resize()

	case feed.UsersLoadedMsg, feed.UsersErrorMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		a.sidebar.SetUsers(a.feed.Users())
		return a, cmd

	case sidebar.SelectUserMsg:
		return a.applyFilter(&msg.UserID)

	case sidebar.ShowAllMsg:
		return a.applyFilter(nil)

	case tea.MouseMsg:
		if a.focus == feedPane {
			var cmd tea.Cmd
			a.feed, cmd = a.feed.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	var feedCmd, sidebarCmd tea.Cmd
	a.feed, feedCmd = a.feed.Update(msg)
	a.sidebar, sidebarCmd = a.sidebar.Update(msg)
	return a, tea.Batch(feedCmd, sidebarCmd)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}
	// Open dialogs and the search box own every other key.
	if a.feed.IsShowingHints() {
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	}
	if a.sidebar.Searching() {
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.SwitchFocus):
		a.setFocus(a.focus ^ 1)
		return a, nil
	case key.Matches(msg, a.keys.ShowAll):
		return a.applyFilter(nil)
	case key.Matches(msg, a.keys.ToggleHints):
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	case key.Matches(msg, a.keys.Search):
		a.setFocus(sidebarPane)
	}

	a.status = ""
	var cmd tea.Cmd
	if a.focus == sidebarPane {
		a.sidebar, cmd = a.sidebar.Update(msg)
	} else {
		a.feed, cmd = a.feed.Update(msg)
	}
	return a, cmd
}

// applyFilter narrows the feed to userID, or shows every post when nil.
// Requests made before the startup fetches resolve are dropped.
func (a App) applyFilter(userID *int) (tea.Model, tea.Cmd) {
	if !a.feed.Ready() {
		return a, nil
	}

	var msg tea.Msg = feed.ResetFilterMsg{}
	a.status = "Showing all posts."
	if userID != nil {
		msg = feed.FilterByUserMsg{UserID: *userID}
		a.status = "Showing posts by " + domain.ResolveAuthor(a.feed.Users(), *userID) + "."
	}

	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	a.sidebar.SetActive(userID)
	a.setFocus(feedPane)
	return a, cmd
}

// setFocus moves key input to p. A hidden sidebar never takes focus.
func (a *App) setFocus(p focusPane) {
	if p == sidebarPane && a.sidebarWidth() == 0 {
		p = feedPane
	}
	a.focus = p
	a.sidebar.SetFocused(p == sidebarPane)
	a.feed.SetFocused(p == feedPane)
}

func (a App) resize() (tea.Model, tea.Cmd) {
	bodyHeight := max(a.height-statusBarHeight, 1)
	sw := a.sidebarWidth()
	a.sidebar.SetSize(sw, bodyHeight)
	if sw == 0 && a.focus == sidebarPane {
		a.setFocus(feedPane)
	}

	feedWidth := a.width
	if sw > 0 {
		feedWidth -= sw + 1
	}
	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(tea.WindowSizeMsg{
		Width:  max(feedWidth, 1),
		Height: bodyHeight,
	})
	return a, cmd
}

// View joins the sidebar and the feed side by side.
func (a App) View() string {
	body := a.feed.View()
	if a.sidebarWidth() > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), " ", body)
	}

	// Append transient status if present.
	if a.status != "" {
		body += "\n" + common.StatusBarStyle.Render(a.status)
	}
	return body
}

// sidebarWidth shrinks the sidebar on narrow terminals and hides it (0) when
// the feed would drop below its minimum width.
func (a App) sidebarWidth() int {
	if a.width == 0 {
		return defaultSidebar
	}
	sw := min(defaultSidebar, a.width-minFeedWidth-1)
	if sw < minSidebarWidth {
		return 0
	}
	return sw
}
