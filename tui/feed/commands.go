package feed

import (
	"context"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchPosts() tea.Cmd {
	posts := m.postService
	logger := m.logger
	return func() tea.Msg {
		logger.Debug("fetch issued", "resource", "posts")
		list, err := posts.FetchPosts(context.Background())
		if err != nil {
			return PostsErrorMsg{Err: err}
		}
		logger.Debug("fetch completed", "resource", "posts", "count", len(list))
		return PostsLoadedMsg{Posts: list}
	}
}

func (m Model) fetchUsers() tea.Cmd {
	users := m.userService
	logger := m.logger
	return func() tea.Msg {
		logger.Debug("fetch issued", "resource", "users")
		list, err := users.FetchUsers(context.Background())
		if err != nil {
			return UsersErrorMsg{Err: err}
		}
		logger.Debug("fetch completed", "resource", "users", "count", len(list))
		return UsersLoadedMsg{Users: list}
	}
}

func (m Model) fetchComments(postID int) tea.Cmd {
	posts := m.postService
	logger := m.logger
	seq := m.pageSeq
	return func() tea.Msg {
		logger.Debug("fetch issued", "resource", "comments", "post_id", postID)
		comments, err := posts.FetchComments(context.Background(), postID)
		if err != nil {
			return CommentsErrorMsg{PostID: postID, PageSeq: seq, Err: err}
		}
		logger.Debug("fetch completed", "resource", "comments", "post_id", postID, "count", len(comments))
		return CommentsLoadedMsg{PostID: postID, PageSeq: seq, Comments: comments}
	}
}

func openURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !isSafeExternalURL(rawURL) {
			return nil
		}
		_ = browserCommand(rawURL).Start()
		return nil
	}
}

func browserCommand(rawURL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
