package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

type stubPosts struct {
	posts    []domain.Post
	comments map[int][]domain.Comment
	err      error

	mu    sync.Mutex
	calls map[int]int
}

func (s *stubPosts) FetchPosts(context.Context) ([]domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.posts, nil
}

func (s *stubPosts) FetchComments(_ context.Context, postID int) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[int]int)
	}
	s.calls[postID]++
	if s.err != nil {
		return nil, s.err
	}
	return s.comments[postID], nil
}

func (s *stubPosts) commentCalls(postID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[postID]
}

type stubUsers struct {
	users []domain.User
	err   error
}

func (s stubUsers) FetchUsers(context.Context) ([]domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

var errBoom = errors.New("boom")

// makePosts builds n posts with IDs 1..n, authored round-robin by authors.
func makePosts(n int, authors ...int) []domain.Post {
	if len(authors) == 0 {
		authors = []int{1}
	}
	out := make([]domain.Post, 0, n)
	for i := range n {
		id := i + 1
		out = append(out, domain.Post{
			ID:     id,
			UserID: authors[i%len(authors)],
			Title:  fmt.Sprintf("title %d", id),
			Body:   fmt.Sprintf("body %d", id),
		})
	}
	return out
}

func testUsers() []domain.User {
	return []domain.User{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin Howell"}}
}

// readyModel returns a model whose startup fetches have both resolved.
func readyModel(svc *stubPosts, users []domain.User) Model {
	m := New(svc, stubUsers{users: users}, Options{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = m.Update(PostsLoadedMsg{Posts: svc.posts})
	m, _ = m.Update(UsersLoadedMsg{Users: users})
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
