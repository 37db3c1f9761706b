package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// postService implements app.PostService against the posts and comments endpoints.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the API client.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

// apiPost is the wire shape of a post.
type apiPost struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// apiComment is the wire shape of a comment.
type apiComment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

func (s *postService) FetchPosts(ctx context.Context) ([]domain.Post, error) {
	data, err := s.client.Get(ctx, "/posts")
	if err != nil {
		return nil, domain.NewFetchError("posts", err)
	}

	var raw []apiPost
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewFetchError("posts", fmt.Errorf("parsing posts: %w", err))
	}
	return mapPosts(raw), nil
}

func (s *postService) FetchComments(ctx context.Context, postID int) ([]domain.Comment, error) {
	q := url.Values{}
	q.Set("postId", strconv.Itoa(postID))

	data, err := s.client.Get(ctx, "/comments?"+q.Encode())
	if err != nil {
		return nil, domain.NewFetchError("comments", err)
	}

	var raw []apiComment
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewFetchError("comments", fmt.Errorf("parsing comments: %w", err))
	}
	return mapComments(postID, raw), nil
}

func mapPosts(raw []apiPost) []domain.Post {
	posts := make([]domain.Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, domain.Post{
			ID:     p.ID,
			UserID: p.UserID,
			Title:  sanitizeText(p.Title),
			Body:   sanitizeText(p.Body),
		})
	}
	return posts
}

// mapComments keeps only comments scoped to postID; the server filters, but a
// misbehaving one must not leak comments onto the wrong card.
func mapComments(postID int, raw []apiComment) []domain.Comment {
	comments := make([]domain.Comment, 0, len(raw))
	for _, c := range raw {
		if c.PostID != postID {
			continue
		}
		comments = append(comments, domain.Comment{
			PostID: c.PostID,
			Name:   sanitizeText(c.Name),
			Email:  sanitizeText(c.Email),
			Body:   sanitizeText(c.Body),
		})
	}
	return comments
}
