package app

import (
	"context"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// PostService loads posts and their comments from a remote source.
type PostService interface {
	// FetchPosts returns the full post collection in source order.
	FetchPosts(ctx context.Context) ([]domain.Post, error)

	// FetchComments returns the comments scoped to a single post.
	FetchComments(ctx context.Context, postID int) ([]domain.Comment, error)
}
