package domain

import "fmt"

// Post is a single entry of the feed. Values are never mutated after fetch.
type Post struct {
	ID     int
	UserID int
	Title  string
	Body   string
}

// User is a post author, looked up by ID.
type User struct {
	ID   int
	Name string
}

// Comment belongs to exactly one post.
type Comment struct {
	PostID int
	Name   string
	Email  string
	Body   string
}

// UnknownAuthor is shown when a post's author is missing from the user list.
const UnknownAuthor = "Unknown User"

// DefaultAvatarHost serves deterministic images keyed by seed.
const DefaultAvatarHost = "picsum.photos"

// AvatarURL derives the avatar image URL for a user ID.
// Nothing validates that the image exists.
func AvatarURL(host string, userID int) string {
	if host == "" {
		host = DefaultAvatarHost
	}
	return fmt.Sprintf("https://%s/seed/user-%d/50", host, userID)
}

// ResolveAuthor returns the name of the user with the given ID,
// or UnknownAuthor when there is none.
func ResolveAuthor(users []User, userID int) string {
	for _, u := range users {
		if u.ID == userID {
			return u.Name
		}
	}
	return UnknownAuthor
}
