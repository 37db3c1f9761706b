package domain

import (
	"errors"
	"testing"
)

func TestAvatarURL(t *testing.T) {
	if got := AvatarURL("", 3); got != "https://picsum.photos/seed/user-3/50" {
		t.Fatalf("default host: got %q", got)
	}
	if got := AvatarURL("img.local", 12); got != "https://img.local/seed/user-12/50" {
		t.Fatalf("custom host: got %q", got)
	}
}

func TestResolveAuthor(t *testing.T) {
	users := []User{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin Howell"}}
	if got := ResolveAuthor(users, 2); got != "Ervin Howell" {
		t.Fatalf("got %q", got)
	}
	if got := ResolveAuthor(users, 99); got != UnknownAuthor {
		t.Fatalf("missing user: got %q", got)
	}
	if got := ResolveAuthor(nil, 1); got != UnknownAuthor {
		t.Fatalf("empty directory: got %q", got)
	}
}

func TestFetchError(t *testing.T) {
	if NewFetchError("posts", nil) != nil {
		t.Fatalf("nil cause should stay nil")
	}

	cause := errors.New("connection refused")
	err := NewFetchError("comments", cause)
	if !errors.Is(err, ErrFetch) || !errors.Is(err, cause) {
		t.Fatalf("expected ErrFetch and cause to match: %v", err)
	}
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Resource != "comments" {
		t.Fatalf("expected *FetchError for comments, got %#v", err)
	}
	if err.Error() != "fetching comments: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("fetch error must not match ErrPageOutOfRange")
	}
}
