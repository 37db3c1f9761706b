package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch marks any failure to load posts, users or comments.
	ErrFetch = errors.New("fetch failed")

	// ErrPageOutOfRange indicates a page number outside 1..total.
	ErrPageOutOfRange = errors.New("page out of range")
)

// FetchError wraps a transport, status or decode failure for one resource.
type FetchError struct {
	Resource string // "posts", "users" or "comments"
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetch so callers can match without a type assertion.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// NewFetchError wraps err for resource. A nil err stays nil.
func NewFetchError(resource string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Resource: resource, Err: err}
}
