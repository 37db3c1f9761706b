package feed

import "github.com/CrestNiraj12/terminalfeed/domain"

// PageSize is the number of posts shown per page.
const PageSize = 10

// State is the feed's session state: the authoritative post list, the
// working (possibly filtered) list and the current page. It is a value; every
// mutation works on the receiver and never touches Post values.
type State struct {
	original []domain.Post
	posts    []domain.Post
	page     int
	filterID int
	filtered bool
}

// NewState initializes the feed with the full post list on page 1.
func NewState(posts []domain.Post) State {
	original := append([]domain.Post(nil), posts...)
	return State{
		original: original,
		posts:    append([]domain.Post(nil), original...),
		page:     1,
	}
}

// FilterByUser narrows the working list to posts by userID, or restores the
// full list when userID is nil. The page resets to 1 either way.
func (s *State) FilterByUser(userID *int) {
	s.page = 1
	if userID == nil {
		s.posts = append([]domain.Post(nil), s.original...)
		s.filtered = false
		s.filterID = 0
		return
	}

	id := *userID
	posts := make([]domain.Post, 0, len(s.original))
	for _, p := range s.original {
		if p.UserID == id {
			posts = append(posts, p)
		}
	}
	s.posts = posts
	s.filtered = true
	s.filterID = id
}

// ResetFilter is FilterByUser(nil).
func (s *State) ResetFilter() {
	s.FilterByUser(nil)
}

// SetPage moves to page n. Pages outside 1..TotalPages are rejected and leave
// the state unchanged.
func (s *State) SetPage(n int) error {
	if n < 1 || n > s.TotalPages() {
		return domain.ErrPageOutOfRange
	}
	s.page = n
	return nil
}

// PageSlice returns the posts of the current page in working-list order. It
// holds fewer than PageSize items on the last page and none when the working
// list is empty.
func (s State) PageSlice() []domain.Post {
	start := (s.page - 1) * PageSize
	if start >= len(s.posts) {
		return nil
	}
	end := min(start+PageSize, len(s.posts))
	return s.posts[start:end:end]
}

// TotalPages is ceil(len(posts) / PageSize); zero for an empty working list.
func (s State) TotalPages() int {
	return (len(s.posts) + PageSize - 1) / PageSize
}

// Page returns the current page, always >= 1.
func (s State) Page() int {
	if s.page < 1 {
		return 1
	}
	return s.page
}

// HasPrev reports whether a previous page exists.
func (s State) HasPrev() bool { return s.Page() > 1 }

// HasNext reports whether a following page exists.
func (s State) HasNext() bool { return s.Page() < s.TotalPages() }

// Len is the size of the working list.
func (s State) Len() int { return len(s.posts) }

// Posts returns a copy of the working list.
func (s State) Posts() []domain.Post { return append([]domain.Post(nil), s.posts...) }

// Original returns a copy of the authoritative list.
func (s State) Original() []domain.Post { return append([]domain.Post(nil), s.original...) }

// Filter returns the active author filter, if any.
func (s State) Filter() (int, bool) { return s.filterID, s.filtered }
