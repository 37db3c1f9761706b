package feed

import (
	"errors"
	"testing"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func TestState_PagesPartitionWorkingList(t *testing.T) {
	for n := range 61 {
		s := NewState(makePosts(n))
		wantPages := (n + PageSize - 1) / PageSize
		if s.TotalPages() != wantPages {
			t.Fatalf("n=%d: total pages got %d want %d", n, s.TotalPages(), wantPages)
		}

		var seen []domain.Post
		for p := 1; p <= s.TotalPages(); p++ {
			if err := s.SetPage(p); err != nil {
				t.Fatalf("n=%d: SetPage(%d): %v", n, p, err)
			}
			slice := s.PageSlice()
			if p < s.TotalPages() && len(slice) != PageSize {
				t.Fatalf("n=%d page %d: got %d posts want %d", n, p, len(slice), PageSize)
			}
			if len(slice) == 0 || len(slice) > PageSize {
				t.Fatalf("n=%d page %d: bad slice size %d", n, p, len(slice))
			}
			seen = append(seen, slice...)
		}
		if len(seen) != n {
			t.Fatalf("n=%d: pages cover %d posts", n, len(seen))
		}
		for i, p := range seen {
			if p.ID != i+1 {
				t.Fatalf("n=%d: order broken at %d: got id %d", n, i, p.ID)
			}
		}
	}
}

func TestState_TwentyFivePosts(t *testing.T) {
	s := NewState(makePosts(25))
	if s.TotalPages() != 3 || s.Page() != 1 {
		t.Fatalf("got page %d of %d, want 1 of 3", s.Page(), s.TotalPages())
	}
	if got := s.PageSlice(); len(got) != 10 || got[0].ID != 1 || got[9].ID != 10 {
		t.Fatalf("unexpected first page: %+v", got)
	}
	if err := s.SetPage(3); err != nil {
		t.Fatalf("SetPage(3): %v", err)
	}
	got := s.PageSlice()
	if len(got) != 5 || got[0].ID != 21 || got[4].ID != 25 {
		t.Fatalf("unexpected last page: %+v", got)
	}
	if s.HasNext() || !s.HasPrev() {
		t.Fatalf("last page should have prev and no next")
	}
}

func TestState_SetPageRejectsOutOfRange(t *testing.T) {
	s := NewState(makePosts(25))
	_ = s.SetPage(2)
	for _, n := range []int{0, -1, 4, 100} {
		if err := s.SetPage(n); !errors.Is(err, domain.ErrPageOutOfRange) {
			t.Fatalf("SetPage(%d): got %v want ErrPageOutOfRange", n, err)
		}
		if s.Page() != 2 {
			t.Fatalf("SetPage(%d) changed page to %d", n, s.Page())
		}
	}

	empty := NewState(nil)
	if err := empty.SetPage(1); !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Fatalf("empty SetPage(1): got %v", err)
	}
	if empty.Page() != 1 || empty.TotalPages() != 0 || empty.PageSlice() != nil {
		t.Fatalf("empty state: page=%d total=%d", empty.Page(), empty.TotalPages())
	}
}

func TestState_FilterAndReset(t *testing.T) {
	s := NewState(makePosts(30, 1, 2, 3))
	_ = s.SetPage(3)

	id := 2
	s.FilterByUser(&id)
	if s.Page() != 1 {
		t.Fatalf("filter should reset page, got %d", s.Page())
	}
	posts := s.Posts()
	if len(posts) != 10 {
		t.Fatalf("got %d posts for user 2 want 10", len(posts))
	}
	for i, p := range posts {
		if p.UserID != 2 {
			t.Fatalf("post %d has user %d", p.ID, p.UserID)
		}
		if i > 0 && posts[i-1].ID >= p.ID {
			t.Fatalf("filter broke original order")
		}
	}
	if got, ok := s.Filter(); !ok || got != 2 {
		t.Fatalf("Filter() = %d,%v", got, ok)
	}

	missing := 99
	s.FilterByUser(&missing)
	if s.Len() != 0 || s.TotalPages() != 0 || s.Page() != 1 {
		t.Fatalf("unknown author: len=%d total=%d page=%d", s.Len(), s.TotalPages(), s.Page())
	}

	s.ResetFilter()
	if s.Len() != 30 || s.Page() != 1 {
		t.Fatalf("reset: len=%d page=%d", s.Len(), s.Page())
	}
	if _, ok := s.Filter(); ok {
		t.Fatalf("reset should clear the filter")
	}
	if len(s.Original()) != 30 {
		t.Fatalf("original list changed")
	}
}

func TestState_DoesNotAliasInput(t *testing.T) {
	in := makePosts(3)
	s := NewState(in)
	in[0].Title = "mutated"
	if s.Posts()[0].Title == "mutated" || s.Original()[0].Title == "mutated" {
		t.Fatalf("state shares backing array with caller")
	}
}
