package feed

import (
	"testing"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func TestCommentPanel_Transitions(t *testing.T) {
	var p CommentPanel
	comments := []domain.Comment{{PostID: 1, Name: "n", Email: "e@x", Body: "b"}}

	p, fetch := p.Toggle()
	if !fetch || p.State != PanelLoading || p.Visible {
		t.Fatalf("first toggle: %+v fetch=%v", p, fetch)
	}

	p, fetch = p.Toggle()
	if fetch || p.State != PanelLoading {
		t.Fatalf("toggle while loading must not fetch: %+v", p)
	}

	p = p.Loaded(comments)
	if p.State != PanelLoaded || !p.Visible || len(p.Comments) != 1 {
		t.Fatalf("loaded: %+v", p)
	}

	p, fetch = p.Toggle()
	if fetch || p.Visible {
		t.Fatalf("hide: %+v fetch=%v", p, fetch)
	}
	p, fetch = p.Toggle()
	if fetch || !p.Visible || len(p.Comments) != 1 {
		t.Fatalf("show again: %+v fetch=%v", p, fetch)
	}

	// Late results are ignored once loaded.
	if again := p.Loaded(nil); len(again.Comments) != 1 {
		t.Fatalf("Loaded replaced comments of a loaded panel")
	}
	if again := p.Failed(); again.State != PanelLoaded {
		t.Fatalf("Failed changed a loaded panel")
	}
}

func TestCommentPanel_FailureAllowsRetry(t *testing.T) {
	p, _ := CommentPanel{}.Toggle()
	p = p.Failed()
	if p.State != PanelFailed || p.Visible {
		t.Fatalf("failed: %+v", p)
	}
	p, fetch := p.Toggle()
	if !fetch || p.State != PanelLoading {
		t.Fatalf("retry: %+v fetch=%v", p, fetch)
	}
}

func TestPanelState_String(t *testing.T) {
	cases := map[PanelState]string{
		PanelNotLoaded: "not-loaded",
		PanelLoading:   "loading",
		PanelLoaded:    "loaded",
		PanelFailed:    "failed",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Fatalf("%d: got %q want %q", s, s.String(), want)
		}
	}
}
