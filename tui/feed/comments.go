package feed

import "github.com/CrestNiraj12/terminalfeed/domain"

// PanelState is the load state of one post's comment panel.
type PanelState int

const (
	PanelNotLoaded PanelState = iota
	PanelLoading
	PanelLoaded
	PanelFailed
)

func (s PanelState) String() string {
	switch s {
	case PanelLoading:
		return "loading"
	case PanelLoaded:
		return "loaded"
	case PanelFailed:
		return "failed"
	default:
		return "not-loaded"
	}
}

// CommentPanel is the comment thread under a single post card.
//
//	NotLoaded --toggle--> Loading (fetch)
//	Loading   --toggle--> Loading (no-op)
//	Loading   --loaded--> Loaded, visible
//	Loading   --failed--> Failed, hidden
//	Failed    --toggle--> Loading (fetch again)
//	Loaded    --toggle--> visibility flips, no fetch
type CommentPanel struct {
	State    PanelState
	Comments []domain.Comment
	Visible  bool
}

// Toggle advances the panel on a "view comments" press and reports whether
// a fetch must be issued.
func (p CommentPanel) Toggle() (CommentPanel, bool) {
	switch p.State {
	case PanelNotLoaded, PanelFailed:
		p.State = PanelLoading
		p.Visible = false
		return p, true
	case PanelLoading:
		return p, false
	default:
		p.Visible = !p.Visible
		return p, false
	}
}

// Loaded records a successful fetch and shows the panel.
func (p CommentPanel) Loaded(comments []domain.Comment) CommentPanel {
	if p.State != PanelLoading {
		return p
	}
	p.State = PanelLoaded
	p.Comments = comments
	p.Visible = true
	return p
}

// Failed records a failed fetch. The panel stays hidden and empty.
func (p CommentPanel) Failed() CommentPanel {
	if p.State != PanelLoading {
		return p
	}
	p.State = PanelFailed
	p.Comments = nil
	p.Visible = false
	return p
}
