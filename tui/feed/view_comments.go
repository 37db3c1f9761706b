package feed

import (
	"strings"

	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

// renderComments renders the comment panel of a card, or "" when the panel
// is hidden.
func (m Model) renderComments(postID, width int) string {
	panel := m.panels[postID]
	inner := max(width-4, 8)

	switch {
	case panel.State == PanelLoading:
		return common.CommentBoxStyle.Render(common.MetadataStyle.Render("Loading comments..."))
	case panel.State != PanelLoaded || !panel.Visible:
		return ""
	case len(panel.Comments) == 0:
		return common.CommentBoxStyle.Render(common.MetadataStyle.Render("No comments."))
	}

	blocks := make([]string, 0, len(panel.Comments))
	for _, c := range panel.Comments {
		blocks = append(blocks, strings.Join([]string{
			common.CommentEmailStyle.Render(common.Truncate(c.Email, inner)),
			common.CommentNameStyle.Width(inner).Render(c.Name),
			common.ContentStyle.Width(inner).Render(c.Body),
		}, "\n"))
	}
	return common.CommentBoxStyle.Render(strings.Join(blocks, "\n\n"))
}
