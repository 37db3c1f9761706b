package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

// View renders the feed as a string.
func (m Model) View() string {
	if m.showAllHints {
		return m.renderKeyDialog()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if !m.Ready() {
		b.WriteString(fmt.Sprintf("  %s Loading posts...\n", m.spinner.View()))
		return b.String()
	}

	if m.state.Len() == 0 {
		b.WriteString(common.StatusBarStyle.Render("  No posts."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderPagination(m.state.TotalPages(), m.state.Page(), m.contentWidth()))
	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) headerView() string {
	title := common.AppTitleStyle.Render("📰 TerminalFeed")
	scope := "all posts"
	if id, ok := m.state.Filter(); ok {
		scope = "posts by " + domain.ResolveAuthor(m.users, id)
	}
	filter := common.FilterStyle.Render(scope)

	caption := ""
	if m.Ready() {
		total := m.state.TotalPages()
		page := m.state.Page()
		if total == 0 {
			page = 0
		}
		caption = common.TaglineStyle.Render(fmt.Sprintf("Page %d of %d • %d posts", page, total, m.state.Len()))
	}
	return common.ClampLinesToWidth(title+" "+filter+"\n"+caption, m.contentWidth())
}

// renderPostList renders every card of the current page in order. offsets[i]
// is the first line of card i; the final entry is the total line count.
func (m Model) renderPostList() (string, []int) {
	page := m.state.PageSlice()
	if len(page) == 0 {
		return "", nil
	}

	cards := make([]string, 0, len(page))
	offsets := make([]int, 0, len(page)+1)
	line := 0
	for i, p := range page {
		card := m.renderCard(p, i == m.cursor)
		offsets = append(offsets, line)
		line += lipgloss.Height(card)
		cards = append(cards, card)
	}
	offsets = append(offsets, line)
	return strings.Join(cards, "\n"), offsets
}

func (m Model) renderCard(p domain.Post, selected bool) string {
	width := m.contentWidth()
	inner := max(width-4, 10) // border + padding

	author := domain.ResolveAuthor(m.users, p.UserID)
	avatarURL := domain.AvatarURL(m.avatarHost, p.UserID)
	header := common.AvatarBadge(p.UserID, author) + " " +
		common.AuthorStyle.Render(author) + "  " +
		common.MetadataStyle.Render(common.Truncate(avatarURL, max(inner-lipgloss.Width(author)-7, 8)))

	title := common.TitleStyle.Width(inner).Render(p.Title)
	body := common.ContentStyle.Width(inner).Render(p.Body)

	parts := []string{header, title, body, m.renderControls(p.ID, selected)}
	if comments := m.renderComments(p.ID, inner); comments != "" {
		parts = append(parts, comments)
	}
	content := strings.Join(parts, "\n")

	if selected {
		return common.SelectedStyle.Width(width - 2).Render(content)
	}
	return common.UnselectedStyle.Width(width - 2).Render(content)
}

func likeLabel(liked bool) string {
	if liked {
		return "♥ Unlike"
	}
	return "♡ Like"
}

func (m Model) renderControls(postID int, selected bool) string {
	liked := m.likes[postID]
	likeStyle := common.ButtonStyle
	if liked {
		likeStyle = common.LikeActiveStyle
	}
	like := likeStyle.Render("[" + likeLabel(liked) + "]")

	panel := m.panels[postID]
	commentStyle := common.ButtonStyle
	if panel.Visible {
		commentStyle = common.ButtonActiveStyle
	}
	comments := commentStyle.Render("[💬 View Comments]")

	controls := like + " " + comments
	if selected {
		controls += common.MetadataStyle.Render("  l: like • c: comments")
	}
	return controls
}
