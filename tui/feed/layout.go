package feed

import "github.com/charmbracelet/lipgloss"

const (
	defaultWidth  = 100
	defaultHeight = 36
	// title, caption, the blank line above pagination and hints
	chromeLines = 4
	minViewport = 3
)

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) contentHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

// paginationHeight is the number of lines the pagination bar wraps to.
func (m Model) paginationHeight() int {
	bar := renderPagination(m.state.TotalPages(), m.state.Page(), m.contentWidth())
	return lipgloss.Height(bar)
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = max(m.contentHeight()-chromeLines-m.paginationHeight(), minViewport)
}

// syncViewport re-renders the card list into the viewport and scrolls so the
// focused card is visible.
func (m *Model) syncViewport() {
	m.resizeViewport()
	content, offsets := m.renderPostList()
	m.viewport.SetContent(content)
	if len(offsets) < 2 || m.cursor < 0 || m.cursor >= len(offsets)-1 {
		return
	}

	top := offsets[m.cursor]
	bottom := offsets[m.cursor+1] - 1
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(max(top, bottom-m.viewport.Height+1))
	}
}
