package feed

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

// pageControl is one button of the pagination bar.
type pageControl struct {
	Label    string
	Page     int // page selected when pressed
	Disabled bool
	Active   bool
}

// paginationControls lays out Prev, one button per page 1..total, and Next.
// With no pages there are no number buttons and both arrows are disabled.
func paginationControls(total, current int) []pageControl {
	controls := make([]pageControl, 0, total+2)
	controls = append(controls, pageControl{
		Label:    "‹ Prev",
		Page:     current - 1,
		Disabled: current <= 1,
	})
	for p := 1; p <= total; p++ {
		controls = append(controls, pageControl{
			Label:  strconv.Itoa(p),
			Page:   p,
			Active: p == current,
		})
	}
	controls = append(controls, pageControl{
		Label:    "Next ›",
		Page:     current + 1,
		Disabled: current >= total,
	})
	return controls
}

func renderPagination(total, current, width int) string {
	controls := paginationControls(total, current)
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch {
		case c.Disabled:
			parts = append(parts, common.ButtonDisabledStyle.Render(c.Label))
		case c.Active:
			parts = append(parts, common.ButtonActiveStyle.Render(c.Label))
		default:
			parts = append(parts, common.ButtonStyle.Render(c.Label))
		}
	}
	bar := strings.Join(parts, " ")
	if width > 0 && lipgloss.Width(bar) > width {
		return lipgloss.NewStyle().Width(width).Render(bar)
	}
	return bar
}
