package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(0, 1)

	// FilterStyle styles the active author filter next to the title.
	FilterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// TaglineStyle styles secondary header text.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles the post author name.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TitleStyle styles post titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5A97F"))

	// ContentStyle styles post and comment bodies.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MetadataStyle styles dim secondary details such as avatar URLs.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// SelectedStyle highlights the focused post card.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6600")).
			Padding(0, 1)

	// UnselectedStyle gives other cards a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// ButtonStyle styles an enabled control.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5")).
			Padding(0, 1)

	// ButtonActiveStyle styles a pressed or current control.
	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1E1E2E")).
				Background(lipgloss.Color("#FF6600")).
				Bold(true).
				Padding(0, 1)

	// ButtonDisabledStyle styles a control that ignores presses.
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#45475A")).
				Padding(0, 1)

	// LikeActiveStyle styles the Unlike control of a liked post.
	LikeActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true).
			Padding(0, 1)

	// CommentEmailStyle styles the heading of a comment.
	CommentEmailStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#8AADF4"))

	// CommentNameStyle styles the subheading of a comment.
	CommentNameStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("#A5ADCB"))

	// CommentBoxStyle frames the comment panel.
	CommentBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#494D64")).
			PaddingLeft(1).
			MarginLeft(2)

	// SidebarStyle frames the author sidebar.
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// SidebarFocusedStyle frames the sidebar while it has focus.
	SidebarFocusedStyle = SidebarStyle.
				BorderForeground(lipgloss.Color("#FF6600"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))
)

// avatarPalette colors avatar badges; the user ID picks the color.
var avatarPalette = []lipgloss.Color{
	"#F5A97F", "#A6DA95", "#8AADF4", "#C6A0F6", "#EED49F",
	"#91D7E3", "#F5BDE6", "#ED8796", "#8BD5CA", "#B7BDF8",
}

// AvatarColor returns the badge color for a user ID.
func AvatarColor(userID int) lipgloss.Color {
	if userID < 0 {
		userID = -userID
	}
	return avatarPalette[userID%len(avatarPalette)]
}
