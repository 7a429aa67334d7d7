package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for primary actions
	ColorBar      = "62"  // Status bar background
	ColorBarText  = "230" // Status bar text
)

var (
	// Pane borders
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	// Toolbar
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true).
				PaddingRight(2)

	HeaderActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Padding(0, 1)

	HeaderKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBar)).
			Foreground(lipgloss.Color(ColorBarText))

	ModeBadgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)

	ModifiedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBar)).
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	SavedPulseStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSuccess)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSuccess)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1)

	// Help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true)

	// Dialogs
	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWarning))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	// Editor
	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	SelectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBar)).
			Foreground(lipgloss.Color(ColorBarText))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)
)

// GetPaneBorderStyle returns the border for the visible pane.
func GetPaneBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}
