package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmChoice is the answer picked in the unsaved changes dialog.
type ConfirmChoice int

const (
	ChoiceNone ConfirmChoice = iota
	ChoiceSave
	ChoiceDiscard
	ChoiceCancel
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title   string   // Title shown at the top of the dialog
	Message string   // Main confirmation message
	Warning string   // Optional warning text (shown in orange)
	Details []string // Optional detail lines
	Width   int      // Dialog width
}

// ConfirmationModel renders the unsaved changes dialog and maps keys to
// choices. Whether it is open, and whether a save is running, is owned by
// the caller.
type ConfirmationModel struct {
	config ConfirmationConfig
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Configure sets what the next View shows.
func (m *ConfirmationModel) Configure(config ConfirmationConfig) {
	if config.Width == 0 {
		config.Width = 60
	}
	m.config = config
}

// Config returns the current configuration.
func (m *ConfirmationModel) Config() ConfirmationConfig {
	return m.config
}

// Update maps a key to a choice.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) ConfirmChoice {
	switch msg.String() {
	case "s", "S", "enter":
		return ChoiceSave
	case "d", "D":
		return ChoiceDiscard
	case "c", "C", "esc":
		return ChoiceCancel
	}
	return ChoiceNone
}

// View renders the dialog. While busy the options are replaced by a saving
// indicator.
func (m *ConfirmationModel) View(busy bool) string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal))

	contentWidth := m.config.Width - 6 // border and padding
	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var b strings.Builder

	if m.config.Title != "" {
		b.WriteString(center.Render(DialogTitleStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}

	if m.config.Message != "" {
		b.WriteString(center.Render(wordwrap.String(m.config.Message, contentWidth)))
		b.WriteString("\n")
	}

	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(warningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}

	if len(m.config.Details) > 0 {
		b.WriteString("\n")
		for _, detail := range m.config.Details {
			b.WriteString(detailStyle.Render("  • " + detail))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if busy {
		b.WriteString(center.Render(warningStyle.Render("Saving…")))
	} else {
		b.WriteString(center.Render(formatConfirmOptions()))
	}

	return borderStyle.Width(m.config.Width).Render(b.String())
}

// formatConfirmOptions renders the key legend for the three choices.
func formatConfirmOptions() string {
	save := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	discard := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true)
	cancel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNormal)).Bold(true)

	return strings.Join([]string{
		save.Render("[s]") + " Save",
		discard.Render("[d]") + " Discard",
		cancel.Render("[esc]") + " Cancel",
	}, "   ")
}
