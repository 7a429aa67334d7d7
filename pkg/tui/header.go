package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hikari-md/hikari/pkg/viewsync"
)

const appTitle = "光 hikari"

// renderHeader draws the toolbar: title and file actions on the left, the
// view switch on the right. Save is highlighted while the overwrite pulse
// runs.
func renderHeader(width int, mode viewsync.Mode, pulse bool) string {
	action := func(label string, sc ShortcutKey) string {
		return label + " " + HeaderKeyStyle.Render(FormatShortcutForHelp(sc.Primary()))
	}

	saveStyle := HeaderActionStyle
	if pulse {
		saveStyle = SavedPulseStyle.Padding(0, 1)
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top,
		HeaderTitleStyle.Render(appTitle),
		HeaderActionStyle.Render(action("Open", Shortcuts.Open)),
		saveStyle.Render(action("Save", Shortcuts.Save)),
		HeaderActionStyle.Render(action("Save As", Shortcuts.SaveAs)),
	)

	target := "To preview"
	if mode == viewsync.ModePreview {
		target = "To edit"
	}
	right := HeaderActionStyle.Render(action(target, Shortcuts.Toggle))

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().MaxWidth(width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + right,
	)
}
