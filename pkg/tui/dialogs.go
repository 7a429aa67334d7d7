package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hikari-md/hikari/pkg/files"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogOpen
	dialogSave
)

// saveKind decides the status text and feedback of a finished save.
type saveKind int

const (
	saveFirst     saveKind = iota // ctrl+s on a document without a path
	saveOverwrite                 // write to the current path
	saveAs                        // explicit Save As
)

// saveRequest travels with a save from the key press to its result.
type saveRequest struct {
	kind    saveKind
	guarded bool // started from the unsaved changes dialog
}

// dialogClosedMsg resolves a file dialog. A canceled dialog has no path.
type dialogClosedMsg struct {
	kind     dialogKind
	path     string
	canceled bool
	save     saveRequest
}

func closeDialog(msg dialogClosedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// openDialog picks a markdown file with the bubbles file picker.
type openDialog struct {
	picker filepicker.Model
	filter files.Filter
}

func newOpenDialog(filter files.Filter) *openDialog {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.AllowedTypes = filter.AllowedTypes()
	return &openDialog{picker: fp, filter: filter}
}

// Show starts browsing dir and returns the directory read command.
func (d *openDialog) Show(dir string, height int) tea.Cmd {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}
	d.picker.CurrentDirectory = dir
	d.picker.Height = max(height, 3)
	return d.picker.Init()
}

// Update feeds the picker. Esc cancels; picking a file closes the dialog.
func (d *openDialog) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return closeDialog(dialogClosedMsg{kind: dialogOpen, canceled: true})
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	if didSelect, path := d.picker.DidSelectFile(msg); didSelect && d.filter.Matches(path) {
		return closeDialog(dialogClosedMsg{kind: dialogOpen, path: path})
	}
	return cmd
}

func (d *openDialog) View(width int) string {
	header := DialogTitleStyle.Render("Open") + "  " +
		DescriptionStyle.Render(d.picker.CurrentDirectory)
	footer := DescriptionStyle.Render("enter open • ← back • esc cancel")
	return lipgloss.NewStyle().Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", d.picker.View(), "", footer),
	)
}

// saveDialog asks for a path with a text input prefilled with the default.
type saveDialog struct {
	input     textinput.Model
	request   saveRequest
	extension string
}

func newSaveDialog(extension string) *saveDialog {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "path/to/file.md"
	ti.CharLimit = 0
	return &saveDialog{input: ti, extension: extension}
}

// Show prefills the input with defaultPath and focuses it.
func (d *saveDialog) Show(defaultPath string, req saveRequest) tea.Cmd {
	d.request = req
	d.input.SetValue(defaultPath)
	d.input.CursorEnd()
	return d.input.Focus()
}

// Update edits the path. Enter confirms, esc or an empty path cancels.
func (d *saveDialog) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			d.input.Blur()
			return closeDialog(dialogClosedMsg{kind: dialogSave, canceled: true, save: d.request})
		case "enter":
			d.input.Blur()
			path := d.resolve(d.input.Value())
			return closeDialog(dialogClosedMsg{
				kind:     dialogSave,
				path:     path,
				canceled: path == "",
				save:     d.request,
			})
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

// resolve cleans the typed path and adds the default extension when the
// name has none.
func (d *saveDialog) resolve(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if filepath.Ext(value) == "" && d.extension != "" {
		value += "." + strings.TrimPrefix(d.extension, ".")
	}
	return filepath.Clean(value)
}

func (d *saveDialog) View(width int) string {
	title := "Save"
	if d.request.kind == saveAs {
		title = "Save As"
	}
	d.input.Width = max(width-8, 10)
	return lipgloss.JoinVertical(lipgloss.Left,
		DialogTitleStyle.Render(title),
		"",
		InputStyle.Width(max(width-4, 10)).Render(d.input.View()),
		"",
		DescriptionStyle.Render("enter save • esc cancel"),
	)
}
