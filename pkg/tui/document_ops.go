package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hikari-md/hikari/pkg/files"
)

// fileLoadedMsg is the result of reading a document.
type fileLoadedMsg struct {
	path    string
	content string
	err     error
}

// fileSavedMsg is the result of writing a document. content is the exact
// text that was written.
type fileSavedMsg struct {
	path    string
	content string
	request saveRequest
	err     error
}

func readFileCmd(store *files.Store, path string) tea.Cmd {
	return func() tea.Msg {
		content, err := store.ReadText(path)
		if err != nil {
			log.Printf("[files] read %s: %v", path, err)
		}
		return fileLoadedMsg{path: path, content: content, err: err}
	}
}

func writeFileCmd(store *files.Store, path, content string, req saveRequest) tea.Cmd {
	return func() tea.Msg {
		err := store.WriteText(path, content)
		if err != nil {
			log.Printf("[files] write %s: %v", path, err)
		}
		return fileSavedMsg{path: path, content: content, request: req, err: err}
	}
}

// saveStatus is the status line for a successful save.
func saveStatus(kind saveKind, path string) string {
	switch kind {
	case saveOverwrite:
		return "Overwrite save complete: " + path
	case saveAs:
		return "Save As complete: " + path
	default:
		return "Save complete: " + path
	}
}
