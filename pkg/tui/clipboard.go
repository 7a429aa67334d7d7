package tui

import (
	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard as the app uses it.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
