package testhelpers

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key returns a key message of the given type, e.g. Key(tea.KeyCtrlS).
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// AltKey is Key with the Alt modifier held.
func AltKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t, Alt: true}
}

// Runes returns the message a terminal sends for typed or pasted text.
func Runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Typing splits s into one key message per character. Newlines become
// Enter presses.
func Typing(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			msgs = append(msgs, Key(tea.KeyEnter))
			continue
		}
		msgs = append(msgs, Runes(string(r)))
	}
	return msgs
}
