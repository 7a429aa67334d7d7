package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// EditKind reports whether msg changes the buffer and whether the change
// inserts a line break (Enter, or a paste containing one).
func EditKind(msg tea.KeyMsg) (edit, lineBreak bool) {
	if msg.Alt {
		return false, false
	}
	switch msg.String() {
	case "enter":
		return true, true
	case "backspace", "delete", "tab", " ", "space":
		return true, false
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return true, strings.ContainsAny(string(msg.Runes), "\r\n")
	}
	return false, false
}

// Update handles editing and caret movement keys. It does nothing while the
// editor is blurred.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focus || key.Alt {
		return nil
	}

	switch key.String() {
	case "left":
		m.moveHorizontal(-1, false)
	case "right":
		m.moveHorizontal(1, false)
	case "shift+left":
		m.moveHorizontal(-1, true)
	case "shift+right":
		m.moveHorizontal(1, true)
	case "up":
		m.moveVertical(-1, false)
	case "down":
		m.moveVertical(1, false)
	case "shift+up":
		m.moveVertical(-1, true)
	case "shift+down":
		m.moveVertical(1, true)
	case "pgup":
		m.moveVertical(-max(m.height, 1), false)
	case "pgdown":
		m.moveVertical(max(m.height, 1), false)
	case "home":
		m.moveRowEdge(false, false)
	case "end":
		m.moveRowEdge(true, false)
	case "shift+home":
		m.moveRowEdge(false, true)
	case "shift+end":
		m.moveRowEdge(true, true)
	case "ctrl+home":
		m.moveTo(0, false)
	case "ctrl+end":
		m.moveTo(len(m.buf), false)
	case "ctrl+a":
		m.SelectAll()
	case "enter":
		m.InsertText("\n")
	case "tab":
		m.InsertText("\t")
	case " ", "space":
		m.InsertText(" ")
	case "backspace":
		m.DeleteBackward()
	case "delete":
		m.DeleteForward()
	default:
		if key.Type == tea.KeyRunes {
			m.InsertText(string(key.Runes))
		}
	}
	return nil
}

func (m *Model) moveTo(pos int, extend bool) {
	m.head = min(max(pos, 0), len(m.buf))
	if !extend {
		m.anchor = m.head
	}
	m.goal = -1
	m.RevealCaret()
}

func (m *Model) moveHorizontal(dir int, extend bool) {
	if sel := m.Selection(); !extend && !sel.Collapsed() {
		if dir < 0 {
			m.moveTo(sel.Start, false)
		} else {
			m.moveTo(sel.End, false)
		}
		return
	}
	m.moveTo(m.head+dir, extend)
}

func (m *Model) moveVertical(delta int, extend bool) {
	m.layout()
	r := m.rowOf(m.head)
	if m.goal < 0 {
		m.goal = m.colOf(r, m.head)
	}
	goal := m.goal

	target := r + delta
	switch {
	case target < 0:
		m.moveTo(0, extend)
	case target >= len(m.rows):
		m.moveTo(len(m.buf), extend)
	default:
		m.moveTo(m.posAt(target, goal), extend)
	}
	m.goal = goal
}

func (m *Model) moveRowEdge(end, extend bool) {
	m.layout()
	r := m.rowOf(m.head)
	if !end {
		m.moveTo(m.rows[r].start, extend)
		return
	}
	m.moveTo(m.posAt(r, int(^uint(0)>>1)), extend)
}
