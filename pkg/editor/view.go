package editor

import (
	"strings"
)

type cellClass int

const (
	cellPlain cellClass = iota
	cellSelected
	cellCursor
)

// View renders the rows inside the viewport.
func (m *Model) View() string {
	m.layout()
	if m.height <= 0 {
		return ""
	}

	if len(m.buf) == 0 && m.Placeholder != "" {
		lines := make([]string, m.height)
		lines[0] = m.PlaceholderStyle.Render(m.Placeholder)
		if m.focus {
			lines[0] = m.CursorStyle.Render(" ") + m.PlaceholderStyle.Render(m.Placeholder)
		}
		return strings.Join(lines, "\n")
	}

	first := int(m.scrollTop / m.effectiveLineHeight())
	caretRow := m.rowOf(m.head)
	lines := make([]string, 0, m.height)
	for i := first; i < first+m.height; i++ {
		if i >= len(m.rows) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, m.renderRow(i, i == caretRow))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r int, hasCaret bool) string {
	rw := m.rows[r]
	sel := m.Selection()

	var b, run strings.Builder
	current := cellPlain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch current {
		case cellSelected:
			b.WriteString(m.SelectionStyle.Render(run.String()))
		case cellCursor:
			b.WriteString(m.CursorStyle.Render(run.String()))
		default:
			b.WriteString(run.String())
		}
		run.Reset()
	}

	col := 0
	for i := rw.start; i < rw.end; i++ {
		class := cellPlain
		switch {
		case hasCaret && m.focus && i == m.head:
			class = cellCursor
		case i >= sel.Start && i < sel.End:
			class = cellSelected
		}
		if class != current {
			flush()
			current = class
		}

		r := m.buf[i]
		w := m.cellWidth(r, col)
		if r == '\t' {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteRune(r)
		}
		col += w
	}
	flush()

	if hasCaret && m.focus && m.head == rw.end {
		b.WriteString(m.CursorStyle.Render(" "))
	}
	return b.String()
}
