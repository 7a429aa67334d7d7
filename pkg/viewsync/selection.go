package viewsync

// Selection is a caret/selection range in rune offsets. Start <= End.
type Selection struct {
	Start int
	End   int
}

// Collapsed reports whether the selection is a bare caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Clamp limits both bounds to [0, limit].
func (s Selection) Clamp(limit int) Selection {
	return Selection{Start: clampInt(s.Start, 0, limit), End: clampInt(s.End, 0, limit)}
}

// AtEnd reports whether both bounds sit at length.
func (s Selection) AtEnd(length int) bool {
	return s.Start == length && s.End == length
}

// SelectionMemory keeps the text surface selection alive while the surface
// is hidden.
type SelectionMemory struct {
	sel Selection
}

// Capture records sel.
func (m *SelectionMemory) Capture(sel Selection) {
	m.sel = sel
}

// Restore returns the remembered selection clamped to [0, length].
func (m *SelectionMemory) Restore(length int) Selection {
	return m.sel.Clamp(length)
}

// Reset forgets the selection (caret at 0).
func (m *SelectionMemory) Reset() {
	m.sel = Selection{}
}

// Selection returns the raw remembered value.
func (m *SelectionMemory) Selection() Selection {
	return m.sel
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
