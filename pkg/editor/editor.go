// Package editor provides the raw markdown text surface: a soft-wrapping
// rune buffer with a selection, scrolled in layout units (rows times the
// line height) so the scroll sync code can treat it like any viewport.
package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hikari-md/hikari/pkg/viewsync"
)

// row is one visual row: runes [start, end) of the buffer, newline excluded.
type row struct {
	start int
	end   int
}

// Model is the text surface. It implements viewsync.TextSurface.
type Model struct {
	CursorStyle      lipgloss.Style
	SelectionStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style
	Placeholder      string

	buf    []rune
	anchor int // fixed end of the selection
	head   int // moving end, where the caret is drawn
	goal   int // preferred column for vertical moves, -1 when unset

	width        int
	height       int
	tabWidth     int
	lineHeight   float64
	fallbackLH   float64
	paddingLines float64
	scrollTop    float64
	focus        bool

	rows  []row
	stale bool
}

var _ viewsync.TextSurface = (*Model)(nil)

// New creates an empty, focused editor with one unit per row.
func New() *Model {
	return &Model{
		CursorStyle:      lipgloss.NewStyle().Reverse(true),
		SelectionStyle:   lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
		PlaceholderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		goal:             -1,
		tabWidth:         4,
		lineHeight:       1,
		fallbackLH:       viewsync.DefaultFallbackLineHeight,
		paddingLines:     viewsync.DefaultBottomPaddingLines,
		focus:            true,
		stale:            true,
	}
}

// SetSize sets the visible area in cells.
func (m *Model) SetSize(width, height int) {
	if width != m.width {
		m.stale = true
	}
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetLineHeight sets the height of one row in layout units.
func (m *Model) SetLineHeight(lh float64) {
	m.lineHeight = lh
	m.clampScroll()
}

// SetFallbackLineHeight sets the row height used while the configured one
// is NaN, infinite or not positive.
func (m *Model) SetFallbackLineHeight(lh float64) {
	m.fallbackLH = lh
	m.clampScroll()
}

// SetBottomPadding sets the reserved space below the last row, in lines.
func (m *Model) SetBottomPadding(lines float64) {
	if lines < 0 {
		lines = 0
	}
	m.paddingLines = lines
	m.clampScroll()
}

// SetTabWidth sets the tab stop width in cells.
func (m *Model) SetTabWidth(n int) {
	if n <= 0 {
		n = 4
	}
	m.tabWidth = n
	m.stale = true
}

// SetValue replaces the buffer, puts the caret at 0 and scrolls to the top.
func (m *Model) SetValue(s string) {
	m.buf = []rune(normalizeNewlines(s))
	m.anchor, m.head, m.goal = 0, 0, -1
	m.scrollTop = 0
	m.stale = true
}

// Value returns the buffer contents.
func (m *Model) Value() string {
	return string(m.buf)
}

// Len returns the buffer length in runes.
func (m *Model) Len() int {
	return len(m.buf)
}

// Focus gives the editor keyboard focus.
func (m *Model) Focus() { m.focus = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focus = false }

// Focused reports whether the editor has focus.
func (m *Model) Focused() bool { return m.focus }

// Selection returns the selection in document order.
func (m *Model) Selection() viewsync.Selection {
	return viewsync.Selection{Start: min(m.anchor, m.head), End: max(m.anchor, m.head)}
}

// SetSelection selects [Start, End], clamped to the buffer.
func (m *Model) SetSelection(sel viewsync.Selection) {
	sel = sel.Clamp(len(m.buf))
	m.anchor = min(sel.Start, sel.End)
	m.head = max(sel.Start, sel.End)
	m.goal = -1
}

// Caret returns the caret offset.
func (m *Model) Caret() int {
	return m.head
}

// SelectedText returns the selected runes, or "" for a bare caret.
func (m *Model) SelectedText() string {
	sel := m.Selection()
	return string(m.buf[sel.Start:sel.End])
}

// SelectAll selects the whole buffer.
func (m *Model) SelectAll() {
	m.anchor, m.head, m.goal = 0, len(m.buf), -1
}

// ScrollTop returns the scroll offset in layout units.
func (m *Model) ScrollTop() float64 {
	return m.scrollTop
}

// SetScrollTop scrolls to v, clamped to the scrollable range.
func (m *Model) SetScrollTop(v float64) {
	m.scrollTop = v
	m.clampScroll()
}

// ScrollBy scrolls by n rows.
func (m *Model) ScrollBy(n int) {
	m.SetScrollTop(m.scrollTop + float64(n)*m.effectiveLineHeight())
}

// LineHeight returns the row height in use, the fallback when the configured
// one is unusable.
func (m *Model) LineHeight() float64 {
	return m.effectiveLineHeight()
}

// ClientHeight returns the visible height in layout units.
func (m *Model) ClientHeight() float64 {
	return float64(max(m.height, 0)) * m.effectiveLineHeight()
}

// ScrollHeight returns the content height plus bottom padding, never less
// than the client height.
func (m *Model) ScrollHeight() float64 {
	m.layout()
	h := float64(len(m.rows))*m.effectiveLineHeight() + m.padding()
	return max(h, m.ClientHeight())
}

// Rows returns the number of visual rows.
func (m *Model) Rows() int {
	m.layout()
	return len(m.rows)
}

// CaretRow returns the visual row holding the caret.
func (m *Model) CaretRow() int {
	m.layout()
	return m.rowOf(m.head)
}

// InsertText replaces the selection with s and keeps the caret visible.
func (m *Model) InsertText(s string) {
	ins := []rune(normalizeNewlines(s))
	sel := m.Selection()

	buf := make([]rune, 0, len(m.buf)-(sel.End-sel.Start)+len(ins))
	buf = append(buf, m.buf[:sel.Start]...)
	buf = append(buf, ins...)
	buf = append(buf, m.buf[sel.End:]...)
	m.buf = buf

	m.anchor = sel.Start + len(ins)
	m.head = m.anchor
	m.goal = -1
	m.stale = true
	m.RevealCaret()
}

// DeleteBackward removes the selection, or the rune before the caret.
func (m *Model) DeleteBackward() {
	if sel := m.Selection(); !sel.Collapsed() {
		m.InsertText("")
		return
	}
	if m.head == 0 {
		return
	}
	m.anchor = m.head - 1
	m.InsertText("")
}

// DeleteForward removes the selection, or the rune after the caret.
func (m *Model) DeleteForward() {
	if sel := m.Selection(); !sel.Collapsed() {
		m.InsertText("")
		return
	}
	if m.head >= len(m.buf) {
		return
	}
	m.anchor = m.head + 1
	m.InsertText("")
}

// RevealCaret scrolls the minimum amount that shows the caret row, keeping
// the bottom padding clear below it.
func (m *Model) RevealCaret() {
	m.layout()
	lh := m.effectiveLineHeight()
	r := m.rowOf(m.head)
	top := float64(r) * lh
	bottom := float64(r+1)*lh + m.padding()

	switch {
	case top < m.scrollTop:
		m.scrollTop = top
	case bottom > m.scrollTop+m.ClientHeight():
		m.scrollTop = bottom - m.ClientHeight()
	}
	m.clampScroll()
}

func (m *Model) effectiveLineHeight() float64 {
	return viewsync.LineHeightOr(m.lineHeight, m.fallbackLH)
}

func (m *Model) padding() float64 {
	return viewsync.BottomPadding(m.effectiveLineHeight(), m.paddingLines)
}

func (m *Model) clampScroll() {
	limit := max(0, m.ScrollHeight()-m.ClientHeight())
	m.scrollTop = min(max(m.scrollTop, 0), limit)
}

// textWidth leaves one column for a caret sitting after a full row.
func (m *Model) textWidth() int {
	return max(1, m.width-1)
}

func (m *Model) cellWidth(r rune, col int) int {
	if r == '\t' {
		return m.tabWidth - col%m.tabWidth
	}
	return runewidth.RuneWidth(r)
}

// layout rebuilds the visual rows when the buffer or width changed. Lines
// wrap after the last space that fits, or mid-word when there is none.
func (m *Model) layout() {
	if !m.stale && m.rows != nil {
		return
	}
	m.stale = false
	m.rows = m.rows[:0]
	limit := m.textWidth()

	start := 0
	for start <= len(m.buf) {
		end := start
		for end < len(m.buf) && m.buf[end] != '\n' {
			end++
		}
		m.wrapLine(start, end, limit)
		start = end + 1
	}
}

func (m *Model) wrapLine(start, end, limit int) {
	rowStart, col, lastBreak := start, 0, -1
	for i := start; i < end; i++ {
		w := m.cellWidth(m.buf[i], col)
		for col+w > limit && i > rowStart {
			cut := i
			if lastBreak > rowStart {
				cut = lastBreak
			}
			m.rows = append(m.rows, row{start: rowStart, end: cut})
			rowStart, lastBreak = cut, -1
			col = 0
			for j := cut; j < i; j++ {
				col += m.cellWidth(m.buf[j], col)
			}
			w = m.cellWidth(m.buf[i], col)
		}
		col += w
		if m.buf[i] == ' ' || m.buf[i] == '\t' {
			lastBreak = i + 1
		}
	}
	m.rows = append(m.rows, row{start: rowStart, end: end})
}

// rowOf returns the row holding offset pos. At a soft wrap boundary the
// caret belongs to the continuation row.
func (m *Model) rowOf(pos int) int {
	i := sort.Search(len(m.rows), func(i int) bool { return m.rows[i].start > pos })
	return max(i-1, 0)
}

// colOf returns the cell column of pos within row r.
func (m *Model) colOf(r, pos int) int {
	rw := m.rows[r]
	col := 0
	for i := rw.start; i < min(pos, rw.end); i++ {
		col += m.cellWidth(m.buf[i], col)
	}
	return col
}

// posAt returns the offset in row r closest to cell column col.
func (m *Model) posAt(r, col int) int {
	rw := m.rows[r]
	c := 0
	for i := rw.start; i < rw.end; i++ {
		w := m.cellWidth(m.buf[i], c)
		if c+w > col {
			return i
		}
		c += w
	}
	if r+1 < len(m.rows) && m.rows[r+1].start == rw.end && rw.end > rw.start {
		return rw.end - 1
	}
	return rw.end
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
