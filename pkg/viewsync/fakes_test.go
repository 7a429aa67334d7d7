package viewsync

import "math"

type fakeText struct {
	scrollTop    float64
	scrollHeight float64
	clientHeight float64
	lineHeight   float64
	length       int
	sel          Selection
	focused      bool
}

func (f *fakeText) ScrollTop() float64    { return f.scrollTop }
func (f *fakeText) ScrollHeight() float64 { return f.scrollHeight }
func (f *fakeText) ClientHeight() float64 { return f.clientHeight }
func (f *fakeText) LineHeight() float64   { return f.lineHeight }
func (f *fakeText) Len() int              { return f.length }
func (f *fakeText) Selection() Selection  { return f.sel }
func (f *fakeText) SetSelection(s Selection) {
	f.sel = s
}
func (f *fakeText) Focus() { f.focused = true }
func (f *fakeText) Blur()  { f.focused = false }

func (f *fakeText) SetScrollTop(v float64) {
	limit := math.Max(0, f.scrollHeight-f.clientHeight)
	f.scrollTop = math.Min(math.Max(0, v), limit)
}

// lines sets up n lines of content, one row each.
func newFakeText(n int, lh, client float64) *fakeText {
	return &fakeText{
		scrollHeight: float64(n) * lh,
		clientHeight: client,
		lineHeight:   lh,
	}
}

type fakeRendered struct {
	scrollTop float64
	maxScroll float64
	blocks    []Block
}

func (f *fakeRendered) ScrollTop() float64 { return f.scrollTop }
func (f *fakeRendered) Blocks() []Block    { return f.blocks }
func (f *fakeRendered) SetScrollTop(v float64) {
	f.scrollTop = math.Min(math.Max(0, v), f.maxScroll)
}

// twoLineBlocks builds n blocks, each covering two source lines and
// rendered 3 rows tall.
func twoLineBlocks(n int, rowHeight float64) *fakeRendered {
	r := &fakeRendered{maxScroll: float64(n*3) * rowHeight}
	for i := 0; i < n; i++ {
		r.blocks = append(r.blocks, Block{Line: 2*i + 1, Top: float64(i*3) * rowHeight})
	}
	return r
}
