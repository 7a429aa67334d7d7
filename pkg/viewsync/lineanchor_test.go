package viewsync

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveLineHeight(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "finite value kept", in: 18, want: 18},
		{name: "NaN falls back", in: math.NaN(), want: DefaultFallbackLineHeight},
		{name: "infinity falls back", in: math.Inf(1), want: DefaultFallbackLineHeight},
		{name: "zero falls back", in: 0, want: DefaultFallbackLineHeight},
		{name: "negative falls back", in: -3, want: DefaultFallbackLineHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveLineHeight(tt.in))
		})
	}
}

func TestLineHeightOr(t *testing.T) {
	assert.Equal(t, 18.0, LineHeightOr(18, 30))
	assert.Equal(t, 30.0, LineHeightOr(math.NaN(), 30))
	assert.Equal(t, 30.0, LineHeightOr(0, 30))
	assert.Equal(t, DefaultFallbackLineHeight, LineHeightOr(-1, 0))
	assert.Equal(t, DefaultFallbackLineHeight, LineHeightOr(math.Inf(-1), math.NaN()))
}

func TestTextTopLine(t *testing.T) {
	tests := []struct {
		name       string
		scrollTop  float64
		lineHeight float64
		want       int
	}{
		{name: "top of document", scrollTop: 0, lineHeight: 24, want: 1},
		{name: "exact line boundary", scrollTop: 48, lineHeight: 24, want: 3},
		{name: "partial line rounds down", scrollTop: 71, lineHeight: 24, want: 3},
		{name: "terminal rows", scrollTop: 9, lineHeight: 1, want: 10},
		{name: "broken line height uses fallback", scrollTop: 48, lineHeight: math.NaN(), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newFakeText(100, tt.lineHeight, 240)
			if math.IsNaN(tt.lineHeight) {
				v.scrollHeight = 100 * DefaultFallbackLineHeight
			}
			v.SetScrollTop(tt.scrollTop)
			assert.Equal(t, tt.want, TextTopLine(v))
		})
	}
}

func TestTextTopLineNilSurface(t *testing.T) {
	assert.Equal(t, 1, TextTopLine(nil))
	assert.Equal(t, 1, RenderedTopLine(nil))
	RestoreTextLine(nil, 4)
	RestoreRenderedLine(nil, 4)
}

func TestRestoreTextLine(t *testing.T) {
	v := newFakeText(100, 24, 240)

	RestoreTextLine(v, 11)
	assert.Equal(t, 240.0, v.ScrollTop())

	RestoreTextLine(v, 0)
	assert.Equal(t, 0.0, v.ScrollTop(), "line before the first clamps to 0")

	RestoreTextLine(v, 1000)
	assert.Equal(t, v.scrollHeight-v.clientHeight, v.ScrollTop(), "surface clamps past the end")
}

func TestRenderedTopLine(t *testing.T) {
	r := &fakeRendered{maxScroll: 1000, blocks: []Block{
		{Line: 1, Top: 0},
		{Line: 4, Top: 30},
		{Line: 9, Top: 75},
	}}

	tests := []struct {
		name      string
		scrollTop float64
		want      int
	}{
		{name: "at top", scrollTop: 0, want: 1},
		{name: "inside first block", scrollTop: 29, want: 4},
		{name: "tolerance of one unit", scrollTop: 74, want: 9},
		{name: "just before tolerance", scrollTop: 73, want: 4},
		{name: "past last block", scrollTop: 500, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.SetScrollTop(tt.scrollTop)
			assert.Equal(t, tt.want, RenderedTopLine(r))
		})
	}
}

func TestRenderedTopLineWithoutBlocks(t *testing.T) {
	r := &fakeRendered{maxScroll: 100, scrollTop: 50}
	assert.Equal(t, 1, RenderedTopLine(r))

	RestoreRenderedLine(r, 10)
	assert.Equal(t, 50.0, r.ScrollTop(), "no blocks leaves the offset alone")
}

func TestRestoreRenderedLine(t *testing.T) {
	r := &fakeRendered{maxScroll: 1000, blocks: []Block{
		{Line: 1, Top: 0},
		{Line: 4, Top: 30},
		{Line: 9, Top: 75},
	}}

	RestoreRenderedLine(r, 4)
	assert.Equal(t, 30.0, r.ScrollTop())

	RestoreRenderedLine(r, 5)
	assert.Equal(t, 75.0, r.ScrollTop(), "first block at or after the line")

	RestoreRenderedLine(r, 40)
	assert.Equal(t, 75.0, r.ScrollTop(), "falls back to the last block")
}

func TestAnchorLinesInteroperate(t *testing.T) {
	const lh = 24.0
	for line := 1; line <= 180; line++ {
		text := newFakeText(200, lh, 480)
		preview := twoLineBlocks(100, 20)

		RestoreTextLine(text, line)
		anchor := TextTopLine(text)
		assert.Equal(t, line, anchor)

		RestoreRenderedLine(preview, anchor)
		got := RenderedTopLine(preview)
		assert.InDelta(t, anchor, got, 1, "text line %d landed on preview line %d", anchor, got)

		back := newFakeText(200, lh, 480)
		RestoreTextLine(back, got)
		assert.InDelta(t, anchor, TextTopLine(back), 1)
	}
}
