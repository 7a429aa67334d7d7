package viewsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearBottom(t *testing.T) {
	v := newFakeText(100, 24, 480)

	v.SetScrollTop(v.scrollHeight - v.clientHeight)
	assert.True(t, NearBottom(v, DefaultNearBottomLines))

	v.SetScrollTop(v.scrollHeight - v.clientHeight - 36)
	assert.True(t, NearBottom(v, DefaultNearBottomLines), "exactly 1.5 lines away counts")

	v.SetScrollTop(v.scrollHeight - v.clientHeight - 37)
	assert.False(t, NearBottom(v, DefaultNearBottomLines))
}

func TestBottomPadding(t *testing.T) {
	assert.Equal(t, 20.0, BottomPadding(24, DefaultBottomPaddingLines))
	assert.Equal(t, 1.0, BottomPadding(1, DefaultBottomPaddingLines))
}

func TestBottomAnchor_TypingAtEndKeepsOffset(t *testing.T) {
	const lh = 24.0
	v := newFakeText(100, lh, 480)
	v.length = 500
	v.SetScrollTop(v.scrollHeight - v.clientHeight)
	start := v.ScrollTop()

	b := NewBottomAnchor(DefaultNearBottomLines)
	for i := 0; i < 20; i++ {
		plan := b.BeforeEdit(v, Selection{Start: v.length, End: v.length}, v.length, false)
		require.Equal(t, PlanPreserve, plan)

		// The first keystroke wraps onto a new row and the natural caret
		// reveal scrolls it into view.
		v.length++
		if i == 0 {
			v.scrollHeight += lh
			v.SetScrollTop(v.scrollHeight - v.clientHeight)
		}

		assert.False(t, b.AfterEdit(v))
		assert.Equal(t, start, v.ScrollTop(), "keystroke %d moved the viewport", i)
	}
}

func TestBottomAnchor_LineBreakSnapsToBottom(t *testing.T) {
	const lh = 24.0
	v := newFakeText(100, lh, 480)
	v.length = 500
	v.SetScrollTop(v.scrollHeight - v.clientHeight - 10)

	b := NewBottomAnchor(DefaultNearBottomLines)
	plan := b.BeforeEdit(v, Selection{Start: 500, End: 500}, 500, true)
	require.Equal(t, PlanSnap, plan)
	_, kept := b.Preserved()
	assert.False(t, kept, "line break clears the preserved offset")

	v.length++
	v.scrollHeight += lh
	assert.True(t, b.AfterEdit(v), "snap needs a post-render pass")
	assert.LessOrEqual(t, BottomGap(v), lh)

	// late layout growth, e.g. font metrics settling
	v.scrollHeight += 6
	b.Settle(v)
	assert.LessOrEqual(t, BottomGap(v), lh)
	assert.Equal(t, 0.0, BottomGap(v))

	// a second settle is a no-op
	v.SetScrollTop(0)
	b.Settle(v)
	assert.Equal(t, 0.0, v.ScrollTop())
}

func TestBottomAnchor_LaterEditDropsPendingSnap(t *testing.T) {
	const lh = 24.0
	v := newFakeText(100, lh, 480)
	v.length = 500
	v.SetScrollTop(v.scrollHeight - v.clientHeight)

	b := NewBottomAnchor(DefaultNearBottomLines)
	require.Equal(t, PlanSnap, b.BeforeEdit(v, Selection{Start: 500, End: 500}, 500, true))
	v.length++
	v.scrollHeight += lh
	require.True(t, b.AfterEdit(v))

	// an edit at the top lands before the deferred settle runs
	v.SetScrollTop(0)
	require.Equal(t, PlanNone, b.BeforeEdit(v, Selection{Start: 0, End: 0}, v.length, false))
	v.length++
	assert.False(t, b.AfterEdit(v))

	b.Settle(v)
	assert.Equal(t, 0.0, v.ScrollTop())
}

func TestBottomAnchor_NaturalScrollingElsewhere(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		gapLines  float64
		lineBreak bool
	}{
		{name: "caret in middle", sel: Selection{Start: 100, End: 100}, gapLines: 0, lineBreak: true},
		{name: "selection reaching end only on one side", sel: Selection{Start: 10, End: 500}, gapLines: 0},
		{name: "far from bottom", sel: Selection{Start: 500, End: 500}, gapLines: 40, lineBreak: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newFakeText(400, 24, 480)
			v.SetScrollTop(v.scrollHeight - v.clientHeight - tt.gapLines*24)
			before := v.ScrollTop()

			b := NewBottomAnchor(DefaultNearBottomLines)
			assert.Equal(t, PlanNone, b.BeforeEdit(v, tt.sel, 500, tt.lineBreak))
			v.scrollHeight += 24
			assert.False(t, b.AfterEdit(v))
			assert.Equal(t, before, v.ScrollTop())
		})
	}
}

func TestBottomAnchor_LeavingConditionClearsPreserved(t *testing.T) {
	v := newFakeText(100, 24, 480)
	v.SetScrollTop(v.scrollHeight - v.clientHeight)

	b := NewBottomAnchor(0)
	assert.Equal(t, DefaultNearBottomLines, b.NearBottomLines)

	b.BeforeEdit(v, Selection{Start: 50, End: 50}, 50, false)
	_, ok := b.Preserved()
	require.True(t, ok)

	b.BeforeEdit(v, Selection{Start: 10, End: 10}, 50, false)
	_, ok = b.Preserved()
	assert.False(t, ok)
}
