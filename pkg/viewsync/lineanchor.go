package viewsync

import "math"

// DefaultFallbackLineHeight is used when a surface reports a line height that
// is not a finite positive number.
const DefaultFallbackLineHeight = 24.0

// renderedTolerance is how far below the scroll offset a block top may sit and
// still count as scrolled past.
const renderedTolerance = 1.0

// Viewport is anything with a vertical scroll offset.
type Viewport interface {
	ScrollTop() float64
	SetScrollTop(v float64)
}

// TextViewport is the raw-text surface: uniform line height plus the usual
// scroll metrics.
type TextViewport interface {
	Viewport
	LineHeight() float64
	ScrollHeight() float64
	ClientHeight() float64
}

// Block is one rendered top-level block tagged with the source line of its
// first markdown token.
type Block struct {
	Line int
	Top  float64
}

// RenderedViewport is the preview surface. Blocks are in document order.
type RenderedViewport interface {
	Viewport
	Blocks() []Block
}

// EffectiveLineHeight returns lh, or DefaultFallbackLineHeight when lh is
// NaN, infinite or not positive.
func EffectiveLineHeight(lh float64) float64 {
	return LineHeightOr(lh, DefaultFallbackLineHeight)
}

// LineHeightOr returns lh when it is usable, else fallback, else
// DefaultFallbackLineHeight.
func LineHeightOr(lh, fallback float64) float64 {
	switch {
	case usableLineHeight(lh):
		return lh
	case usableLineHeight(fallback):
		return fallback
	}
	return DefaultFallbackLineHeight
}

func usableLineHeight(lh float64) bool {
	return !math.IsNaN(lh) && !math.IsInf(lh, 0) && lh > 0
}

// TextTopLine returns the 1-based line at the top of the text viewport.
func TextTopLine(v TextViewport) int {
	if v == nil {
		return 1
	}
	lh := EffectiveLineHeight(v.LineHeight())
	line := int(math.Floor(v.ScrollTop()/lh)) + 1
	if line < 1 {
		return 1
	}
	return line
}

// RestoreTextLine scrolls the text viewport so line sits at the top.
func RestoreTextLine(v TextViewport, line int) {
	if v == nil {
		return
	}
	lh := EffectiveLineHeight(v.LineHeight())
	v.SetScrollTop(math.Max(0, float64(line-1)*lh))
}

// RenderedTopLine returns the source line of the last block whose top has
// been scrolled to (or past), or 1 if there is none.
func RenderedTopLine(v RenderedViewport) int {
	if v == nil {
		return 1
	}
	top := v.ScrollTop()
	best := 1
	for _, b := range v.Blocks() {
		if b.Top > top+renderedTolerance {
			break
		}
		best = b.Line
	}
	if best < 1 {
		return 1
	}
	return best
}

// RestoreRenderedLine scrolls to the first block at or after line, falling
// back to the last block.
func RestoreRenderedLine(v RenderedViewport, line int) {
	if v == nil {
		return
	}
	blocks := v.Blocks()
	if len(blocks) == 0 {
		return
	}
	target := blocks[len(blocks)-1]
	for _, b := range blocks {
		if b.Line >= line {
			target = b
			break
		}
	}
	v.SetScrollTop(math.Max(0, target.Top))
}
