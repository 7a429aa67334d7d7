package viewsync

import "math"

// Defaults for the bottom anchoring heuristics, in multiples of line height.
const (
	DefaultNearBottomLines    = 1.5
	DefaultBottomPaddingLines = 0.8
)

// EditPlan is what BottomAnchor decided for one edit.
type EditPlan int

const (
	PlanNone EditPlan = iota
	PlanPreserve
	PlanSnap
)

func (p EditPlan) String() string {
	switch p {
	case PlanPreserve:
		return "preserve"
	case PlanSnap:
		return "snap"
	default:
		return "none"
	}
}

// BottomGap is the distance between the viewport bottom edge and the end of
// the scrollable content.
func BottomGap(v TextViewport) float64 {
	return v.ScrollHeight() - (v.ScrollTop() + v.ClientHeight())
}

// NearBottom reports whether the viewport bottom is within lines*lineHeight
// of the content end.
func NearBottom(v TextViewport, lines float64) bool {
	lh := EffectiveLineHeight(v.LineHeight())
	return BottomGap(v) <= lh*lines
}

// SnapToBottom aligns the viewport bottom with the content bottom.
func SnapToBottom(v TextViewport) {
	v.SetScrollTop(math.Max(0, v.ScrollHeight()-v.ClientHeight()))
}

// BottomPadding is the space reserved below the last line.
func BottomPadding(lineHeight, lines float64) float64 {
	return math.Ceil(EffectiveLineHeight(lineHeight) * lines)
}

// BottomAnchor keeps the end of a long document steady while the user types
// at it. Call BeforeEdit with pre-edit metrics, apply the edit, then AfterEdit.
// When AfterEdit asks for it, Settle runs once more after the next render.
type BottomAnchor struct {
	NearBottomLines float64

	plan         EditPlan
	preserved    float64
	hasPreserved bool
	snapPending  bool
}

// NewBottomAnchor returns an anchor using the given near-bottom threshold.
func NewBottomAnchor(nearBottomLines float64) *BottomAnchor {
	if nearBottomLines <= 0 {
		nearBottomLines = DefaultNearBottomLines
	}
	return &BottomAnchor{NearBottomLines: nearBottomLines}
}

// BeforeEdit classifies the coming edit. Only a snap plan keeps an earlier
// pending snap alive.
func (b *BottomAnchor) BeforeEdit(v TextViewport, sel Selection, contentLen int, lineBreak bool) EditPlan {
	atEnd := sel.AtEnd(contentLen)
	near := NearBottom(v, b.NearBottomLines)

	switch {
	case atEnd && near && !lineBreak:
		b.plan = PlanPreserve
		b.preserved = v.ScrollTop()
		b.hasPreserved = true
		b.snapPending = false
	case atEnd && near && lineBreak:
		b.plan = PlanSnap
		b.hasPreserved = false
	default:
		b.plan = PlanNone
		b.hasPreserved = false
		b.snapPending = false
	}
	return b.plan
}

// AfterEdit applies the plan to the post-edit metrics. It returns true when a
// post-render pass (Settle) is needed.
func (b *BottomAnchor) AfterEdit(v TextViewport) bool {
	switch b.plan {
	case PlanPreserve:
		if b.hasPreserved {
			v.SetScrollTop(b.preserved)
		}
		return false
	case PlanSnap:
		SnapToBottom(v)
		b.snapPending = true
		return true
	}
	return false
}

// Settle re-applies a pending snap once layout has settled.
func (b *BottomAnchor) Settle(v TextViewport) {
	if !b.snapPending {
		return
	}
	b.snapPending = false
	SnapToBottom(v)
}

// Preserved returns the remembered offset, if any.
func (b *BottomAnchor) Preserved() (float64, bool) {
	return b.preserved, b.hasPreserved
}

// Reset drops all remembered state.
func (b *BottomAnchor) Reset() {
	b.plan = PlanNone
	b.hasPreserved = false
	b.snapPending = false
}
