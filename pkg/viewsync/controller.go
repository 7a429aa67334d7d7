package viewsync

// Mode is the active view.
type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
)

func (m Mode) String() string {
	if m == ModePreview {
		return "Preview"
	}
	return "Edit"
}

// TextSurface is the editable pane as the controller sees it.
type TextSurface interface {
	TextViewport
	Len() int
	Selection() Selection
	SetSelection(sel Selection)
	Focus()
	Blur()
}

// Controller switches between the edit and preview panes while keeping the
// reading position (as an anchor line) and the editor selection. All state
// that survives a switch lives here:
//
//   - mode: the active pane
//   - pendingAnchor: line to restore after the next render (0 = none)
//   - refocus: give focus and selection back to the editor on return
//   - memory: the editor selection while the editor is hidden
//
// Toggle commits the switch; Settle is the measure-and-correct half and must
// run after the new pane has been laid out.
type Controller struct {
	text     TextSurface
	rendered RenderedViewport

	mode          Mode
	pendingAnchor int
	refocus       bool
	memory        SelectionMemory
}

// NewController starts in edit mode.
func NewController(text TextSurface, rendered RenderedViewport) *Controller {
	return &Controller{text: text, rendered: rendered, mode: ModeEdit}
}

// Mode returns the active view.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Memory exposes the selection memory.
func (c *Controller) Memory() *SelectionMemory {
	return &c.memory
}

// PendingAnchor returns the line waiting to be restored.
func (c *Controller) PendingAnchor() (int, bool) {
	return c.pendingAnchor, c.pendingAnchor > 0
}

// Refocusing reports whether the editor will be refocused on return.
func (c *Controller) Refocusing() bool {
	return c.refocus
}

// TopLine reads the top visible line of the pane for mode m.
func (c *Controller) TopLine(m Mode) int {
	if m == ModePreview {
		return RenderedTopLine(c.rendered)
	}
	return TextTopLine(c.text)
}

func (c *Controller) restore(m Mode, line int) {
	if m == ModePreview {
		RestoreRenderedLine(c.rendered, line)
		return
	}
	RestoreTextLine(c.text, line)
}

// Toggle flips the view. It returns the surface that now needs a post-render
// correction (see Settle).
func (c *Controller) Toggle() Surface {
	if c.mode == ModeEdit {
		c.memory.Capture(c.text.Selection())
		c.refocus = true
		c.text.Blur()
	}

	c.pendingAnchor = c.TopLine(c.mode)

	if c.mode == ModeEdit {
		c.mode = ModePreview
	} else {
		c.mode = ModeEdit
	}
	return SurfaceFor(c.mode)
}

// Settle restores the pending anchor on the active pane and, when returning
// to the editor, its focus and selection.
func (c *Controller) Settle() {
	if c.pendingAnchor > 0 {
		c.restore(c.mode, c.pendingAnchor)
		c.pendingAnchor = 0
	}

	if c.mode == ModeEdit && c.refocus {
		sel := c.memory.Restore(c.text.Len())
		c.text.Focus()
		c.text.SetSelection(sel)
		c.refocus = false
	}
}

// NoteUserScroll refreshes the pending anchor when the user scrolls the pane
// of the active mode. Scrolls of the hidden pane are ignored.
func (c *Controller) NoteUserScroll(m Mode) {
	if m != c.mode {
		return
	}
	c.pendingAnchor = c.TopLine(m)
}

// RememberAnchor records the active pane's top line ahead of a re-layout the
// user did not cause.
func (c *Controller) RememberAnchor() {
	c.pendingAnchor = c.TopLine(c.mode)
}

// CaptureSelection mirrors the live editor selection into memory.
func (c *Controller) CaptureSelection() {
	if c.mode != ModeEdit {
		return
	}
	c.memory.Capture(c.text.Selection())
}

// ForgetSelection is used when a new document replaces the content.
func (c *Controller) ForgetSelection() {
	c.memory.Reset()
}

// Reset returns to a fresh edit view: no pending anchor, caret at 0, editor
// focused.
func (c *Controller) Reset() {
	c.mode = ModeEdit
	c.pendingAnchor = 0
	c.refocus = false
	c.memory.Reset()
	c.text.Focus()
	c.text.SetSelection(Selection{})
	RestoreTextLine(c.text, 1)
}
