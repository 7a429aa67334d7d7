package tui

import (
	"log"
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hikari-md/hikari/pkg/markdown"
	"github.com/hikari-md/hikari/pkg/viewsync"
)

// previewPane is the rendered surface. Scroll offsets and block tops are
// rows of rendered output.
type previewPane struct {
	viewport viewport.Model
	renderer *markdown.TerminalRenderer
	rendered *markdown.Rendered

	style    string
	wordWrap int // 0 wraps at the pane width
	stale    bool
}

var _ viewsync.RenderedViewport = (*previewPane)(nil)

func newPreviewPane(style string, wordWrap int) *previewPane {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = false
	return &previewPane{
		viewport: vp,
		rendered: &markdown.Rendered{},
		style:    style,
		wordWrap: wordWrap,
		stale:    true,
	}
}

func (p *previewPane) SetSize(width, height int) {
	if width != p.viewport.Width {
		p.stale = true
	}
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetYOffset(p.viewport.YOffset)
}

// Invalidate marks the rendering out of date.
func (p *previewPane) Invalidate() { p.stale = true }

// Stale reports whether the next Render call will do work.
func (p *previewPane) Stale() bool { return p.stale }

func (p *previewPane) wrapWidth() int {
	if p.wordWrap > 0 {
		return p.wordWrap
	}
	return p.viewport.Width - 2
}

// Render lays out src if the pane is stale. Glamour failures fall back to
// the wrapped source.
func (p *previewPane) Render(src string) {
	if !p.stale {
		return
	}
	p.stale = false

	width := p.wrapWidth()
	if p.renderer == nil || p.renderer.Width() != max(width, 10) {
		r, err := markdown.NewTerminalRenderer(p.style, width)
		if err != nil {
			log.Printf("[render] %v", err)
			p.setRendered(markdown.RenderPlain(src, width))
			return
		}
		p.renderer = r
	}

	out, err := p.renderer.Render(src)
	if err != nil {
		log.Printf("[render] falling back to plain text: %v", err)
		out = markdown.RenderPlain(src, width)
	}
	p.setRendered(out)
}

func (p *previewPane) setRendered(out *markdown.Rendered) {
	p.rendered = out
	p.viewport.SetContent(out.Text)
}

func (p *previewPane) ScrollTop() float64 {
	return float64(p.viewport.YOffset)
}

func (p *previewPane) SetScrollTop(v float64) {
	p.viewport.SetYOffset(int(math.Round(v)))
}

func (p *previewPane) Blocks() []viewsync.Block {
	return p.rendered.Blocks
}

// ScrollBy scrolls n rows.
func (p *previewPane) ScrollBy(n int) {
	p.viewport.SetYOffset(p.viewport.YOffset + n)
}

// Update passes navigation keys to the viewport. It reports whether the
// scroll offset moved.
func (p *previewPane) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := p.viewport.YOffset
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p.viewport.YOffset != before, cmd
}

func (p *previewPane) View() string {
	return p.viewport.View()
}
