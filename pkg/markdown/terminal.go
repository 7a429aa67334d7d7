package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark/ast"

	"github.com/hikari-md/hikari/pkg/viewsync"
)

// Rendered is a document laid out for the preview pane. Block tops are row
// offsets into Text, one row per line.
type Rendered struct {
	Text   string
	Blocks []viewsync.Block
	Rows   int
}

// TerminalRenderer renders markdown block by block with glamour so every
// block's first row is known. Each block carries the document's link
// reference definitions.
type TerminalRenderer struct {
	style string
	width int
	term  *glamour.TermRenderer
}

// NewTerminalRenderer creates a renderer for the given glamour standard
// style ("dark", "light", "notty", ...) and wrap width.
func NewTerminalRenderer(style string, width int) (*TerminalRenderer, error) {
	if width < 10 {
		width = 10
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q renderer: %w", style, err)
	}
	return &TerminalRenderer{style: style, width: width, term: term}, nil
}

// Style returns the glamour style name.
func (r *TerminalRenderer) Style() string { return r.style }

// Width returns the wrap width.
func (r *TerminalRenderer) Width() int { return r.width }

// Render lays out src. Blocks are separated by one blank row.
func (r *TerminalRenderer) Render(src string) (*Rendered, error) {
	clean := []byte(StripControl(src))
	out := &Rendered{}
	var b strings.Builder

	blocks, refs := parseDocument(clean)
	defs := referenceDefinitions(refs)

	for _, blk := range blocks {
		chunk := string(blk.source(clean))
		switch blk.node.(type) {
		case *ast.HTMLBlock:
			chunk = SanitizeHTML(chunk)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			// an unclosed fence would swallow the definitions
		default:
			if defs != "" {
				chunk = strings.TrimRight(chunk, "\n") + "\n\n" + defs
			}
		}
		chunk = NeutralizeLinks(chunk)

		text, err := r.term.Render(chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to render block at line %d: %w", blk.line, err)
		}
		rows := trimBlankRows(strings.Split(text, "\n"))
		if len(rows) == 0 {
			continue
		}

		if out.Rows > 0 {
			b.WriteString("\n\n")
			out.Rows++
		}
		out.Blocks = append(out.Blocks, viewsync.Block{Line: blk.line, Top: float64(out.Rows)})
		b.WriteString(strings.Join(rows, "\n"))
		out.Rows += len(rows)
	}

	out.Text = b.String()
	return out, nil
}

// RenderPlain is the fallback layout used when glamour fails: the source
// soft-wrapped at width, one block per source line.
func RenderPlain(src string, width int) *Rendered {
	out := &Rendered{}
	var rows []string
	for i, line := range strings.Split(StripControl(src), "\n") {
		wrapped := strings.Split(wordwrap.String(line, max(width, 1)), "\n")
		out.Blocks = append(out.Blocks, viewsync.Block{Line: i + 1, Top: float64(len(rows))})
		rows = append(rows, wrapped...)
	}
	out.Text = strings.Join(rows, "\n")
	out.Rows = len(rows)
	return out
}

func trimBlankRows(rows []string) []string {
	blank := func(s string) bool { return strings.TrimSpace(ansi.Strip(s)) == "" }
	for len(rows) > 0 && blank(rows[0]) {
		rows = rows[1:]
	}
	for len(rows) > 0 && blank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}
