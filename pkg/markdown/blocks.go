// Package markdown renders documents for the preview pane and for export.
// Both renderers tag each top-level block with the 1-based source line it
// starts on, so the preview can be aligned with the raw text.
package markdown

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// sourceBlock is one top-level block and the slice of source it owns.
type sourceBlock struct {
	node  ast.Node
	start int // offset of the block's first line
	end   int // offset where the next block begins
	line  int // 1-based line of start
}

func (b sourceBlock) source(src []byte) []byte {
	return src[b.start:b.end]
}

var blockParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

func parseBlocks(src []byte) []sourceBlock {
	blocks, _ := parseDocument(src)
	return blocks
}

// parseDocument splits src into blocks and returns the link reference
// definitions of the whole document, sorted by label.
func parseDocument(src []byte) ([]sourceBlock, []parser.Reference) {
	pc := parser.NewContext()
	doc := blockParser.Parse(text.NewReader(src), parser.WithContext(pc))
	refs := pc.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	return splitBlocks(doc, src), refs
}

// referenceDefinitions writes refs back as definition lines. Appended to a
// block rendered on its own, they resolve reference links defined elsewhere
// in the document.
func referenceDefinitions(refs []parser.Reference) string {
	var b strings.Builder
	for _, ref := range refs {
		dest := string(ref.Destination())
		if dest == "" || strings.ContainsAny(dest, " \t") {
			dest = "<" + dest + ">"
		}
		b.WriteString("[" + string(ref.Label()) + "]: " + dest)
		if title := string(ref.Title()); title != "" {
			b.WriteString(" " + quoteTitle(title))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteTitle(title string) string {
	switch {
	case !strings.Contains(title, `"`):
		return `"` + title + `"`
	case !strings.Contains(title, "'"):
		return "'" + title + "'"
	case !strings.ContainsAny(title, "()"):
		return "(" + title + ")"
	}
	return `"` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

// BlockLines returns the source line each top-level block starts on.
func BlockLines(src string) []int {
	var lines []int
	for _, b := range parseBlocks([]byte(src)) {
		lines = append(lines, b.line)
	}
	return lines
}

// splitBlocks assigns every top-level child of doc a contiguous range of
// whole source lines. Ranges are ordered and cover the document from the
// first block to the end.
func splitBlocks(doc ast.Node, src []byte) []sourceBlock {
	var blocks []sourceBlock
	from := 0
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		start := blockStart(n, src, from)
		if len(blocks) > 0 && start < blocks[len(blocks)-1].start {
			start = blocks[len(blocks)-1].start
		}
		blocks = append(blocks, sourceBlock{node: n, start: start, line: lineAt(src, start)})
		from = blockEnd(n, src, start)
	}

	for i := range blocks {
		if i+1 < len(blocks) {
			blocks[i].end = blocks[i+1].start
		} else {
			blocks[i].end = len(src)
		}
	}
	return blocks
}

func blockStart(n ast.Node, src []byte, from int) int {
	seg, owner, ok := firstSegment(n)
	if !ok {
		return nextNonBlankLine(src, from)
	}
	start := lineStart(src, seg.Start)
	if _, fenced := owner.(*ast.FencedCodeBlock); fenced {
		// segments hold the code, the opening fence is the line above
		start = lineStart(src, max(0, start-1))
	}
	return start
}

// blockEnd returns the offset just past the block's last line.
func blockEnd(n ast.Node, src []byte, start int) int {
	seg, owner, ok := lastSegment(n)
	if !ok {
		end := lineEnd(src, start)
		if _, fenced := n.(*ast.FencedCodeBlock); fenced {
			end = lineEnd(src, min(len(src), end+1))
		}
		return min(len(src), end+1)
	}

	stop := seg.Stop
	if stop > 0 && stop <= len(src) && src[stop-1] == '\n' {
		stop--
	}
	end := lineEnd(src, stop)

	switch owner.(type) {
	case *ast.FencedCodeBlock:
		if end < len(src) {
			end = lineEnd(src, end+1)
		}
	case *ast.Heading:
		if end < len(src) {
			next := lineEnd(src, end+1)
			if isSetextUnderline(src[end+1 : next]) {
				end = next
			}
		}
	}
	return min(len(src), end+1)
}

func firstSegment(n ast.Node) (text.Segment, ast.Node, bool) {
	if n.Type() != ast.TypeBlock {
		return text.Segment{}, nil, false
	}
	if lines := n.Lines(); lines.Len() > 0 {
		return lines.At(0), n, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if seg, owner, ok := firstSegment(c); ok {
			return seg, owner, true
		}
	}
	return text.Segment{}, nil, false
}

func lastSegment(n ast.Node) (text.Segment, ast.Node, bool) {
	if n.Type() != ast.TypeBlock {
		return text.Segment{}, nil, false
	}
	for c := n.LastChild(); c != nil; c = c.PreviousSibling() {
		if seg, owner, ok := lastSegment(c); ok {
			return seg, owner, true
		}
	}
	if lines := n.Lines(); lines.Len() > 0 {
		return lines.At(lines.Len() - 1), n, true
	}
	return text.Segment{}, nil, false
}

func lineAt(src []byte, off int) int {
	return 1 + bytes.Count(src[:min(off, len(src))], []byte{'\n'})
}

func lineStart(src []byte, off int) int {
	off = min(off, len(src))
	return bytes.LastIndexByte(src[:off], '\n') + 1
}

// lineEnd returns the offset of the newline ending the line at off, or
// len(src).
func lineEnd(src []byte, off int) int {
	if off >= len(src) {
		return len(src)
	}
	if i := bytes.IndexByte(src[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(src)
}

func nextNonBlankLine(src []byte, from int) int {
	for p := from; p < len(src); {
		e := lineEnd(src, p)
		if len(bytes.TrimSpace(src[p:e])) > 0 {
			return p
		}
		p = e + 1
	}
	return min(from, len(src))
}

func isSetextUnderline(line []byte) bool {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return false
	}
	c := line[0]
	if c != '=' && c != '-' {
		return false
	}
	for _, b := range line {
		if b != c {
			return false
		}
	}
	return true
}
