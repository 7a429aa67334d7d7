package markdown

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// SourceLineAttr is set on every top-level element of RenderHTML output.
const SourceLineAttr = "data-source-line"

// sourceLineTransformer tags top-level blocks with their first source line.
type sourceLineTransformer struct{}

func (sourceLineTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	for _, b := range splitBlocks(doc, reader.Source()) {
		b.node.SetAttributeString(SourceLineAttr, []byte(strconv.Itoa(b.line)))
	}
}

var htmlMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.Prioritized(sourceLineTransformer{}, 100)),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// RenderHTML converts markdown to sanitized HTML. Single newlines become
// <br> and every top-level element carries a data-source-line attribute.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return SanitizeHTML(buf.String()), nil
}
