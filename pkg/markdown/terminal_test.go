package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRenderer_BlockTops(t *testing.T) {
	r, err := NewTerminalRenderer("notty", 40)
	require.NoError(t, err)

	out, err := r.Render("# Title\n\nhello world\n\nbye")
	require.NoError(t, err)

	require.Len(t, out.Blocks, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{out.Blocks[0].Line, out.Blocks[1].Line, out.Blocks[2].Line})
	assert.Equal(t, 0.0, out.Blocks[0].Top)
	for i := 1; i < len(out.Blocks); i++ {
		assert.Greater(t, out.Blocks[i].Top, out.Blocks[i-1].Top)
	}
	assert.Contains(t, out.Text, "hello world")
	assert.Equal(t, out.Rows, len(strings.Split(out.Text, "\n")))
}

func TestTerminalRenderer_Empty(t *testing.T) {
	r, err := NewTerminalRenderer("notty", 40)
	require.NoError(t, err)

	out, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, out.Blocks)
	assert.Equal(t, "", out.Text)
}

func TestTerminalRenderer_DropsUnsafeLinks(t *testing.T) {
	r, err := NewTerminalRenderer("notty", 60)
	require.NoError(t, err)

	out, err := r.Render("[x](javascript:alert(1)) <javascript:alert(2)>\n\n<script>alert(3)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out.Text, "javascript:")
	assert.NotContains(t, out.Text, "<script>")
}

func TestTerminalRenderer_ReferenceLinksAcrossBlocks(t *testing.T) {
	r, err := NewTerminalRenderer("notty", 60)
	require.NoError(t, err)

	src := "See [the docs][ref] here.\n\nSecond paragraph.\n\n[ref]: https://example.com \"Docs\"\n"
	out, err := r.Render(src)
	require.NoError(t, err)

	assert.NotContains(t, out.Text, "[the docs][ref]")
	assert.Contains(t, out.Text, "the docs")
	assert.Contains(t, out.Text, "https://example.com")
	require.Len(t, out.Blocks, 2)
	assert.Equal(t, 1, out.Blocks[0].Line)
	assert.Equal(t, 3, out.Blocks[1].Line)
}

func TestTerminalRenderer_UnsafeReferenceDefinition(t *testing.T) {
	r, err := NewTerminalRenderer("notty", 60)
	require.NoError(t, err)

	out, err := r.Render("[x][bad]\n\ntext\n\n[bad]: javascript:alert(1)\n")
	require.NoError(t, err)
	assert.NotContains(t, out.Text, "javascript:")
}

func TestReferenceDefinitions(t *testing.T) {
	_, refs := parseDocument([]byte("[b]: <has space> 'say \"hi\"'\n[a]: /x\n\ntext\n"))
	assert.Equal(t, "[a]: /x\n[b]: <has space> 'say \"hi\"'\n", referenceDefinitions(refs))
}

func TestRenderPlain(t *testing.T) {
	out := RenderPlain("aaaa bbbb\nc", 4)
	assert.Equal(t, "aaaa\nbbbb\nc", out.Text)
	assert.Equal(t, 3, out.Rows)
	require.Len(t, out.Blocks, 2)
	assert.Equal(t, 1, out.Blocks[0].Line)
	assert.Equal(t, 0.0, out.Blocks[0].Top)
	assert.Equal(t, 2, out.Blocks[1].Line)
	assert.Equal(t, 2.0, out.Blocks[1].Top)
}

func TestStripControl(t *testing.T) {
	assert.Equal(t, "a[31mb\nc\td", StripControl("a\x1b[31mb\r\nc\td"))
	assert.Equal(t, "x\ny", StripControl("x\ry"))
}

func TestNeutralizeLinks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[ok](https://example.com)", "[ok](https://example.com)"},
		{"[x](javascript:void)", "[x](#)"},
		{"[x](<VBScript:run>)", "[x](<#>)"},
		{"see <javascript:alert> now", "see  now"},
		{"text\n[r]: JavaScript:alert(1) \"t\"", "text\n[r]: # \"t\""},
		{"[r]: https://example.com", "[r]: https://example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NeutralizeLinks(tt.in), tt.in)
	}
}
