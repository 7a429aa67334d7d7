package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikari-md/hikari/internal/cli"
)

// executeCommand runs sub under a root carrying the global flags and
// returns what it printed to stdout.
func executeCommand(t *testing.T, configFile string, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "hikari", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", configFile, "")
	root.PersistentFlags().String("style", "", "")
	root.PersistentFlags().Bool("no-color", false, "")
	root.AddCommand(sub)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{sub.Name()}, args...))

	cli.SetOutput(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))
	cli.SetGlobalFlags(true, true, false)
	t.Cleanup(func() {
		cli.SetOutput(os.Stdout, os.Stderr, os.Stdin)
		cli.SetGlobalFlags(false, false, false)
	})

	err := root.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	doc := writeTempFile(t, dir, "doc.md", "# Title\n\nhello <script>alert(1)</script>\n")

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		contains []string
		excludes []string
	}{
		{
			name:     "html to stdout",
			args:     []string{doc},
			contains: []string{`<h1 data-source-line="1">Title</h1>`, `data-source-line="3"`},
			excludes: []string{"<script"},
		},
		{
			name:     "text output",
			args:     []string{doc, "--format", "text", "--width", "40", "--style", "notty"},
			contains: []string{"Title", "hello"},
			excludes: []string{"<h1"},
		},
		{
			name:    "missing file",
			args:    []string{filepath.Join(dir, "missing.md")},
			wantErr: true,
		},
		{
			name:    "bad format",
			args:    []string{doc, "--format", "pdf"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, config, NewRenderCommand(), tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderCommand_ToFile(t *testing.T) {
	dir := t.TempDir()
	doc := writeTempFile(t, dir, "doc.md", "para\n")
	target := filepath.Join(dir, "doc.html")

	out, err := executeCommand(t, filepath.Join(dir, "config.yaml"), NewRenderCommand(), doc, "-f", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<p data-source-line="1">para</p>`)
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeTempFile(t, dir, "doc.md", "# Title\n\none two three\n\n- a\n- b\n")
	config := filepath.Join(dir, "config.yaml")

	out, err := executeCommand(t, config, NewStatsCommand(), doc, "-o", "json")
	require.NoError(t, err)

	var stats DocumentStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, doc, stats.Path)
	assert.Equal(t, 6, stats.Lines)
	assert.Equal(t, 9, stats.Words)
	assert.Equal(t, 3, stats.Blocks)
	assert.Equal(t, int64(len("# Title\n\none two three\n\n- a\n- b\n")), stats.Bytes)

	out, err = executeCommand(t, config, NewStatsCommand(), doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Blocks")
	assert.Contains(t, out, "Lines")

	_, err = executeCommand(t, config, NewStatsCommand(), doc, "-o", "xml")
	assert.Error(t, err)
}

func TestCollectStats(t *testing.T) {
	tests := []struct {
		source string
		lines  int
	}{
		{source: "", lines: 0},
		{source: "a", lines: 1},
		{source: "a\n", lines: 1},
		{source: "a\nb", lines: 2},
		{source: "a\n\n", lines: 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.lines, collectStats("x.md", tt.source).Lines, "%q", tt.source)
	}
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "hikari", "config.yaml")

	out, err := executeCommand(t, config, NewConfigCommand(), "--path")
	require.NoError(t, err)
	assert.Equal(t, config+"\n", out)

	// defaults without a file
	out, err = executeCommand(t, config, NewConfigCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "pulse_ms: 650")
	assert.Contains(t, out, "notice_ms: 1400")

	_, err = executeCommand(t, config, NewConfigCommand(), "--init")
	require.NoError(t, err)
	data, err := os.ReadFile(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "near_bottom_lines: 1.5")

	out, err = executeCommand(t, config, NewConfigCommand(), "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Editor"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "", NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Equal(t, "Hikari version 1.2.3\n", out)
}
