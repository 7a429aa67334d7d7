package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hikari-md/hikari/internal/cli"
	"github.com/hikari-md/hikari/pkg/markdown"
	"github.com/hikari-md/hikari/pkg/utils"
)

// DocumentStats summarizes one markdown file.
type DocumentStats struct {
	Path   string `json:"path" yaml:"path"`
	Bytes  int64  `json:"bytes" yaml:"bytes"`
	Lines  int    `json:"lines" yaml:"lines"`
	Words  int    `json:"words" yaml:"words"`
	Chars  int    `json:"chars" yaml:"chars"`
	Blocks int    `json:"blocks" yaml:"blocks"`
}

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show size, line, word and block counts for a markdown file",
		Long: `Show the counts the status bar shows, plus lines and top-level blocks.

Examples:
  hikari stats notes.md
  hikari stats notes.md -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return cli.ValidateOutputFormat(format)
		},
		RunE: runStats,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}
	if err := cli.ValidateFilePath(ctx.Store.Fs(), path); err != nil {
		return err
	}

	source, err := ctx.Store.ReadText(path)
	if err != nil {
		return err
	}

	stats := collectStats(path, source)

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, stats)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Row("File", stats.Path)
	table.Row("Size", humanize.Bytes(uint64(stats.Bytes)))
	table.Row("Lines", humanize.Comma(int64(stats.Lines)))
	table.Row("Words", humanize.Comma(int64(stats.Words)))
	table.Row("Chars", humanize.Comma(int64(stats.Chars)))
	table.Row("Blocks", fmt.Sprint(stats.Blocks))
	table.Flush()
	return nil
}

func collectStats(path, source string) DocumentStats {
	lines := 0
	if source != "" {
		lines = strings.Count(source, "\n") + 1
		if strings.HasSuffix(source, "\n") {
			lines--
		}
	}
	return DocumentStats{
		Path:   path,
		Bytes:  int64(len(source)),
		Lines:  lines,
		Words:  utils.CountWords(source),
		Chars:  utils.CountChars(source),
		Blocks: len(markdown.BlockLines(source)),
	}
}
