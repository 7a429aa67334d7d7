package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hikari-md/hikari/cmd/commands"
	"github.com/hikari-md/hikari/internal/cli"
	"github.com/hikari-md/hikari/pkg/files"
	"github.com/hikari-md/hikari/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

// debugEnv names the variable that turns on the debug log. "1" logs to
// hikari-debug.log; any other value is used as the log path.
const debugEnv = "HIKARI_DEBUG"

var (
	configFile  string
	styleName   string
	quietFlag   bool
	noColorFlag bool
	yesFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "hikari [file]",
	Short: "Terminal markdown editor with a rendered preview",
	Long: `Hikari is a terminal markdown editor. Write in the edit view and flip to
the rendered preview with ctrl+e; both views keep the same source line at
the top, and the editor keeps your selection while you read.

` + tui.GetTerminalSetupMessage(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
		if noColorFlag {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: runEditor,
}

func runEditor(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, err := cli.NewCommandContext(afero.NewOsFs(), configFile)
	if err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()
	if styleName != "" {
		settings.Preview.Style = styleName
	}
	if noColorFlag {
		settings.Preview.Style = "notty"
	}

	opts := tui.Options{
		Settings: settings,
		Store:    files.NewOSStore(),
	}
	if len(args) == 1 {
		opts.Path = args[0]
	}

	p := tea.NewProgram(tui.NewApp(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to the debug file, or discards it
// so nothing is written over the alt screen.
func setupLogging() (func(), error) {
	target := os.Getenv(debugEnv)
	if target == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if target == "1" {
		target = "hikari-debug.log"
	}

	f, err := tea.LogToFile(target, "hikari")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&styleName, "style", "", "Preview style (dark, light, notty, ...)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colors")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmations")

	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(version))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
