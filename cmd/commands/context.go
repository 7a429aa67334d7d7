package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hikari-md/hikari/internal/cli"
)

// newContext builds the command context from the inherited --config flag.
func newContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(afero.NewOsFs(), configPath)
}
