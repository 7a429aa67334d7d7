package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hikari-md/hikari/internal/cli"
	"github.com/hikari-md/hikari/pkg/models"
)

var (
	configInit bool
	configShowPath bool
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration file",
		Long: `Show the effective configuration, or write the defaults.

A missing configuration file is not an error: the defaults are used.

Examples:
  # Show the effective settings
  hikari config

  # Show where the file lives
  hikari config --path

  # Write the defaults (asks before overwriting)
  hikari config --init`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return cli.ValidateOutputFormat(format, "yaml", "json")
		},
		RunE: runConfig,
	}

	cmd.Flags().BoolVar(&configInit, "init", false, "Write the default settings")
	cmd.Flags().BoolVar(&configShowPath, "path", false, "Print the settings file path")
	cmd.Flags().StringP("output", "o", "yaml", "Output format (yaml, json)")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}

	if configShowPath {
		fmt.Fprintln(cmd.OutOrStdout(), ctx.SettingsPath)
		return nil
	}

	if configInit {
		return initConfig(ctx)
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	return cli.OutputResults(cmd.OutOrStdout(), outputFormat, ctx.LoadSettingsWithDefault())
}

func initConfig(ctx *cli.CommandContext) error {
	exists, err := afero.Exists(ctx.Store.Fs(), ctx.SettingsPath)
	if err != nil {
		return err
	}
	if exists {
		ok, err := cli.Confirm(fmt.Sprintf("%s exists. Overwrite with defaults?", ctx.SettingsPath), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Kept %s", ctx.SettingsPath)
			return nil
		}
	}

	if err := ctx.Store.WriteSettings(ctx.SettingsPath, models.DefaultSettings()); err != nil {
		return err
	}
	cli.PrintSuccess("Wrote default settings to %s", ctx.SettingsPath)
	return nil
}
