package cli

import (
	"errors"
	"os"

	"github.com/spf13/afero"

	"github.com/hikari-md/hikari/pkg/files"
	"github.com/hikari-md/hikari/pkg/models"
)

// IsNotExist reports whether err means a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// CommandContext carries what every subcommand needs: the file store and
// the resolved settings location.
type CommandContext struct {
	Store        *files.Store
	SettingsPath string
	Settings     *models.Settings
}

// NewCommandContext resolves settingsPath, falling back to the default
// location when it is empty.
func NewCommandContext(fs afero.Fs, settingsPath string) (*CommandContext, error) {
	if settingsPath == "" {
		path, err := files.DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		settingsPath = path
	}
	return &CommandContext{Store: files.NewStore(fs), SettingsPath: settingsPath}, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := c.Store.ReadSettings(c.SettingsPath)
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}
