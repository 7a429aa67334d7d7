package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hikari-md/hikari/pkg/models"
)

const (
	AppDir       = "hikari"
	SettingsFile = "config.yaml"
)

// DefaultSettingsPath is $XDG_CONFIG_HOME/hikari/config.yaml (or the platform
// equivalent).
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFile), nil
}

// ReadSettings loads settings from path. A missing file yields the defaults.
func (s *Store) ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	settings.Normalize()

	return settings, nil
}

// WriteSettings stores settings at path, creating the directory if needed.
func (s *Store) WriteSettings(path string, settings *models.Settings) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := afero.WriteFile(s.fs, path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
