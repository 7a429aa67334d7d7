package files

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikari-md/hikari/pkg/models"
)

func TestReadSettings_MissingFileUsesDefaults(t *testing.T) {
	store := NewStore(afero.NewMemMapFs())

	settings, err := store.ReadSettings("/cfg/hikari/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestReadSettings_PartialFile(t *testing.T) {
	store := NewStore(afero.NewMemMapFs())
	yaml := "editor:\n  near_bottom_lines: 2\npreview:\n  style: light\nfeedback:\n  pulse_ms: -1\n"
	require.NoError(t, afero.WriteFile(store.Fs(), "/cfg/config.yaml", []byte(yaml), 0644))

	settings, err := store.ReadSettings("/cfg/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2.0, settings.Editor.NearBottomLines)
	assert.Equal(t, 0.8, settings.Editor.BottomPaddingLines, "unset keys keep defaults")
	assert.Equal(t, "light", settings.Preview.Style)
	assert.Equal(t, 650, settings.Feedback.PulseMillis, "invalid values are normalised")
}

func TestReadSettings_InvalidYAML(t *testing.T) {
	store := NewStore(afero.NewMemMapFs())
	require.NoError(t, afero.WriteFile(store.Fs(), "/cfg/config.yaml", []byte("editor: [oops"), 0644))

	_, err := store.ReadSettings("/cfg/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings YAML")
}

func TestWriteSettings_RoundTrip(t *testing.T) {
	store := NewStore(afero.NewMemMapFs())
	settings := models.DefaultSettings()
	settings.Preview.Style = "notty"
	settings.Files.DefaultName = "draft.md"

	require.NoError(t, store.WriteSettings("/cfg/hikari/config.yaml", settings))

	got, err := store.ReadSettings("/cfg/hikari/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}
