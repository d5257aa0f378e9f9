package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cccclock/internal/core/model"
	"cccclock/internal/ui/preferences"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsFileMissing(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeSettings(t, `
initial_tab: Timer
frame_interval_ms: 33
notify_on_finish: false
log_level: debug
timer_minutes: 5
timer_seconds: 90
`)

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.TabTimer, settings.InitialTab)
	assert.Equal(t, 33*time.Millisecond, settings.FrameInterval)
	assert.False(t, settings.NotifyOnFinish)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, 5, settings.TimerMinutes)
	assert.Equal(t, 59, settings.TimerSeconds)
}

func TestLoadSettingsFilePartialKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "frame_interval_ms: 2\n")

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.TabClock, settings.InitialTab)
	assert.Equal(t, preferences.MinFrameInterval, settings.FrameInterval)
	assert.True(t, settings.NotifyOnFinish)
}

func TestLoadSettingsFileMalformed(t *testing.T) {
	path := writeSettings(t, "initial_tab: [clock\n")

	settings, err := LoadSettingsFile(path)
	require.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFileUnknownTab(t *testing.T) {
	path := writeSettings(t, "initial_tab: alarm\n")

	settings, err := LoadSettingsFile(path)
	require.ErrorIs(t, err, model.ErrUnknownTab)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := ResolveConfigPath("CCC Clock")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("CCC Clock", settingsFileName), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
