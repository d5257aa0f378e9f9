package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cccclock/internal/core/model"
	"cccclock/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	InitialTab      string `yaml:"initial_tab"`
	FrameIntervalMS int    `yaml:"frame_interval_ms"`
	NotifyOnFinish  *bool  `yaml:"notify_on_finish"`
	LogLevel        string `yaml:"log_level"`
	TimerMinutes    int    `yaml:"timer_minutes"`
	TimerSeconds    int    `yaml:"timer_seconds"`
}

// LoadSettings reads start-up preferences from the user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from configPath. The file is never written.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return preferences.DefaultSettings(), err
	}
	return settings.Normalized(), nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	if fileData.InitialTab != "" {
		tab, err := model.ParseTab(fileData.InitialTab)
		if err != nil {
			return fmt.Errorf("apply settings: %w", err)
		}
		settings.InitialTab = tab
	}
	if fileData.FrameIntervalMS > 0 {
		settings.FrameInterval = time.Duration(fileData.FrameIntervalMS) * time.Millisecond
	}
	if fileData.NotifyOnFinish != nil {
		settings.NotifyOnFinish = *fileData.NotifyOnFinish
	}
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}

	settings.TimerMinutes = fileData.TimerMinutes
	settings.TimerSeconds = fileData.TimerSeconds
	return nil
}
