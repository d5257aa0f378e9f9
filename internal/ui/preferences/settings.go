package preferences

import (
	"time"

	"cccclock/internal/core/clock"
	"cccclock/internal/core/model"
	"cccclock/internal/core/tabs"
)

const (
	MinFrameInterval     = 8 * time.Millisecond
	MaxFrameInterval     = time.Second
	DefaultFrameInterval = 16 * time.Millisecond
)

// Settings defines start-up preferences.
type Settings struct {
	InitialTab     model.Tab
	FrameInterval  time.Duration
	NotifyOnFinish bool
	LogLevel       string

	TimerMinutes int
	TimerSeconds int
}

// DefaultSettings returns default settings for CCC Clock.
func DefaultSettings() Settings {
	return Settings{
		InitialTab:     model.TabClock,
		FrameInterval:  DefaultFrameInterval,
		NotifyOnFinish: true,
		LogLevel:       "info",
	}
}

// Normalized returns a copy with out-of-range values replaced or clamped.
func (settings Settings) Normalized() Settings {
	if !settings.InitialTab.Valid() {
		settings.InitialTab = model.TabClock
	}
	switch {
	case settings.FrameInterval <= 0:
		settings.FrameInterval = DefaultFrameInterval
	case settings.FrameInterval < MinFrameInterval:
		settings.FrameInterval = MinFrameInterval
	case settings.FrameInterval > MaxFrameInterval:
		settings.FrameInterval = MaxFrameInterval
	}
	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
	settings.TimerMinutes = clampPart(settings.TimerMinutes)
	settings.TimerSeconds = clampPart(settings.TimerSeconds)
	return settings
}

// TabsConfig converts settings to a tabs.Config reading the given clock.
func (settings Settings) TabsConfig(source clock.Clock) tabs.Config {
	return tabs.Config{
		Clock:        source,
		InitialTab:   settings.InitialTab,
		TimerMinutes: settings.TimerMinutes,
		TimerSeconds: settings.TimerSeconds,
	}
}

func clampPart(value int) int {
	if value < 0 {
		return 0
	}
	if value > 59 {
		return 59
	}
	return value
}
