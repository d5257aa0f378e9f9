package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"cccclock/internal/core/clock"
	"cccclock/internal/core/tabs"
	"cccclock/internal/logging"
	"cccclock/internal/platform"
	"cccclock/internal/storage"
	"cccclock/internal/ui/frame"
	"cccclock/internal/ui/preferences"
	"cccclock/internal/ui/tray"
	"cccclock/internal/ui/window"
	"cccclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName = "CCC Clock"
	appID   = "com.cccclock.app"
)

func main() {
	settings, settingsErr := storage.LoadSettings(appName)
	logger := logging.New(settings.LogLevel, os.Stderr)
	if settingsErr != nil {
		logger.Warn("load settings, using defaults", "error", settingsErr)
		settings = preferences.DefaultSettings()
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if activateErr := platform.ActivateExisting(appName); activateErr != nil {
				logger.Warn("activate running instance", "error", activateErr)
			}
		}
		logger.Info("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	state := tabs.New(settings.TabsConfig(clock.System{}))
	defer state.Close()

	mainWindow := window.New(fyneApp, state, logger)
	guard.Serve(func() {
		fyne.Do(mainWindow.Show)
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, state.Selected(), tray.Callbacks{
			OnShow:      mainWindow.Show,
			OnSelectTab: mainWindow.SelectTab,
			OnQuit:      fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	events := state.Subscribe(8)
	go func() {
		for event := range events {
			handleEvent(fyneApp, logger, settings, trayManager, event)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := frame.New(frame.Config{Interval: settings.FrameInterval}, mainWindow.Frame)
	fyneApp.Lifecycle().SetOnStarted(func() {
		loop.Start(ctx)
	})
	fyneApp.Lifecycle().SetOnStopped(cancel)

	logger.Info("starting",
		"tab", string(state.Selected()),
		"frame_interval", settings.FrameInterval.String(),
	)
	mainWindow.ShowAndRun()
}

func handleEvent(fyneApp fyne.App, logger *slog.Logger, settings preferences.Settings, trayManager *tray.Manager, event tabs.Event) {
	if event.Type == tabs.EventTimerFinished {
		logger.Info("timer finished", "target", event.Target)
	}

	fyne.Do(func() {
		if trayManager != nil {
			trayManager.HandleEvent(event)
		}
		if event.Type == tabs.EventTimerFinished && settings.NotifyOnFinish {
			fyneApp.SendNotification(fyne.NewNotification(window.Title, "Time's up!"))
		}
	})
}
