// Package window builds the tabbed main window.
package window

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"cccclock/internal/core/model"
	"cccclock/internal/core/tabs"
	"cccclock/internal/ui/views"
)

const (
	Title  = "CCC Clock"
	Width  = 400
	Height = 300
)

// Window routes frames and tab selection to the tab views.
type Window struct {
	window fyne.Window
	tabs   *container.AppTabs
	state  *tabs.Container
	views  map[model.Tab]views.View
	logger *slog.Logger
}

// New creates the main window bound to state.
func New(app fyne.App, state *tabs.Container, logger *slog.Logger) *Window {
	mainWindow := &Window{
		window: app.NewWindow(Title),
		state:  state,
		logger: logger,
		views: map[model.Tab]views.View{
			model.TabClock:     views.NewClockView(state.Clock()),
			model.TabStopwatch: views.NewStopwatchView(state, logger),
			model.TabTimer:     views.NewTimerView(state, logger),
		},
	}

	items := make([]*container.TabItem, 0, len(model.Tabs()))
	for _, tab := range model.Tabs() {
		items = append(items, container.NewTabItem(tab.Title(), mainWindow.views[tab].Content()))
	}
	mainWindow.tabs = container.NewAppTabs(items...)
	mainWindow.tabs.SelectIndex(state.Selected().Index())
	mainWindow.tabs.OnSelected = func(*container.TabItem) {
		mainWindow.handleSelected()
	}

	if app.Icon() != nil {
		mainWindow.window.SetIcon(app.Icon())
	}
	mainWindow.window.SetContent(mainWindow.tabs)
	mainWindow.window.Resize(fyne.NewSize(Width, Height))
	mainWindow.window.SetMaster()
	return mainWindow
}

// Frame advances the selected tab by delta seconds and redraws it.
func (mainWindow *Window) Frame(delta float64) {
	mainWindow.state.Frame(delta)
	mainWindow.views[mainWindow.state.Selected()].Redraw()
}

// SelectTab switches the visible tab.
func (mainWindow *Window) SelectTab(tab model.Tab) {
	index := tab.Index()
	if index < 0 {
		mainWindow.logger.Warn("select tab", "tab", string(tab), "error", tabs.ErrUnknownTab)
		return
	}
	mainWindow.tabs.SelectIndex(index)
	mainWindow.handleSelected()
}

// Selected returns the visible tab.
func (mainWindow *Window) Selected() model.Tab {
	return mainWindow.state.Selected()
}

// Show displays and focuses the window.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// ShowAndRun displays the window and runs the application loop.
func (mainWindow *Window) ShowAndRun() {
	mainWindow.window.ShowAndRun()
}

func (mainWindow *Window) handleSelected() {
	index := mainWindow.tabs.SelectedIndex()
	all := model.Tabs()
	if index < 0 || index >= len(all) {
		return
	}
	tab := all[index]
	if tab == mainWindow.state.Selected() {
		return
	}
	if err := mainWindow.state.Select(tab); err != nil {
		mainWindow.logger.Warn("select tab", "tab", string(tab), "error", err)
		return
	}
	mainWindow.logger.Debug("tab selected", "tab", string(tab))
	mainWindow.views[tab].Redraw()
}
