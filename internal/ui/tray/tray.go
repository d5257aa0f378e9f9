package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"cccclock/internal/core/model"
	"cccclock/internal/core/tabs"
	"cccclock/internal/core/timefmt"
)

const menuTitle = "CCC Clock"

// MenuHost installs the tray menu. desktop.App satisfies it.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow      func()
	OnSelectTab func(model.Tab)
	OnQuit      func()
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	tabsItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	tabItems   map[model.Tab]*fyne.MenuItem
	callbacks  Callbacks
	tab        model.Tab
	timerNote  string
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, initial model.Tab, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
		tab:       initial,
		tabItems:  make(map[model.Tab]*fyne.MenuItem, len(model.Tabs())),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show "+menuTitle, func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	children := make([]*fyne.MenuItem, 0, len(model.Tabs()))
	for _, tab := range model.Tabs() {
		tab := tab
		item := fyne.NewMenuItem(tab.Title(), func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
			if manager.callbacks.OnSelectTab != nil {
				manager.callbacks.OnSelectTab(tab)
			}
		})
		manager.tabItems[tab] = item
		children = append(children, item)
	}
	manager.tabsItem = fyne.NewMenuItem("Go to", nil)
	manager.tabsItem.ChildMenu = fyne.NewMenu("", children...)

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshStatus()
	return manager
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// HandleEvent updates the tray from a tab container event.
func (manager *Manager) HandleEvent(event tabs.Event) {
	switch event.Type {
	case tabs.EventTabChange:
		manager.tab = event.Tab
	case tabs.EventTimerStarted:
		manager.timerNote = "timer " + timefmt.MinutesSeconds(float64(event.Target))
	case tabs.EventTimerStopped:
		manager.timerNote = ""
	case tabs.EventTimerFinished:
		manager.timerNote = "time's up!"
	default:
		return
	}
	manager.refreshStatus()
}

func (manager *Manager) refreshStatus() {
	status := manager.tab.Title()
	if manager.timerNote != "" {
		status = fmt.Sprintf("%s (%s)", status, manager.timerNote)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	for tab, item := range manager.tabItems {
		item.Checked = tab == manager.tab
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
			manager.statusItem,
			manager.showItem,
			manager.tabsItem,
			fyne.NewMenuItemSeparator(),
			manager.quitItem,
		))
	}
}
