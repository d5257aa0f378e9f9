package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cccclock/internal/core/countdown"
	"cccclock/internal/core/model"
	"cccclock/internal/core/tabs"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func (host *fakeHost) last() *fyne.Menu {
	return host.menus[len(host.menus)-1]
}

func TestNewInstallsMenu(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, model.TabClock, Callbacks{})

	require.NotEmpty(t, host.menus)
	menu := host.last()
	assert.Equal(t, "CCC Clock", menu.Label)
	assert.Equal(t, "Status: Clock", manager.Status())
	assert.True(t, manager.tabItems[model.TabClock].Checked)
	assert.False(t, manager.tabItems[model.TabTimer].Checked)
}

func TestHandleEventUpdatesStatus(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, model.TabClock, Callbacks{})

	manager.HandleEvent(tabs.Event{Type: tabs.EventTabChange, Tab: model.TabTimer})
	assert.Equal(t, "Status: Timer", manager.Status())
	assert.True(t, manager.tabItems[model.TabTimer].Checked)

	manager.HandleEvent(tabs.Event{Type: tabs.EventTimerStarted, Tab: model.TabTimer, Target: 90, Phase: countdown.PhaseRunning})
	assert.Equal(t, "Status: Timer (timer 01:30)", manager.Status())

	manager.HandleEvent(tabs.Event{Type: tabs.EventTimerFinished, Tab: model.TabTimer})
	assert.Equal(t, "Status: Timer (time's up!)", manager.Status())

	manager.HandleEvent(tabs.Event{Type: tabs.EventTimerStopped, Tab: model.TabTimer})
	assert.Equal(t, "Status: Timer", manager.Status())
}

func TestHandleEventIgnoresStopwatchEvents(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, model.TabStopwatch, Callbacks{})
	installed := len(host.menus)

	manager.HandleEvent(tabs.Event{Type: tabs.EventStopwatchStarted, Tab: model.TabStopwatch})
	assert.Len(t, host.menus, installed)
}

func TestMenuCallbacks(t *testing.T) {
	host := &fakeHost{}
	shown := 0
	var selected []model.Tab
	quit := false

	manager := New(host, model.TabClock, Callbacks{
		OnShow:      func() { shown++ },
		OnSelectTab: func(tab model.Tab) { selected = append(selected, tab) },
		OnQuit:      func() { quit = true },
	})

	manager.showItem.Action()
	manager.tabItems[model.TabStopwatch].Action()
	manager.quitItem.Action()

	assert.Equal(t, 2, shown)
	assert.Equal(t, []model.Tab{model.TabStopwatch}, selected)
	assert.True(t, quit)
}
