// Package tabs owns the per-tab time state and routes frames to the selected tab.
package tabs

import (
	"fmt"
	"sync"

	"cccclock/internal/core/clock"
	"cccclock/internal/core/countdown"
	"cccclock/internal/core/model"
	"cccclock/internal/core/stopwatch"
)

// ErrUnknownTab is returned when selecting a tab that does not exist.
var ErrUnknownTab = model.ErrUnknownTab

// Config contains start-up options for a Container.
type Config struct {
	Clock        clock.Clock
	InitialTab   model.Tab
	TimerMinutes int
	TimerSeconds int
}

// StopwatchSnapshot is a read-only copy of the stopwatch state.
type StopwatchSnapshot struct {
	Elapsed float64
	Running bool
	Display string
}

// TimerSnapshot is a read-only copy of the timer state.
type TimerSnapshot struct {
	Minutes   int
	Seconds   int
	Remaining float64
	Phase     countdown.Phase
	Display   string
}

// Running reports whether the timer is counting down.
func (snapshot TimerSnapshot) Running() bool {
	return snapshot.Phase == countdown.PhaseRunning
}

// Finished reports whether the countdown reached zero.
func (snapshot TimerSnapshot) Finished() bool {
	return snapshot.Phase == countdown.PhaseFinished
}

// Container holds one instance of each tab state and the selected tab.
// State is mutated only from the UI thread; subscriptions may be added from any
// goroutine.
type Container struct {
	clock     clock.Clock
	selected  model.Tab
	stopwatch *stopwatch.Stopwatch
	timer     *countdown.Timer
	frames    map[model.Tab]int

	mu     sync.Mutex
	events []chan Event
}

// New creates a Container with the provided configuration.
func New(config Config) *Container {
	if config.Clock == nil {
		config.Clock = clock.System{}
	}
	if !config.InitialTab.Valid() {
		config.InitialTab = model.TabClock
	}

	container := &Container{
		clock:     config.Clock,
		selected:  config.InitialTab,
		stopwatch: stopwatch.New(),
		timer:     countdown.New(),
		frames:    make(map[model.Tab]int, len(model.Tabs())),
	}
	container.timer.Configure(config.TimerMinutes, config.TimerSeconds)
	return container
}

// Subscribe registers a new observer channel.
func (container *Container) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	container.mu.Lock()
	container.events = append(container.events, ch)
	container.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (container *Container) Close() {
	container.mu.Lock()
	events := container.events
	container.events = nil
	container.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Selected returns the active tab.
func (container *Container) Selected() model.Tab {
	return container.selected
}

// Select makes tab the active tab.
func (container *Container) Select(tab model.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("select %q: %w", tab, ErrUnknownTab)
	}
	if tab == container.selected {
		return nil
	}
	container.selected = tab
	container.emit(Event{Type: EventTabChange, Tab: tab})
	return nil
}

// Frame advances the selected tab by delta seconds. Unselected tabs are frozen.
func (container *Container) Frame(delta float64) {
	container.frames[container.selected]++

	switch container.selected {
	case model.TabStopwatch:
		container.stopwatch.Tick(delta)
	case model.TabTimer:
		if container.timer.Tick(delta) {
			container.emitTimer(EventTimerFinished)
		}
	}
}

// FrameCount returns how many frames tab has received.
func (container *Container) FrameCount(tab model.Tab) int {
	return container.frames[tab]
}

// Clock returns the clock used for the clock tab.
func (container *Container) Clock() clock.Clock {
	return container.clock
}

// Stopwatch returns a copy of the stopwatch state.
func (container *Container) Stopwatch() StopwatchSnapshot {
	return StopwatchSnapshot{
		Elapsed: container.stopwatch.Elapsed(),
		Running: container.stopwatch.IsRunning(),
		Display: container.stopwatch.Display(),
	}
}

// Timer returns a copy of the timer state.
func (container *Container) Timer() TimerSnapshot {
	minutes, seconds := container.timer.TargetParts()
	return TimerSnapshot{
		Minutes:   minutes,
		Seconds:   seconds,
		Remaining: container.timer.Remaining(),
		Phase:     container.timer.Phase(),
		Display:   container.timer.Display(),
	}
}

// StartStopwatch starts the stopwatch.
func (container *Container) StartStopwatch() {
	if container.stopwatch.IsRunning() {
		return
	}
	container.stopwatch.Start()
	container.emitStopwatch(EventStopwatchStarted)
}

// StopStopwatch stops the stopwatch.
func (container *Container) StopStopwatch() {
	if !container.stopwatch.IsRunning() {
		return
	}
	container.stopwatch.Stop()
	container.emitStopwatch(EventStopwatchStopped)
}

// ResetStopwatch zeroes and stops the stopwatch.
func (container *Container) ResetStopwatch() {
	container.stopwatch.Reset()
	container.emitStopwatch(EventStopwatchReset)
}

// ConfigureTimer sets the timer target. It reports false unless the timer is idle.
func (container *Container) ConfigureTimer(minutes, seconds int) bool {
	if !container.timer.Configure(minutes, seconds) {
		return false
	}
	container.emitTimer(EventTimerConfigured)
	return true
}

// StartTimer (re)starts the countdown from the target.
func (container *Container) StartTimer() {
	container.timer.Start()
	container.emitTimer(EventTimerStarted)
}

// StopTimer returns the timer to idle.
func (container *Container) StopTimer() {
	if container.timer.Phase() == countdown.PhaseIdle {
		return
	}
	container.timer.Stop()
	container.emitTimer(EventTimerStopped)
}

func (container *Container) emitStopwatch(eventType EventType) {
	container.emit(Event{
		Type:    eventType,
		Tab:     model.TabStopwatch,
		Elapsed: container.stopwatch.Elapsed(),
	})
}

func (container *Container) emitTimer(eventType EventType) {
	container.emit(Event{
		Type:      eventType,
		Tab:       model.TabTimer,
		Phase:     container.timer.Phase(),
		Remaining: container.timer.Remaining(),
		Target:    container.timer.Target(),
	})
}

func (container *Container) emit(event Event) {
	event.At = container.clock.Now()

	container.mu.Lock()
	defer container.mu.Unlock()
	for _, ch := range container.events {
		select {
		case ch <- event:
		default:
		}
	}
}
