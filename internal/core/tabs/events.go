package tabs

import (
	"time"

	"cccclock/internal/core/countdown"
	"cccclock/internal/core/model"
)

// EventType defines the type of Container event.
type EventType string

const (
	EventTabChange        EventType = "tab_change"
	EventStopwatchStarted EventType = "stopwatch_started"
	EventStopwatchStopped EventType = "stopwatch_stopped"
	EventStopwatchReset   EventType = "stopwatch_reset"
	EventTimerConfigured  EventType = "timer_configured"
	EventTimerStarted     EventType = "timer_started"
	EventTimerStopped     EventType = "timer_stopped"
	EventTimerFinished    EventType = "timer_finished"
)

// Event represents a Container update for observers.
type Event struct {
	Type      EventType
	Tab       model.Tab
	Phase     countdown.Phase
	Elapsed   float64
	Remaining float64
	Target    int
	At        time.Time
}
