// Package countdown implements a frame-driven countdown timer.
package countdown

import "cccclock/internal/core/timefmt"

// Phase represents the current Timer mode.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

// MaxPart is the largest accepted minutes or seconds component.
const MaxPart = 59

// Timer counts a configured target down to zero, one frame delta at a time.
// It is owned by the UI thread and is not safe for concurrent use.
type Timer struct {
	minutes   int
	seconds   int
	remaining float64
	phase     Phase
}

// New returns an idle timer with a zero target.
func New() *Timer {
	return &Timer{phase: PhaseIdle}
}

// Configure sets the target while idle. Both parts are clamped to [0, 59].
// It reports whether the target was changed.
func (timer *Timer) Configure(minutes, seconds int) bool {
	if timer.phase != PhaseIdle {
		return false
	}
	timer.minutes = clampPart(minutes)
	timer.seconds = clampPart(seconds)
	return true
}

// Start seeds the remaining time from the target and begins counting.
func (timer *Timer) Start() {
	timer.remaining = timefmt.ToSeconds(timer.minutes, timer.seconds)
	timer.phase = PhaseRunning
}

// Stop returns the timer to idle. Partial progress is discarded.
func (timer *Timer) Stop() {
	timer.phase = PhaseIdle
}

// Tick subtracts delta seconds while running. It reports true on the tick that
// reaches zero, after which the timer stays finished until started or stopped.
func (timer *Timer) Tick(delta float64) bool {
	if timer.phase != PhaseRunning {
		return false
	}
	if delta < 0 {
		delta = 0
	}
	if timer.remaining > delta {
		timer.remaining -= delta
		return false
	}
	timer.remaining = 0
	timer.phase = PhaseFinished
	return true
}

// Target returns the configured duration in whole seconds.
func (timer *Timer) Target() int {
	return timer.minutes*60 + timer.seconds
}

// TargetParts returns the configured minutes and seconds.
func (timer *Timer) TargetParts() (int, int) {
	return timer.minutes, timer.seconds
}

// Remaining returns the seconds left. It is never negative.
func (timer *Timer) Remaining() float64 {
	return timer.remaining
}

// Phase returns the current mode.
func (timer *Timer) Phase() Phase {
	return timer.phase
}

// IsRunning reports whether the timer is counting down.
func (timer *Timer) IsRunning() bool {
	return timer.phase == PhaseRunning
}

// IsFinished reports whether the countdown reached zero.
func (timer *Timer) IsFinished() bool {
	return timer.phase == PhaseFinished
}

// Display renders the remaining time as MM:SS.
func (timer *Timer) Display() string {
	return timefmt.MinutesSeconds(timer.remaining)
}

func clampPart(value int) int {
	if value < 0 {
		return 0
	}
	if value > MaxPart {
		return MaxPart
	}
	return value
}
