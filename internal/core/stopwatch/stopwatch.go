// Package stopwatch accumulates frame deltas into an elapsed counter.
//
// A Stopwatch is owned by a single goroutine (the UI thread) and is not safe for
// concurrent use.
package stopwatch

import "cccclock/internal/core/timefmt"

// Stopwatch tracks elapsed seconds while running.
type Stopwatch struct {
	elapsed float64
	running bool
}

// New returns a stopped stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{}
}

// Start begins accumulating. It is a no-op while already running.
func (watch *Stopwatch) Start() {
	watch.running = true
}

// Stop freezes the counter. It is a no-op while already stopped.
func (watch *Stopwatch) Stop() {
	watch.running = false
}

// Toggle flips between running and stopped and reports the new state.
func (watch *Stopwatch) Toggle() bool {
	watch.running = !watch.running
	return watch.running
}

// Reset zeroes the counter and stops it.
func (watch *Stopwatch) Reset() {
	watch.elapsed = 0
	watch.running = false
}

// Tick adds delta seconds while running.
func (watch *Stopwatch) Tick(delta float64) {
	if !watch.running || delta <= 0 {
		return
	}
	watch.elapsed += delta
}

// Elapsed returns the accumulated seconds.
func (watch *Stopwatch) Elapsed() float64 {
	return watch.elapsed
}

// IsRunning reports whether ticks are accumulated.
func (watch *Stopwatch) IsRunning() bool {
	return watch.running
}

// Display renders the counter as MM:SS.CC.
func (watch *Stopwatch) Display() string {
	return timefmt.MinutesSecondsCentis(watch.elapsed)
}
