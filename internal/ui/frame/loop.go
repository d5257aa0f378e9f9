// Package frame drives the per-frame redraw of the window.
package frame

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Config contains runtime options for a Loop.
type Config struct {
	Interval time.Duration
	// Dispatch runs a frame on the UI thread. Defaults to fyne.Do.
	Dispatch func(func())
	// Now seeds the first frame delta. Defaults to time.Now.
	Now func() time.Time
	// Ticks replaces the internal ticker when set.
	Ticks <-chan time.Time
}

// Loop calls a frame handler at a fixed interval with the elapsed seconds since
// the previous frame.
type Loop struct {
	mu      sync.Mutex
	config  Config
	onFrame func(delta float64)
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped loop.
func New(config Config, onFrame func(delta float64)) *Loop {
	if config.Interval <= 0 {
		config.Interval = 16 * time.Millisecond
	}
	if config.Dispatch == nil {
		config.Dispatch = fyne.Do
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Loop{config: config, onFrame: onFrame}
}

// Start launches the loop. It is a no-op while already running.
func (loop *Loop) Start(ctx context.Context) {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	if loop.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	loop.cancel = cancel
	loop.done = make(chan struct{})

	go loop.run(runCtx, loop.done)
}

// Stop terminates the loop and waits for it to exit.
func (loop *Loop) Stop() {
	loop.mu.Lock()
	cancel := loop.cancel
	done := loop.done
	loop.cancel = nil
	loop.done = nil
	loop.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (loop *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticks := loop.config.Ticks
	if ticks == nil {
		ticker := time.NewTicker(loop.config.Interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	last := loop.config.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case tickTime, ok := <-ticks:
			if !ok {
				return
			}
			delta := tickTime.Sub(last).Seconds()
			if delta < 0 {
				delta = 0
			}
			last = tickTime
			loop.config.Dispatch(func() {
				loop.onFrame(delta)
			})
		}
	}
}
