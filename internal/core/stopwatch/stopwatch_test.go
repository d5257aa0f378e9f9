package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStopwatchIsStopped(t *testing.T) {
	watch := New()
	assert.False(t, watch.IsRunning())
	assert.Equal(t, 0.0, watch.Elapsed())
	assert.Equal(t, "00:00.00", watch.Display())
}

func TestTickOnlyWhileRunning(t *testing.T) {
	watch := New()
	watch.Tick(1.5)
	assert.Equal(t, 0.0, watch.Elapsed())

	watch.Start()
	watch.Tick(0.25)
	assert.Equal(t, 0.25, watch.Elapsed())

	watch.Stop()
	watch.Tick(10)
	assert.Equal(t, 0.25, watch.Elapsed())
}

func TestTickIgnoresNegativeDelta(t *testing.T) {
	watch := New()
	watch.Start()
	watch.Tick(2)
	watch.Tick(-1)
	assert.Equal(t, 2.0, watch.Elapsed())
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	watch := New()
	watch.Start()
	watch.Start()
	assert.True(t, watch.IsRunning())

	watch.Stop()
	watch.Stop()
	assert.False(t, watch.IsRunning())
}

func TestToggle(t *testing.T) {
	watch := New()
	assert.True(t, watch.Toggle())
	assert.False(t, watch.Toggle())
}

func TestResetFromAnyState(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Stopwatch)
	}{
		{"fresh", func(*Stopwatch) {}},
		{"running", func(watch *Stopwatch) {
			watch.Start()
			watch.Tick(3)
		}},
		{"stopped with time", func(watch *Stopwatch) {
			watch.Start()
			watch.Tick(3)
			watch.Stop()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			watch := New()
			tt.prepare(watch)
			watch.Reset()
			assert.Equal(t, 0.0, watch.Elapsed())
			assert.False(t, watch.IsRunning())
		})
	}
}

func TestElapsedGrowsPastOneHour(t *testing.T) {
	watch := New()
	watch.Start()
	watch.Tick(3661.5)
	assert.Equal(t, "61:01.50", watch.Display())
}
