package timefmt

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "00:00"},
		{"under a minute", 59, "00:59"},
		{"fraction truncates", 59.999, "00:59"},
		{"two minutes five", 125, "02:05"},
		{"exactly one hour", 3600, "60:00"},
		{"over one hour", 3661, "61:01"},
		{"three digit minutes", 6000, "100:00"},
		{"negative clamps", -10, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinutesSeconds(tt.seconds))
		})
	}
}

func TestMinutesSecondsCentis(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "00:00.00"},
		{"two minutes", 125.37, "02:05.37"},
		{"just under a minute", 59.99, "00:59.99"},
		{"half second", 0.5, "00:00.50"},
		{"over one hour", 3661.25, "61:01.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinutesSecondsCentis(tt.seconds))
		})
	}
}

func TestMinutesSecondsShape(t *testing.T) {
	pattern := regexp.MustCompile(`^(\d{2,}):(\d{2})$`)
	for seconds := 0.0; seconds < 7300; seconds += 13.7 {
		formatted := MinutesSeconds(seconds)
		match := pattern.FindStringSubmatch(formatted)
		require.NotNil(t, match, "unexpected format %q for %v", formatted, seconds)

		secs, err := strconv.Atoi(match[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, secs, 0)
		assert.LessOrEqual(t, secs, 59)
	}
}

func TestToSeconds(t *testing.T) {
	assert.Equal(t, 125.0, ToSeconds(2, 5))
	assert.Equal(t, 59.0, ToSeconds(0, 59))
	assert.Equal(t, 61.0, ToSeconds(1, 1))
	assert.Equal(t, 0.0, ToSeconds(0, 0))
}
