// Package timefmt renders second counters as fixed-width minute displays.
package timefmt

import (
	"fmt"
	"math"
)

// MinutesSeconds formats seconds as MM:SS. Minutes are not capped at 59.
func MinutesSeconds(seconds float64) string {
	minutes, secs := split(seconds)
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// MinutesSecondsCentis formats seconds as MM:SS.CC.
func MinutesSecondsCentis(seconds float64) string {
	minutes, secs := split(seconds)
	centis := int64(math.Mod(clamp(seconds), 1) * 100)
	return fmt.Sprintf("%02d:%02d.%02d", minutes, secs, centis)
}

// ToSeconds converts a minutes and seconds pair into total seconds.
func ToSeconds(minutes, seconds int) float64 {
	return float64(minutes*60 + seconds)
}

func split(seconds float64) (int64, int64) {
	seconds = clamp(seconds)
	return int64(seconds / 60), int64(math.Mod(seconds, 60))
}

// Negative and NaN counters render as zero.
func clamp(seconds float64) float64 {
	if seconds < 0 || math.IsNaN(seconds) {
		return 0
	}
	return seconds
}
