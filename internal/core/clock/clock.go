// Package clock reads the wall clock and formats it for the clock tab.
package clock

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
	dayLayout  = "Monday"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the local platform clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now().Local()
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (fixed Fixed) Now() time.Time {
	return time.Time(fixed)
}

// Reading is one formatted instant.
type Reading struct {
	At    time.Time
	Date  string
	Time  string
	Day   string
	Large string
}

// Read takes a single instant from source and formats every field from it.
func Read(source Clock) Reading {
	now := source.Now()
	return Format(now)
}

// Format renders now into the clock tab fields.
func Format(now time.Time) Reading {
	clockTime := now.Format(timeLayout)
	return Reading{
		At:    now,
		Date:  now.Format(dateLayout),
		Time:  clockTime,
		Day:   now.Format(dayLayout),
		Large: clockTime,
	}
}
