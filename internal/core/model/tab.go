package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTab indicates a tab name or value outside the known set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies one of the application views.
type Tab string

const (
	TabClock     Tab = "clock"
	TabStopwatch Tab = "stopwatch"
	TabTimer     Tab = "timer"
)

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabClock, TabStopwatch, TabTimer}
}

// Valid reports whether tab is one of the known tabs.
func (tab Tab) Valid() bool {
	switch tab {
	case TabClock, TabStopwatch, TabTimer:
		return true
	default:
		return false
	}
}

// Title returns the label shown on the tab selector.
func (tab Tab) Title() string {
	switch tab {
	case TabClock:
		return "Clock"
	case TabStopwatch:
		return "Stopwatch"
	case TabTimer:
		return "Timer"
	default:
		return "Unknown"
	}
}

// Index returns the display position of tab, or -1.
func (tab Tab) Index() int {
	for index, candidate := range Tabs() {
		if candidate == tab {
			return index
		}
	}
	return -1
}

// ParseTab converts a case-insensitive name into a Tab.
func ParseTab(value string) (Tab, error) {
	tab := Tab(strings.ToLower(strings.TrimSpace(value)))
	if !tab.Valid() {
		return "", fmt.Errorf("parse tab %q: %w", value, ErrUnknownTab)
	}
	return tab, nil
}
