package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"cccclock/internal/core/clock"
)

// ClockView shows the current local date and time.
type ClockView struct {
	source  clock.Clock
	content fyne.CanvasObject
	date    *widget.Label
	time    *widget.Label
	day     *widget.Label
	large   *canvas.Text
}

// NewClockView creates the clock tab reading source.
func NewClockView(source clock.Clock) *ClockView {
	view := &ClockView{
		source: source,
		date:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		time:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		day:    widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		large:  newLargeText("--:--:--"),
	}

	view.content = container.NewVBox(
		newHeading("Current Time"),
		widget.NewSeparator(),
		view.date,
		view.time,
		view.day,
		newGap(20),
		displayBox(view.large),
		layout.NewSpacer(),
	)
	view.Redraw()
	return view
}

// Content returns the tab content.
func (view *ClockView) Content() fyne.CanvasObject {
	return view.content
}

// Redraw reads the clock once and renders every field from that instant.
func (view *ClockView) Redraw() {
	reading := clock.Read(view.source)
	view.date.SetText("Date: " + reading.Date)
	view.time.SetText("Time: " + reading.Time)
	view.day.SetText("Day: " + reading.Day)
	setText(view.large, reading.Large)
}
