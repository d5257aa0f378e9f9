package views

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"cccclock/internal/core/tabs"
)

// StopwatchView shows the stopwatch with start/stop and reset controls.
type StopwatchView struct {
	state   *tabs.Container
	logger  *slog.Logger
	content fyne.CanvasObject
	display *canvas.Text
	toggle  *widget.Button
	reset   *widget.Button
}

// NewStopwatchView creates the stopwatch tab bound to state.
func NewStopwatchView(state *tabs.Container, logger *slog.Logger) *StopwatchView {
	view := &StopwatchView{
		state:   state,
		logger:  logger,
		display: newLargeText("00:00.00"),
	}
	view.toggle = widget.NewButton("Start", view.handleToggle)
	view.reset = widget.NewButton("Reset", view.handleReset)

	view.content = container.NewVBox(
		newHeading("Stopwatch"),
		widget.NewSeparator(),
		displayBox(view.display),
		container.NewCenter(container.NewHBox(view.toggle, view.reset)),
	)
	view.Redraw()
	return view
}

// Content returns the tab content.
func (view *StopwatchView) Content() fyne.CanvasObject {
	return view.content
}

// Redraw renders the elapsed time and the toggle label.
func (view *StopwatchView) Redraw() {
	snapshot := view.state.Stopwatch()
	setText(view.display, snapshot.Display)

	label := "Start"
	if snapshot.Running {
		label = "Stop"
	}
	if view.toggle.Text != label {
		view.toggle.SetText(label)
	}
}

func (view *StopwatchView) handleToggle() {
	if view.state.Stopwatch().Running {
		view.state.StopStopwatch()
		view.logger.Debug("stopwatch stopped", "elapsed", view.state.Stopwatch().Elapsed)
	} else {
		view.state.StartStopwatch()
		view.logger.Debug("stopwatch started")
	}
	view.Redraw()
}

func (view *StopwatchView) handleReset() {
	view.state.ResetStopwatch()
	view.logger.Debug("stopwatch reset")
	view.Redraw()
}
