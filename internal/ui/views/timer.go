package views

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"cccclock/internal/core/countdown"
	"cccclock/internal/core/tabs"
)

// TimerView shows the countdown with its setup controls.
type TimerView struct {
	state   *tabs.Container
	logger  *slog.Logger
	content fyne.CanvasObject

	setup        fyne.CanvasObject
	minutes      *widget.Slider
	seconds      *widget.Slider
	minutesLabel *widget.Label
	secondsLabel *widget.Label
	start        *widget.Button

	display *canvas.Text
	stop    *widget.Button
	notice  *canvas.Text
}

// NewTimerView creates the timer tab bound to state.
func NewTimerView(state *tabs.Container, logger *slog.Logger) *TimerView {
	snapshot := state.Timer()
	view := &TimerView{
		state:        state,
		logger:       logger,
		minutes:      newPartSlider(snapshot.Minutes),
		seconds:      newPartSlider(snapshot.Seconds),
		minutesLabel: widget.NewLabel(formatPart(snapshot.Minutes)),
		secondsLabel: widget.NewLabel(formatPart(snapshot.Seconds)),
		display:      newLargeText(snapshot.Display),
	}
	view.minutes.OnChanged = func(float64) { view.handleConfigure() }
	view.seconds.OnChanged = func(float64) { view.handleConfigure() }
	view.start = widget.NewButton("Start Timer", view.handleStart)
	view.stop = widget.NewButton("Stop Timer", view.handleStop)

	view.notice = canvas.NewText("⏰ Time's up!", theme.Color(theme.ColorNameForeground))
	view.notice.Alignment = fyne.TextAlignCenter
	view.notice.TextStyle = fyne.TextStyle{Bold: true}
	view.notice.TextSize = noticeTextSize

	view.setup = container.NewVBox(
		container.NewGridWithColumns(3, widget.NewLabel("Minutes:"), view.minutes, view.minutesLabel),
		container.NewGridWithColumns(3, widget.NewLabel("Seconds:"), view.seconds, view.secondsLabel),
		container.NewCenter(view.start),
	)

	view.content = container.NewVBox(
		newHeading("Timer"),
		widget.NewSeparator(),
		view.setup,
		displayBox(view.display),
		container.NewCenter(view.stop),
		view.notice,
	)
	view.Redraw()
	return view
}

// Content returns the tab content.
func (view *TimerView) Content() fyne.CanvasObject {
	return view.content
}

// Redraw renders the remaining time and shows the controls valid for the phase.
func (view *TimerView) Redraw() {
	snapshot := view.state.Timer()
	idle := snapshot.Phase == countdown.PhaseIdle

	setVisible(view.setup, idle)
	setVisible(view.stop, !idle)
	setVisible(view.notice, snapshot.Finished())

	setText(view.display, snapshot.Display)
	displayColor := theme.Color(theme.ColorNameForeground)
	if snapshot.Finished() {
		displayColor = finishedColor
	}
	if view.display.Color != displayColor {
		view.display.Color = displayColor
		view.display.Refresh()
	}
}

func (view *TimerView) handleConfigure() {
	minutes := int(view.minutes.Value)
	seconds := int(view.seconds.Value)
	if !view.state.ConfigureTimer(minutes, seconds) {
		return
	}
	snapshot := view.state.Timer()
	view.minutesLabel.SetText(formatPart(snapshot.Minutes))
	view.secondsLabel.SetText(formatPart(snapshot.Seconds))
}

func (view *TimerView) handleStart() {
	view.state.StartTimer()
	view.logger.Info("timer started", "target", view.state.Timer().Remaining)
	view.Redraw()
}

func (view *TimerView) handleStop() {
	remaining := view.state.Timer().Remaining
	view.state.StopTimer()
	view.logger.Info("timer stopped", "remaining", remaining)
	view.Redraw()
}

func newPartSlider(value int) *widget.Slider {
	slider := widget.NewSlider(0, countdown.MaxPart)
	slider.Step = 1
	slider.Value = float64(value)
	return slider
}

func formatPart(value int) string {
	return fmt.Sprintf("%02d", value)
}
