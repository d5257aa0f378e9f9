// Package views renders the clock, stopwatch and timer tabs.
package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	largeTextSize  = 48
	noticeTextSize = 24
	displayWidth   = 300
	displayHeight  = 80
)

var finishedColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// View is one tab's content.
type View interface {
	// Content returns the root object placed in the tab.
	Content() fyne.CanvasObject
	// Redraw re-renders the widgets from the current state.
	Redraw()
}

func newHeading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func newLargeText(text string) *canvas.Text {
	large := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	large.Alignment = fyne.TextAlignCenter
	large.TextStyle = fyne.TextStyle{Bold: true}
	large.TextSize = largeTextSize
	return large
}

// displayBox reserves the fixed display area the large text is centred in.
func displayBox(object fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(displayWidth, displayHeight))
	return container.NewStack(spacer, container.NewCenter(object))
}

func newGap(height float32) fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, height))
	return gap
}

func setText(text *canvas.Text, value string) {
	if text.Text == value {
		return
	}
	text.Text = value
	text.Refresh()
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible == object.Visible() {
		return
	}
	if visible {
		object.Show()
		return
	}
	object.Hide()
}
