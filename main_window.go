package main

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/sleep-guard/pkg/guard"
	"github.com/borgmon/sleep-guard/pkg/platform"
	"github.com/borgmon/sleep-guard/pkg/ui/components"
)

type MainWindow struct {
	window   fyne.Window
	guard    *guard.Guard
	onToggle func()

	statusLabel  *widget.Label
	toggleButton *widget.Button
	badge        *components.StatusBadge
}

func NewMainWindow(app fyne.App, g *guard.Guard, onToggle func()) *MainWindow {
	mw := &MainWindow{
		guard:    g,
		onToggle: onToggle,
	}

	mw.window = app.NewWindow("Sleep Prevention App")
	mw.buildUI()
	mw.Update()

	return mw
}

func (mw *MainWindow) buildUI() {
	mw.statusLabel = widget.NewLabel("")
	mw.statusLabel.Alignment = fyne.TextAlignCenter
	mw.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	mw.toggleButton = widget.NewButton("", mw.onToggle)
	mw.toggleButton.Importance = widget.HighImportance

	mw.badge = components.NewStatusBadge("", mw.onToggle)

	content := container.NewVBox(
		mw.statusLabel,
		mw.toggleButton,
		widget.NewSeparator(),
		container.NewCenter(mw.badge),
	)

	mw.window.SetContent(container.NewPadded(content))
	mw.window.Resize(fyne.NewSize(300, 150))
	mw.window.CenterOnScreen()

	// Closing the window keeps the app running in the system tray
	mw.window.SetCloseIntercept(func() {
		mw.window.Hide()
	})
}

// Update reflects the guard's state in the label, button and badge
func (mw *MainWindow) Update() {
	if !mw.guard.Supported() {
		mw.statusLabel.SetText(fmt.Sprintf("Sleep prevention is not supported on %s", runtime.GOOS))
		mw.toggleButton.SetText(buttonText(false))
		mw.toggleButton.Disable()
		mw.badge.SetState(false, mw.guard.Mechanism())
		return
	}

	active := mw.guard.Active()
	mw.statusLabel.SetText(statusText(active))
	mw.toggleButton.SetText(buttonText(active))
	mw.toggleButton.Enable()
	mw.badge.SetState(active, badgeText(mw.guard))
}

func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.window.RequestFocus()
	platform.BringToFront()
}

func statusText(active bool) string {
	if active {
		return "Sleep Prevention is ON"
	}
	return "Sleep Prevention is OFF"
}

func buttonText(active bool) string {
	if active {
		return "Stop Sleep Prevention"
	}
	return "Start Sleep Prevention"
}

func badgeText(g *guard.Guard) string {
	since := g.Since()
	if since.IsZero() {
		return g.Mechanism()
	}
	return fmt.Sprintf("%s · since %s", g.Mechanism(), since.Format("3:04 PM"))
}
