package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

func (sg *SleepGuardApp) setupSystemTray() {
	sg.updateSystemTrayMenu()
}

func (sg *SleepGuardApp) updateSystemTrayMenu() {
	if desk, ok := sg.app.(desktop.App); ok {
		desk.SetSystemTrayMenu(sg.buildTrayMenu())
		desk.SetSystemTrayIcon(sg.trayIcon())
	}
}

func (sg *SleepGuardApp) buildTrayMenu() *fyne.Menu {
	active := sg.guard.Active()

	statusItem := fyne.NewMenuItem(statusText(active), nil)
	statusItem.Disabled = true

	toggleItem := fyne.NewMenuItem(buttonText(active), func() {
		sg.toggle()
	})
	toggleItem.Disabled = !sg.guard.Supported()

	quitItem := fyne.NewMenuItem("Quit", func() {
		sg.quit()
	})
	quitItem.IsQuit = true

	return fyne.NewMenu("Sleep Guard",
		statusItem,
		toggleItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Window", func() {
			sg.mainWindow.Show()
		}),
		fyne.NewMenuItem("Settings", func() {
			sg.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}

func (sg *SleepGuardApp) trayIcon() fyne.Resource {
	if sg.guard.Active() {
		return theme.VisibilityIcon()
	}
	return theme.VisibilityOffIcon()
}
