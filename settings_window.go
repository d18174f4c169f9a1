package main

import (
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/sleep-guard/pkg/logger"
	"github.com/borgmon/sleep-guard/pkg/models"
)

const savedMessage = "Settings saved"

type SettingsWindow struct {
	window fyne.Window
	app    fyne.App
	config *models.Config
	onSave func(*models.Config)

	// autostart is swapped out in tests
	autostart func(enable bool) error

	autoStartCheck        *widget.Check
	activateOnLaunchCheck *widget.Check
	playSoundCheck        *widget.Check
	toggleHotkeyCheck     *widget.Check

	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:       app,
		config:    config,
		onSave:    onSave,
		autostart: setupAutostart,
	}

	sw.window = app.NewWindow("Sleep Guard - Settings")
	sw.buildUI()

	return sw
}

func (sg *SleepGuardApp) showSettingsWindow() {
	if sg.settingsWindow != nil {
		sg.settingsWindow.Show()
		return
	}

	sg.settingsWindow = NewSettingsWindow(sg.app, sg.config, sg.applyConfig)
	sg.settingsWindow.window.SetOnClosed(func() {
		sg.settingsWindow = nil
	})
	sg.settingsWindow.Show()
}

func (sw *SettingsWindow) buildUI() {
	onChange := func(bool) { sw.updateSaveButtonState() }

	sw.autoStartCheck = widget.NewCheck("Launch Sleep Guard when you log in", nil)
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)
	sw.autoStartCheck.OnChanged = onChange

	sw.activateOnLaunchCheck = widget.NewCheck("Start sleep prevention when the app opens", nil)
	sw.activateOnLaunchCheck.SetChecked(sw.config.ActivateOnLaunch)
	sw.activateOnLaunchCheck.OnChanged = onChange

	sw.playSoundCheck = widget.NewCheck("Play a sound when toggling", nil)
	sw.playSoundCheck.SetChecked(sw.config.PlaySound)
	sw.playSoundCheck.OnChanged = onChange

	sw.toggleHotkeyCheck = widget.NewCheck("Toggle with Ctrl+Shift+K from any app", nil)
	sw.toggleHotkeyCheck.SetChecked(sw.config.ToggleHotkey)
	sw.toggleHotkeyCheck.OnChanged = onChange

	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(sw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		openFileManager(sw.app.Storage().RootURI().Path())
	})

	storageHelp := widget.NewLabel("Preferences are stored here")
	storageHelp.Wrapping = fyne.TextWrapWord

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Auto Start:"), sw.autoStartCheck,
		widget.NewLabel("On Launch:"), sw.activateOnLaunchCheck,
		widget.NewLabel("Sound:"), sw.playSoundCheck,
		widget.NewLabel("Hotkey:"), sw.toggleHotkeyCheck,
		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		container.NewBorder(nil, container.NewPadded(openStorageButton), nil, nil, storageURIEntry),
	)

	sw.saveStatusLabel = widget.NewLabel("")

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable()

	closeButton := widget.NewButton("Close", sw.handleClose)

	buttonRow := container.NewBorder(nil, nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		container.NewVBox(widget.NewLabel("General Settings"), widget.NewSeparator(), form),
	)

	sw.window.SetContent(container.NewPadded(content))
	sw.window.Resize(fyne.NewSize(520, 340))
	sw.window.CenterOnScreen()
	sw.window.SetCloseIntercept(sw.handleClose)
	sw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			sw.handleClose()
		}
	})
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
	sw.window.RequestFocus()
}

func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	return &models.Config{
		AutoStart:        sw.autoStartCheck.Checked,
		ActivateOnLaunch: sw.activateOnLaunchCheck.Checked,
		PlaySound:        sw.playSoundCheck.Checked,
		ToggleHotkey:     sw.toggleHotkeyCheck.Checked,
	}
}

func (sw *SettingsWindow) save() {
	newConfig := sw.getConfigFromUI()

	if newConfig.AutoStart != sw.config.AutoStart {
		if err := sw.autostart(newConfig.AutoStart); err != nil {
			sw.saveStatusLabel.SetText("Error: Failed to set autostart")
			sw.saveStatusLabel.Importance = widget.DangerImportance
			sw.saveStatusLabel.Refresh()
			return
		}
	}

	sw.config = newConfig
	if sw.onSave != nil {
		sw.onSave(newConfig)
	}

	sw.saveStatusLabel.SetText(savedMessage)
	sw.saveStatusLabel.Importance = widget.SuccessImportance
	sw.saveStatusLabel.Refresh()
	sw.updateSaveButtonState()
}

func (sw *SettingsWindow) hasUnsavedChanges() bool {
	return !sw.getConfigFromUI().Equal(sw.config)
}

func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasUnsavedChanges() {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

func (sw *SettingsWindow) handleClose() {
	if !sw.hasUnsavedChanges() {
		sw.window.Close()
		return
	}

	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}

func openFileManager(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		logger.WithComponent("settings").Warnf("Unsupported OS: %s", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		logger.WithComponent("settings").WithError(err).Warn("Error opening file manager")
	}
}
