package main

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/sleep-guard/pkg/guard"
	"github.com/borgmon/sleep-guard/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMechanism struct {
	engageErr error
	engaged   int
	released  int
}

func (m *fakeMechanism) Name() string { return "fake" }

func (m *fakeMechanism) Engage() (guard.Process, error) {
	if m.engageErr != nil {
		return nil, m.engageErr
	}
	m.engaged++
	return nil, nil
}

func (m *fakeMechanism) Release(guard.Process) error {
	m.released++
	return nil
}

func newTestSleepGuardApp(t *testing.T, m guard.Mechanism) *SleepGuardApp {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(func() { test.NewApp() })

	sg := newSleepGuardApp(a, guard.NewWithMechanism(m))
	sg.config.PlaySound = false
	sg.warmAudio = func() {}
	sg.mainWindow = NewMainWindow(a, sg.guard, sg.toggle)
	return sg
}

func TestMainWindowToggle(t *testing.T) {
	mech := &fakeMechanism{}
	sg := newTestSleepGuardApp(t, mech)
	mw := sg.mainWindow

	assert.Equal(t, "Sleep Prevention is OFF", mw.statusLabel.Text)
	assert.Equal(t, "Start Sleep Prevention", mw.toggleButton.Text)
	assert.Equal(t, "fake", mw.badge.Text)

	test.Tap(mw.toggleButton)
	assert.True(t, sg.guard.Active())
	assert.Equal(t, "Sleep Prevention is ON", mw.statusLabel.Text)
	assert.Equal(t, "Stop Sleep Prevention", mw.toggleButton.Text)
	assert.True(t, mw.badge.Active)
	assert.Contains(t, mw.badge.Text, "fake · since ")

	test.Tap(mw.toggleButton)
	assert.False(t, sg.guard.Active())
	assert.Equal(t, "Sleep Prevention is OFF", mw.statusLabel.Text)
	assert.Equal(t, "Start Sleep Prevention", mw.toggleButton.Text)

	assert.Equal(t, 1, mech.engaged)
	assert.Equal(t, 1, mech.released)
}

func TestBadgeTapToggles(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{})

	test.Tap(sg.mainWindow.badge)
	assert.True(t, sg.guard.Active())
}

func TestMainWindowUnsupported(t *testing.T) {
	sg := newTestSleepGuardApp(t, guard.Unsupported("plan9"))
	mw := sg.mainWindow

	assert.Contains(t, mw.statusLabel.Text, "not supported")
	assert.True(t, mw.toggleButton.Disabled())

	test.Tap(mw.toggleButton)
	assert.False(t, sg.guard.Active())
}

func TestToggleErrorStaysOff(t *testing.T) {
	mech := &fakeMechanism{engageErr: errors.New("caffeinate: executable file not found")}
	sg := newTestSleepGuardApp(t, mech)

	sg.toggle()

	assert.False(t, sg.guard.Active())
	assert.Equal(t, "Sleep Prevention is OFF", sg.mainWindow.statusLabel.Text)
}

func TestTrayMenuFollowsState(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{})

	menu := sg.buildTrayMenu()
	require.Len(t, menu.Items, 7)
	assert.Equal(t, "Sleep Prevention is OFF", menu.Items[0].Label)
	assert.True(t, menu.Items[0].Disabled)
	assert.Equal(t, "Start Sleep Prevention", menu.Items[1].Label)
	assert.True(t, menu.Items[6].IsQuit)
	assert.Equal(t, theme.VisibilityOffIcon(), sg.trayIcon())

	menu.Items[1].Action()
	assert.True(t, sg.guard.Active())

	menu = sg.buildTrayMenu()
	assert.Equal(t, "Sleep Prevention is ON", menu.Items[0].Label)
	assert.Equal(t, "Stop Sleep Prevention", menu.Items[1].Label)
	assert.Equal(t, theme.VisibilityIcon(), sg.trayIcon())
}

func TestTrayToggleDisabledWhenUnsupported(t *testing.T) {
	sg := newTestSleepGuardApp(t, guard.Unsupported("plan9"))

	menu := sg.buildTrayMenu()
	assert.True(t, menu.Items[1].Disabled)
}

func TestQuitReleasesGuard(t *testing.T) {
	mech := &fakeMechanism{}
	sg := newTestSleepGuardApp(t, mech)

	sg.toggle()
	require.True(t, sg.guard.Active())

	sg.quit()
	assert.False(t, sg.guard.Active())
	assert.Equal(t, 1, mech.released)
}

func TestApplyConfigPersists(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{})

	cfg := &models.Config{ActivateOnLaunch: true, PlaySound: false}
	sg.applyConfig(cfg)

	assert.True(t, cfg.Equal(sg.configStore.Load()))
	assert.Nil(t, sg.toggleHotkey)
}

func TestSettingsWindowSave(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{})

	var saved *models.Config
	sw := NewSettingsWindow(sg.app, sg.config, func(c *models.Config) { saved = c })
	var autostartCalls []bool
	sw.autostart = func(enable bool) error {
		autostartCalls = append(autostartCalls, enable)
		return nil
	}

	assert.True(t, sw.saveButton.Disabled())

	test.Tap(sw.activateOnLaunchCheck)
	assert.False(t, sw.saveButton.Disabled())

	test.Tap(sw.saveButton)
	require.NotNil(t, saved)
	assert.True(t, saved.ActivateOnLaunch)
	assert.Empty(t, autostartCalls, "autostart untouched when unchanged")
	assert.Equal(t, savedMessage, sw.saveStatusLabel.Text)
	assert.True(t, sw.saveButton.Disabled())

	test.Tap(sw.autoStartCheck)
	test.Tap(sw.saveButton)
	assert.Equal(t, []bool{true}, autostartCalls)
	assert.True(t, saved.AutoStart)
}

func TestSettingsWindowAutostartFailure(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{})

	saved := false
	sw := NewSettingsWindow(sg.app, sg.config, func(*models.Config) { saved = true })
	sw.autostart = func(bool) error { return errors.New("permission denied") }

	test.Tap(sw.autoStartCheck)
	test.Tap(sw.saveButton)

	assert.False(t, saved)
	assert.Equal(t, "Error: Failed to set autostart", sw.saveStatusLabel.Text)
	assert.False(t, sw.saveButton.Disabled())
}

func TestActivateOnLaunch(t *testing.T) {
	mech := &fakeMechanism{}
	sg := newTestSleepGuardApp(t, mech)
	sg.config.ActivateOnLaunch = true

	sg.activateOnLaunch()

	assert.True(t, sg.guard.Active())
	assert.Equal(t, 1, mech.engaged)
	assert.Equal(t, "Sleep Prevention is ON", sg.mainWindow.statusLabel.Text)
	assert.Equal(t, "Stop Sleep Prevention", sg.mainWindow.toggleButton.Text)
}

func TestActivateOnLaunchOff(t *testing.T) {
	mech := &fakeMechanism{}
	sg := newTestSleepGuardApp(t, mech)

	sg.activateOnLaunch()

	assert.False(t, sg.guard.Active())
	assert.Zero(t, mech.engaged)
}

func TestActivateOnLaunchFailureStaysOff(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{engageErr: errors.New("xset: unable to open display")})
	sg.config.ActivateOnLaunch = true

	sg.activateOnLaunch()

	assert.False(t, sg.guard.Active())
	assert.Equal(t, "Sleep Prevention is OFF", sg.mainWindow.statusLabel.Text)
}

func TestActivateOnLaunchUnsupported(t *testing.T) {
	sg := newTestSleepGuardApp(t, guard.Unsupported("plan9"))
	sg.config.ActivateOnLaunch = true

	assert.NotPanics(t, sg.activateOnLaunch)
	assert.False(t, sg.guard.Active())
}

func TestAudioWarmedOnlyWhenSoundEnabled(t *testing.T) {
	sg := newTestSleepGuardApp(t, &fakeMechanism{})
	warmed := 0
	sg.warmAudio = func() { warmed++ }

	sg.prepareAudio()
	assert.Zero(t, warmed)

	sg.applyConfig(&models.Config{PlaySound: true})
	assert.Equal(t, 1, warmed)

	sg.config.PlaySound = true
	sg.prepareAudio()
	assert.Equal(t, 2, warmed)
}
