package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/sleep-guard/pkg/models"
)

const (
	keyAutoStart        = "auto_start"
	keyActivateOnLaunch = "activate_on_launch"
	keyPlaySound        = "play_sound"
	keyToggleHotkey     = "toggle_hotkey"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{prefs: app.Preferences()}
}

// Load loads configuration from preferences, falling back to defaults for
// keys that were never saved
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.DefaultConfig()

	return &models.Config{
		AutoStart:        cs.prefs.BoolWithFallback(keyAutoStart, defaults.AutoStart),
		ActivateOnLaunch: cs.prefs.BoolWithFallback(keyActivateOnLaunch, defaults.ActivateOnLaunch),
		PlaySound:        cs.prefs.BoolWithFallback(keyPlaySound, defaults.PlaySound),
		ToggleHotkey:     cs.prefs.BoolWithFallback(keyToggleHotkey, defaults.ToggleHotkey),
	}
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetBool(keyAutoStart, config.AutoStart)
	cs.prefs.SetBool(keyActivateOnLaunch, config.ActivateOnLaunch)
	cs.prefs.SetBool(keyPlaySound, config.PlaySound)
	cs.prefs.SetBool(keyToggleHotkey, config.ToggleHotkey)
}
