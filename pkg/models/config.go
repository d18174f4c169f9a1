package models

// Config holds application preferences. The guard's on/off state is never
// persisted; ActivateOnLaunch is the only way to start active.
type Config struct {
	AutoStart        bool `json:"auto_start"`         // launch at login
	ActivateOnLaunch bool `json:"activate_on_launch"` // enable sleep prevention at startup
	PlaySound        bool `json:"play_sound"`         // chime on toggle
	ToggleHotkey     bool `json:"toggle_hotkey"`      // global Ctrl+Shift+K toggle
}

// DefaultConfig returns the preferences used on first launch
func DefaultConfig() *Config {
	return &Config{
		AutoStart:        false,
		ActivateOnLaunch: false,
		PlaySound:        true,
		ToggleHotkey:     false,
	}
}

// Equal reports whether two configs hold the same preferences
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}
