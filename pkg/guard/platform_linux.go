//go:build linux

package guard

// xset turns off the X11 screensaver and DPMS; the restore arguments turn
// them back on when the guard is disabled
func platformMechanism() Mechanism {
	return NewSubprocessMechanism("xset", []string{"s", "off", "-dpms"},
		WithRestore("s", "on", "+dpms"))
}
