//go:build darwin

package guard

// caffeinate with no arguments holds an idle sleep assertion until killed
func platformMechanism() Mechanism {
	return NewSubprocessMechanism("caffeinate", nil)
}
