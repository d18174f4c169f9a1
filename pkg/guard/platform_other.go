//go:build !windows && !darwin && !linux

package guard

import "runtime"

func platformMechanism() Mechanism {
	return Unsupported(runtime.GOOS)
}
