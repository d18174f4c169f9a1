//go:build linux

package guard

import (
	"os/exec"
	"syscall"
)

// configureHelper makes the kernel send SIGTERM to the helper when the app
// dies, so a crash never leaves the machine sleep-suppressed
func configureHelper(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}
}
