//go:build !linux

package guard

import "os/exec"

func configureHelper(cmd *exec.Cmd) {}
