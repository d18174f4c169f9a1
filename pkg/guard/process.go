package guard

import (
	"os"
	"os/exec"
	"syscall"
	"time"
)

// terminateTimeout bounds how long Terminate waits for the helper to exit
// after SIGTERM before killing it
const terminateTimeout = 2 * time.Second

// startupGrace is how long ExecSpawner watches a fresh helper for an
// immediate failing exit
const startupGrace = 300 * time.Millisecond

// Process is a handle to a running helper process
type Process interface {
	Pid() int

	// Terminate asks the process to exit and waits for it. It returns an
	// error if the process had already exited or could not be signalled.
	Terminate() error
}

// Spawner starts a helper process. ExecSpawner is the real implementation;
// tests substitute their own.
type Spawner func(name string, args ...string) (Process, error)

// Runner runs a short-lived command to completion
type Runner func(name string, args ...string) error

type execProcess struct {
	cmd     *exec.Cmd
	done    chan struct{}
	waitErr error // valid once done is closed
}

// ExecSpawner looks name up in PATH and starts it with args. The child is
// reaped in the background so it never lingers as a zombie. A helper that
// exits with a failure status within startupGrace is reported as an error;
// one that exits cleanly or keeps running is returned as a Process.
func ExecSpawner(name string, args ...string) (Process, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(path, args...)
	configureHelper(cmd)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &execProcess{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		p.waitErr = cmd.Wait()
		close(p.done)
	}()

	select {
	case <-p.done:
		if p.waitErr != nil {
			return nil, p.waitErr
		}
	case <-time.After(startupGrace):
	}

	return p, nil
}

// ExecRunner runs name with args and waits for it to finish
func ExecRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Terminate() error {
	select {
	case <-p.done:
		return os.ErrProcessDone
	default:
	}

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return err
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(terminateTimeout):
		return p.cmd.Process.Kill()
	}
}
