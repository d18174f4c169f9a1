package guard

import (
	"fmt"
	"strings"

	"github.com/borgmon/sleep-guard/pkg/logger"
)

// SubprocessMechanism keeps the machine awake by running a helper command.
// Sleep prevention lasts as long as the helper runs; Release terminates it
// and, when configured, runs a restore command afterwards.
type SubprocessMechanism struct {
	command     string
	args        []string
	restoreArgs []string
	spawn       Spawner
	run         Runner
}

// SubprocessOption customizes a SubprocessMechanism
type SubprocessOption func(*SubprocessMechanism)

// WithSpawner replaces ExecSpawner
func WithSpawner(s Spawner) SubprocessOption {
	return func(m *SubprocessMechanism) {
		m.spawn = s
	}
}

// WithRunner replaces ExecRunner for the restore command
func WithRunner(r Runner) SubprocessOption {
	return func(m *SubprocessMechanism) {
		m.run = r
	}
}

// WithRestore sets arguments for a command run after the helper is
// released, using the same executable
func WithRestore(args ...string) SubprocessOption {
	return func(m *SubprocessMechanism) {
		m.restoreArgs = args
	}
}

// NewSubprocessMechanism creates a mechanism that spawns command with args
func NewSubprocessMechanism(command string, args []string, opts ...SubprocessOption) *SubprocessMechanism {
	m := &SubprocessMechanism{
		command: command,
		args:    args,
		spawn:   ExecSpawner,
		run:     ExecRunner,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *SubprocessMechanism) Name() string {
	return m.command
}

// CommandLine returns the helper invocation as a single string
func (m *SubprocessMechanism) CommandLine() string {
	return strings.Join(append([]string{m.command}, m.args...), " ")
}

func (m *SubprocessMechanism) Engage() (Process, error) {
	p, err := m.spawn(m.command, m.args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, m.CommandLine(), err)
	}
	return p, nil
}

func (m *SubprocessMechanism) Release(p Process) error {
	var err error
	if p != nil {
		if terr := p.Terminate(); terr != nil {
			err = fmt.Errorf("%w: %s (pid %d): %w", ErrTerminateFailed, m.command, p.Pid(), terr)
		}
	}

	if len(m.restoreArgs) > 0 {
		if rerr := m.run(m.command, m.restoreArgs...); rerr != nil {
			logger.WithComponent("guard").
				WithField("command", m.command).
				WithError(rerr).
				Warn("Restore command failed")
		}
	}

	return err
}
