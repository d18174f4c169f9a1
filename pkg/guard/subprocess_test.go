package guard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnCall struct {
	name string
	args []string
}

func recordingSpawner(calls *[]spawnCall, procs *[]*fakeProcess) Spawner {
	return func(name string, args ...string) (Process, error) {
		*calls = append(*calls, spawnCall{name: name, args: args})
		p := &fakeProcess{pid: 42}
		*procs = append(*procs, p)
		return p, nil
	}
}

func TestSubprocessMechanismSpawnsCommand(t *testing.T) {
	var calls []spawnCall
	var procs []*fakeProcess
	m := NewSubprocessMechanism("xset", []string{"s", "off", "-dpms"},
		WithSpawner(recordingSpawner(&calls, &procs)))

	p, err := m.Engage()
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "xset", calls[0].name)
	assert.Equal(t, []string{"s", "off", "-dpms"}, calls[0].args)
	assert.Equal(t, 42, p.Pid())
	assert.Equal(t, "xset", m.Name())
	assert.Equal(t, "xset s off -dpms", m.CommandLine())
}

func TestSubprocessMechanismNoArgs(t *testing.T) {
	var calls []spawnCall
	var procs []*fakeProcess
	m := NewSubprocessMechanism("caffeinate", nil, WithSpawner(recordingSpawner(&calls, &procs)))

	_, err := m.Engage()
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].args)
	assert.Equal(t, "caffeinate", m.CommandLine())
}

func TestSubprocessMechanismSpawnError(t *testing.T) {
	notFound := errors.New("executable file not found in $PATH")
	m := NewSubprocessMechanism("caffeinate", nil, WithSpawner(func(string, ...string) (Process, error) {
		return nil, notFound
	}))

	p, err := m.Engage()
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrSpawnFailed)
	assert.ErrorIs(t, err, notFound)
}

func TestSubprocessMechanismReleaseTerminatesAndRestores(t *testing.T) {
	var calls []spawnCall
	var procs []*fakeProcess
	var restored [][]string
	m := NewSubprocessMechanism("xset", []string{"s", "off", "-dpms"},
		WithSpawner(recordingSpawner(&calls, &procs)),
		WithRestore("s", "on", "+dpms"),
		WithRunner(func(name string, args ...string) error {
			assert.Equal(t, "xset", name)
			restored = append(restored, args)
			return nil
		}))

	p, err := m.Engage()
	require.NoError(t, err)
	require.NoError(t, m.Release(p))

	assert.Equal(t, 1, procs[0].terminations)
	assert.Equal(t, [][]string{{"s", "on", "+dpms"}}, restored)
}

func TestSubprocessMechanismReleaseReportsDeadProcess(t *testing.T) {
	restoreRan := false
	m := NewSubprocessMechanism("xset", nil,
		WithRestore("s", "on", "+dpms"),
		WithRunner(func(string, ...string) error {
			restoreRan = true
			return errors.New("cannot open display")
		}))

	err := m.Release(&fakeProcess{pid: 7, err: os.ErrProcessDone})
	assert.ErrorIs(t, err, ErrTerminateFailed)
	assert.ErrorIs(t, err, os.ErrProcessDone)
	assert.True(t, restoreRan, "restore must run even when the helper already exited")
}

func TestSubprocessMechanismReleaseNilHandle(t *testing.T) {
	m := NewSubprocessMechanism("caffeinate", nil)
	assert.NoError(t, m.Release(nil))
}

func TestSubprocessMechanismHelperFailsOnStart(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs the unix false utility")
	}

	g := NewWithMechanism(NewSubprocessMechanism("false", nil))

	err := g.Enable()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawnFailed)

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)

	assert.False(t, g.Active())
	assert.Nil(t, g.handle)
	assert.Empty(t, g.Session())
}
