//go:build windows

package guard

import "golang.org/x/sys/windows"

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
)

// executionStateMechanism sets the thread execution state flags. The state
// belongs to the calling OS thread, so Engage and Release must both run on
// the UI thread.
type executionStateMechanism struct{}

func platformMechanism() Mechanism {
	return executionStateMechanism{}
}

func (executionStateMechanism) Name() string {
	return "SetThreadExecutionState"
}

func (executionStateMechanism) Engage() (Process, error) {
	setThreadExecutionState(esContinuous | esSystemRequired | esDisplayRequired)
	return nil, nil
}

// Release clears the system and display bits. It does not check whether
// someone else in this process set them.
func (executionStateMechanism) Release(Process) error {
	setThreadExecutionState(esContinuous)
	return nil
}

// The previous state returned by the API carries no useful failure signal
func setThreadExecutionState(flags uint32) {
	procSetThreadExecutionState.Call(uintptr(flags))
}
