package guard

import "fmt"

// Mechanism engages and releases one OS facility that keeps the machine awake
type Mechanism interface {
	// Name returns a human readable name for logs and the status badge
	Name() string

	// Engage turns sleep prevention on. Mechanisms that do not need a
	// helper process return a nil Process.
	Engage() (Process, error)

	// Release turns sleep prevention off. p is the Process returned by the
	// matching Engage call and may be nil.
	Release(p Process) error
}

type unsupportedMechanism struct {
	platform string
}

// Unsupported returns the placeholder mechanism used on operating systems
// without a known sleep prevention facility. Engage always fails with
// ErrUnsupportedPlatform.
func Unsupported(platform string) Mechanism {
	return unsupportedMechanism{platform: platform}
}

func (u unsupportedMechanism) Name() string {
	return fmt.Sprintf("unsupported (%s)", u.platform)
}

func (u unsupportedMechanism) Engage() (Process, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, u.platform)
}

func (u unsupportedMechanism) Release(Process) error {
	return nil
}
