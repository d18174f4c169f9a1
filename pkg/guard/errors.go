package guard

import "errors"

var (
	// ErrUnsupportedPlatform is returned by Enable when the current OS has no
	// known sleep prevention mechanism
	ErrUnsupportedPlatform = errors.New("sleep prevention is not supported on this platform")

	// ErrSpawnFailed is returned by Enable when the helper process could not be started
	ErrSpawnFailed = errors.New("failed to start helper process")

	// ErrTerminateFailed is reported when the helper process could not be
	// stopped, usually because it already exited. Disable logs it and moves on.
	ErrTerminateFailed = errors.New("failed to terminate helper process")
)
