// Package guard turns the operating system's idle and display sleep
// suppression on and off.
//
// A Guard holds the on/off state and, for mechanisms that need one, the
// helper process that keeps the machine awake. The mechanism is chosen once
// at build time for the target OS: execution state flags on Windows,
// caffeinate on macOS and xset on Linux.
package guard

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/borgmon/sleep-guard/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Guard toggles sleep prevention. The zero value is not usable; create one
// with New or NewWithMechanism. Call Disable before the process exits.
type Guard struct {
	mu sync.Mutex

	mech    Mechanism
	active  bool
	handle  Process
	session string
	since   time.Time
	log     *logrus.Entry
}

// New returns an inactive Guard using the mechanism for the current OS
func New() *Guard {
	return NewWithMechanism(platformMechanism())
}

// NewWithMechanism returns an inactive Guard using m
func NewWithMechanism(m Mechanism) *Guard {
	return &Guard{
		mech: m,
		log:  logger.WithComponent("guard").WithField("mechanism", m.Name()),
	}
}

// Enable turns sleep prevention on. It does nothing if the guard is
// already active. On failure the guard stays inactive.
func (g *Guard) Enable() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enableLocked()
}

// Disable turns sleep prevention off. It does nothing if the guard is
// already inactive. A helper process that can no longer be terminated is
// logged and otherwise ignored, so Disable always leaves the guard inactive.
func (g *Guard) Disable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disableLocked()
}

// Toggle flips the state and returns the new one
func (g *Guard) Toggle() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active {
		g.disableLocked()
		return false, nil
	}
	if err := g.enableLocked(); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Guard) enableLocked() error {
	if g.active {
		g.log.WithField("session", g.session).Debug("Sleep prevention already enabled")
		return nil
	}

	handle, err := g.mech.Engage()
	if err != nil {
		g.log.WithError(err).Error("Failed to enable sleep prevention")
		return err
	}

	g.active = true
	g.handle = handle
	g.session = uuid.NewString()
	g.since = time.Now()

	entry := g.log.WithField("session", g.session)
	if handle != nil {
		entry = entry.WithField("pid", handle.Pid())
	}
	entry.Info("Sleep prevention enabled")

	return nil
}

func (g *Guard) disableLocked() {
	if !g.active {
		return
	}

	entry := g.log.WithField("session", g.session)
	if err := g.mech.Release(g.handle); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			entry.WithError(err).Debug("Helper process already exited")
		} else {
			entry.WithError(err).Warn("Helper process could not be terminated, treating as disabled")
		}
	}

	g.active = false
	g.handle = nil
	g.session = ""
	g.since = time.Time{}

	entry.Info("Sleep prevention disabled")
}

// Active reports whether sleep prevention is on
func (g *Guard) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Supported reports whether the current OS has a sleep prevention mechanism
func (g *Guard) Supported() bool {
	_, unsupported := g.mech.(unsupportedMechanism)
	return !unsupported
}

// Mechanism returns the name of the mechanism in use
func (g *Guard) Mechanism() string {
	return g.mech.Name()
}

// Session returns the ID of the current activation, or "" when inactive
func (g *Guard) Session() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// Since returns when the current activation started, or the zero time
// when inactive
func (g *Guard) Since() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.since
}
