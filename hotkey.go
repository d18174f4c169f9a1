package main

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/borgmon/sleep-guard/pkg/logger"
	"golang.design/x/hotkey"
)

// Ctrl+Shift+K toggles sleep prevention from anywhere
var toggleModifiers = []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}

const toggleKey = hotkey.KeyK

type toggleHotkey struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	stop    chan struct{}
	stopped bool
}

// startToggleHotkey registers the global hotkey in the background and calls
// onPress on the UI thread for every key press
func startToggleHotkey(onPress func()) *toggleHotkey {
	th := &toggleHotkey{stop: make(chan struct{})}
	go th.listen(onPress)
	return th
}

func (th *toggleHotkey) listen(onPress func()) {
	log := logger.WithComponent("hotkey")

	hk := hotkey.New(toggleModifiers, toggleKey)
	if err := hk.Register(); err != nil {
		log.WithError(err).Warn("Failed to register toggle hotkey")
		return
	}

	th.mu.Lock()
	if th.stopped {
		th.mu.Unlock()
		hk.Unregister()
		return
	}
	th.hk = hk
	th.mu.Unlock()

	log.WithField("hotkey", "Ctrl+Shift+K").Info("Toggle hotkey registered")

	for {
		select {
		case <-th.stop:
			return
		case <-hk.Keydown():
			fyne.Do(onPress)
		}
	}
}

// Stop unregisters the hotkey. Safe to call more than once.
func (th *toggleHotkey) Stop() {
	th.mu.Lock()
	defer th.mu.Unlock()

	if th.stopped {
		return
	}
	th.stopped = true
	close(th.stop)

	if th.hk != nil {
		if err := th.hk.Unregister(); err != nil {
			logger.WithComponent("hotkey").WithError(err).Warn("Failed to unregister toggle hotkey")
		}
	}
}
