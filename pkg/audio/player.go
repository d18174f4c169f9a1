package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/borgmon/sleep-guard/pkg/logger"
	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton. oto allows only one context per process.
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player manages playback of a chime with cancellation support
type Player struct {
	stopChan chan struct{}
	done     chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// InitAudioContext initializes the global audio context once
func InitAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			logger.WithComponent("audio").WithError(err).Warn("Failed to initialize audio context")
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		logger.WithComponent("audio").Debug("Audio context initialized")
	})
}

// WarmUp initializes the audio context in the background. Play waits for
// the same initialization, so calling WarmUp early keeps it off the caller.
func WarmUp() {
	go InitAudioContext()
}

// Play starts playing the chime and returns immediately. It returns nil if
// no audio device is available.
func Play(c Chime) *Player {
	InitAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		logger.WithComponent("audio").Debug("Audio context not ready, skipping chime")
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}

	p.mu.Lock()
	p.player = globalAudioCtx.NewPlayer(bytes.NewReader(c.PCM()))
	p.mu.Unlock()

	go p.playOnce()

	return p
}

func (p *Player) playOnce() {
	defer close(p.done)

	p.player.Play()

	for p.player.IsPlaying() {
		select {
		case <-p.stopChan:
			p.player.Pause()
			p.closePlayer()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.closePlayer()
}

func (p *Player) closePlayer() {
	if err := p.player.Close(); err != nil {
		logger.WithComponent("audio").WithError(err).Warn("Failed to close audio player")
	}
}

// Stop stops the playback. Safe to call more than once and on a nil Player.
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)
	}
}

// Wait blocks until playback has finished or was stopped
func (p *Player) Wait() {
	if p == nil {
		return
	}
	<-p.done
}
