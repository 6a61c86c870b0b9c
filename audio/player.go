// Package audio plays short interaction cues through the system speaker.
//
// Playback runs on the speaker's own goroutine. Every operation is a no-op
// until Initialize succeeds, so a machine without an audio device simply
// stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	defaultSampleRate   = 48000
	defaultVolume       = 0.5
	speakerBufferLength = 100 * time.Millisecond

	toneAttack  = 5 * time.Millisecond
	toneRelease = 30 * time.Millisecond

	selectFrequencyHz = 660.0
	selectDuration    = 60 * time.Millisecond

	moveFrequencyLowHz  = 523.25 // C5
	moveFrequencyHighHz = 783.99 // G5
	moveNoteDuration    = 80 * time.Millisecond

	rejectFrequencyHz     = 110.0
	rejectDuration        = 150 * time.Millisecond
	rejectTailFrequencyHz = 82.41 // E2
	rejectTailDuration    = 90 * time.Millisecond
	rejectAmplitude       = 0.6
)

// Config controls playback
type Config struct {
	SampleRate int
	// Linear master volume, 0 to 1
	Volume float64
}

// DefaultConfig returns the playback defaults
func DefaultConfig() Config {
	return Config{SampleRate: defaultSampleRate, Volume: defaultVolume}
}

// Player mixes cue streamers into a single speaker stream
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	// Replaced in tests
	init   func(beep.SampleRate, int) error
	play   func(...beep.Streamer)
	lock   func()
	unlock func()
}

// NewPlayer creates an uninitialized player
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	cfg.Volume = min(max(cfg.Volume, 0), 1)
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		init:   speaker.Init,
		play:   speaker.Play,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize opens the speaker and starts the mixer
// A second call is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := p.init(rate, rate.N(speakerBufferLength)); err != nil {
		return err
	}

	p.play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences all pending cues
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()

	p.initialized = false
}

// Selected plays the selection cue
func (p *Player) Selected() {
	p.add(func() beep.Streamer { return SelectSound(p.cfg) })
}

// Moved plays the committed move cue
func (p *Player) Moved() {
	p.add(func() beep.Streamer { return MoveSound(p.cfg) })
}

// Rejected plays the illegal move cue
func (p *Player) Rejected() {
	p.add(func() beep.Streamer { return RejectSound(p.cfg) })
}

// Pending returns the number of cues still playing
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

func (p *Player) add(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := build()
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}
