package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpeaker swaps the device hooks of p
type fakeSpeaker struct {
	initErr error
	inits   int
	played  []beep.Streamer
	locked  int
}

func (f *fakeSpeaker) attach(p *Player) {
	p.init = func(beep.SampleRate, int) error {
		f.inits++
		return f.initErr
	}
	p.play = func(s ...beep.Streamer) { f.played = append(f.played, s...) }
	p.lock = func() { f.locked++ }
	p.unlock = func() { f.locked-- }
}

// drain streams s to completion and returns the sample count and peak level
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	f := &fakeSpeaker{}
	f.attach(p)

	p.Selected()
	p.Moved()
	p.Rejected()
	p.Cleanup()
	assert.Zero(t, p.Pending())
	assert.Zero(t, f.inits)
}

func TestPlayerInitFailureDegrades(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	f := &fakeSpeaker{initErr: errors.New("no device")}
	f.attach(p)

	assert.Error(t, p.Initialize())
	assert.Empty(t, f.played)

	p.Moved()
	assert.Zero(t, p.Pending())
}

func TestPlayerQueuesCues(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	f := &fakeSpeaker{}
	f.attach(p)

	require.NoError(t, p.Initialize())
	require.NoError(t, p.Initialize())
	assert.Equal(t, 1, f.inits, "second init is a no-op")
	require.Len(t, f.played, 1)
	assert.Same(t, p.mixer, f.played[0])

	p.Selected()
	p.Moved()
	p.Rejected()
	assert.Equal(t, 3, p.Pending())
	assert.Zero(t, f.locked, "every lock is released")

	p.Cleanup()
	assert.Zero(t, p.Pending())
	p.Selected()
	assert.Zero(t, p.mixer.Len(), "cleanup stops new cues")
}

func TestNewPlayerClampsConfig(t *testing.T) {
	p := NewPlayer(Config{SampleRate: 0, Volume: 3})
	assert.Equal(t, defaultSampleRate, p.cfg.SampleRate)
	assert.Equal(t, 1.0, p.cfg.Volume)

	p = NewPlayer(Config{SampleRate: 8000, Volume: -1})
	assert.Equal(t, 8000, p.cfg.SampleRate)
	assert.Zero(t, p.cfg.Volume)
}

func TestCueLengths(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	n, peak := drain(t, SelectSound(cfg))
	assert.Equal(t, rate.N(selectDuration), n)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 1.0)

	n, _ = drain(t, MoveSound(cfg))
	assert.Equal(t, 2*rate.N(moveNoteDuration), n)

	n, peak = drain(t, RejectSound(cfg))
	assert.Equal(t, rate.N(rejectDuration)+rate.N(rejectTailDuration), n, "saw then square")
	assert.LessOrEqual(t, peak, 1.0)
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, SelectSound(Config{SampleRate: defaultSampleRate}))
	assert.Zero(t, peak)
}

func TestOscillatorShapes(t *testing.T) {
	rate := beep.SampleRate(44100)
	buf := make([][2]float64, 64)

	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, rate)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for _, s := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}

	osc = NewOscillator(440, 10*time.Millisecond, WaveSaw, rate)
	n, _ = osc.Stream(buf)
	for _, s := range buf[:n] {
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Less(t, s[0], 1.0)
		assert.Equal(t, s[0], s[1])
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	require.Equal(t, 100, n)
	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.5, buf[5][0], 1e-9)
	assert.Equal(t, 1.0, buf[50][0])
	assert.InDelta(t, 0.1, buf[99][0], 1e-9)
}
