// Package audio plays Charge's synthesised sound cues through the system
// speaker. When no audio device is available the player stays silent.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/charge/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// DefaultVolume is the master volume of a fresh install.
const DefaultVolume = 0.5

// Player implements core.SoundPlayer on top of a beep mixer.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	logger *log.Logger

	ready atomic.Bool
	muted atomic.Bool
}

// New creates a player. Call Init before the first cue.
func New(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.SetVolume(volume)
	return p
}

// Init opens the speaker. On failure the player logs once and stays
// silent; the error is returned for callers that care.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready.Load() {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		p.logger.Warn("audio unavailable, running silent", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.ready.Store(true)
	return nil
}

// Play implements core.SoundPlayer. It never blocks on audio output.
func (p *Player) Play(s core.Sound) {
	if !p.ready.Load() || p.muted.Load() {
		return
	}
	vol := p.Volume()
	if vol <= 0 {
		return
	}
	st, err := cueStreamer(sampleRate, s, vol)
	if err != nil {
		p.logger.Debug("build cue", "sound", s, "err", err)
		return
	}
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = core.ClampF(v, 0, 1)
	p.mu.Unlock()
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetMuted silences all cues without touching the volume.
func (p *Player) SetMuted(m bool) {
	p.muted.Store(m)
}

// Muted reports whether cues are silenced.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Close stops every playing cue and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready.Load() {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready.Store(false)
}
