package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/charge/internal/core"
)

// note is one tone of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cues maps every sound to a short synthesised phrase.
var cues = map[core.Sound][]note{
	core.SoundJump:       {{520, 40 * time.Millisecond}, {780, 40 * time.Millisecond}},
	core.SoundLand:       {{160, 60 * time.Millisecond}},
	core.SoundBattery:    {{880, 50 * time.Millisecond}, {1320, 50 * time.Millisecond}},
	core.SoundDischarge:  {{220, 70 * time.Millisecond}, {165, 70 * time.Millisecond}, {110, 90 * time.Millisecond}},
	core.SoundShoot:      {{1200, 40 * time.Millisecond}},
	core.SoundOvercharge: {{330, 50 * time.Millisecond}, {440, 50 * time.Millisecond}, {550, 50 * time.Millisecond}, {660, 70 * time.Millisecond}},
	core.SoundRearm:      {{660, 60 * time.Millisecond}, {0, 20 * time.Millisecond}, {990, 60 * time.Millisecond}},
	core.SoundDeath:      {{300, 120 * time.Millisecond}, {200, 120 * time.Millisecond}, {120, 120 * time.Millisecond}, {80, 200 * time.Millisecond}},
	core.SoundEnemyKill:  {{400, 60 * time.Millisecond}, {250, 60 * time.Millisecond}},
	core.SoundWallBreak:  {{140, 80 * time.Millisecond}, {100, 80 * time.Millisecond}},
	core.SoundMenu:       {{600, 30 * time.Millisecond}},
}

// release is the fade applied to the tail of every note.
const release = 10 * time.Millisecond

// cueLength returns the total duration of a sound's phrase.
func cueLength(s core.Sound) time.Duration {
	var d time.Duration
	for _, n := range cues[s] {
		d += n.dur
	}
	return d
}

// cueStreamer builds a finite streamer for s at the given volume in
// [0, 1]. Unknown sounds yield nil.
func cueStreamer(rate beep.SampleRate, s core.Sound, volume float64) (beep.Streamer, error) {
	notes, ok := cues[s]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &fadeOut{
			Streamer: beep.Take(samples, tone),
			total:    samples,
			release:  rate.N(release),
		})
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales s linearly. Zero volume is silent since the
// underlying effect works in log space.
func withVolume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// fadeOut ramps the last release samples of a finite stream to zero so
// notes end without a click.
type fadeOut struct {
	beep.Streamer
	pos     int
	total   int
	release int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.pos >= start && f.release > 0 {
			g := float64(f.total-f.pos) / float64(f.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}
