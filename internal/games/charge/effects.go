package charge

import (
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/charge/internal/core"
)

// PixelSize is the side of one burst particle in world units.
const PixelSize = 5

// Effect is a cosmetic entity living in the misc list.
type Effect interface {
	Destroyed() bool
	Update(dt, speed float64)
}

// Pixel is a single fading particle of a Burst.
type Pixel struct {
	DX, DY  int // Offset from the burst origin
	Color   core.Color
	Opacity float64

	vx, vy float64
	accX   float64
	accY   float64
	fade   *gween.Tween
}

// BurstOptions configures a Burst.
type BurstOptions struct {
	Colors       []core.Color
	Frequency    float64 // Pixels spawned per tick, fractional part is a chance
	FadeTime     float64 // Seconds for one pixel to vanish
	VX, VY       float64 // Velocity of the whole burst, px/s
	RandomSpeed  float64 // Non-zero sends pixels in random directions
	FollowCamera bool    // Scroll with the world
}

// Burst spawns particles over its area for a short while, then lingers
// until the last one has faded.
type Burst struct {
	Entity
	Pixels []*Pixel

	opts       BurstOptions
	frequency  float64
	decay      float64 // Frequency lost per second
	accX, accY float64
	rng        *rand.Rand
}

// NewBurst creates a particle burst over area.
func NewBurst(area core.Rect, opts BurstOptions, rng *rand.Rand) *Burst {
	if opts.FadeTime <= 0 {
		opts.FadeTime = 0.5
	}
	return &Burst{
		Entity:    Entity{Pos: area, Kind: KindEffect},
		opts:      opts,
		frequency: opts.Frequency,
		decay:     opts.Frequency * 2,
		rng:       rng,
	}
}

// Update spawns, moves and fades particles.
func (b *Burst) Update(dt, speed float64) {
	n := int(math.Floor(b.frequency))
	for i := 0; i < n; i++ {
		b.spawn()
	}
	if b.rng.Float64() < b.frequency-float64(n) {
		b.spawn()
	}

	live := b.Pixels[:0]
	for _, px := range b.Pixels {
		o, done := px.fade.Update(float32(dt))
		if done {
			continue
		}
		px.Opacity = float64(o)
		px.DX += stepFrac(&px.accX, px.vx*dt)
		px.DY += stepFrac(&px.accY, px.vy*dt)
		live = append(live, px)
	}
	b.Pixels = live

	b.frequency = math.Max(0, b.frequency-b.decay*dt)

	b.Pos.X += stepFrac(&b.accX, b.opts.VX*dt)
	b.Pos.Y += stepFrac(&b.accY, b.opts.VY*dt)
	if b.opts.FollowCamera {
		b.Scroll(dt, speed)
	}
	b.CullOffscreen()
	if b.frequency == 0 && len(b.Pixels) == 0 {
		b.Destroy()
	}
}

func (b *Burst) spawn() {
	if b.Pos.W < PixelSize || b.Pos.H < PixelSize || len(b.opts.Colors) == 0 {
		return
	}
	px := &Pixel{
		DX:      b.rng.Intn(b.Pos.W - PixelSize + 1),
		DY:      b.rng.Intn(b.Pos.H - PixelSize + 1),
		Color:   b.opts.Colors[b.rng.Intn(len(b.opts.Colors))],
		Opacity: 1,
		fade:    gween.New(1, 0, float32(b.opts.FadeTime), ease.Linear),
	}
	if s := b.opts.RandomSpeed; s > 0 {
		px.vx = -s + b.rng.Float64()*s*2
		px.vy = math.Sqrt(math.Max(0, s*s-px.vx*px.vx))
		if b.rng.Float64() < 0.5 {
			px.vy = -px.vy
		}
	}
	b.Pixels = append(b.Pixels, px)
}

// stepFrac adds delta to acc and returns the whole pixels to move,
// keeping the signed remainder.
func stepFrac(acc *float64, delta float64) int {
	*acc += delta
	whole := math.Trunc(*acc)
	*acc -= whole
	return int(whole)
}

// Trail is one overcharge streak left behind the player.
type Trail struct {
	Entity
	Opacity float64

	player *Player
}

// NewTrail creates a trail particle tied to the player's row.
func NewTrail(pos core.Rect, player *Player) *Trail {
	return &Trail{
		Entity:  Entity{Pos: pos, Kind: KindEffect},
		Opacity: 1,
		player:  player,
	}
}

// Update fades the trail, faster once the player has left its row.
func (t *Trail) Update(dt, speed float64) {
	t.Opacity -= dt / 2
	if core.Abs(t.player.Pos.Y-t.Pos.Y) > t.player.Pos.H {
		t.Opacity -= 2 * dt
	}
	if t.Opacity <= 0 {
		t.Opacity = 0
		t.Destroy()
	}
	t.Scroll(dt, speed)
	t.CullOffscreen()
}

// Teardown bursts.
var (
	enemyBurstColors = []core.Color{core.ColorRed, core.ColorDarkGray}
	wallBurstColors  = []core.Color{core.ColorRed, core.ColorDarkGray}
	deathBurstColors = []core.Color{core.ColorDarkGray, core.ColorWhite}
)

func enemyBurst(area core.Rect, fade float64, rng *rand.Rand) *Burst {
	return NewBurst(area, BurstOptions{
		Colors:       enemyBurstColors,
		Frequency:    3,
		FadeTime:     fade,
		VY:           -20,
		FollowCamera: true,
	}, rng)
}

func wallBurst(area core.Rect, fade float64, rng *rand.Rand) *Burst {
	return NewBurst(area, BurstOptions{
		Colors:    wallBurstColors,
		Frequency: 5,
		FadeTime:  fade,
		VX:        -80,
		VY:        -10,
	}, rng)
}

func deathBurst(area core.Rect, fade float64, rng *rand.Rand) *Burst {
	return NewBurst(area, BurstOptions{
		Colors:      deathBurstColors,
		Frequency:   5,
		FadeTime:    fade,
		RandomSpeed: 40,
	}, rng)
}
