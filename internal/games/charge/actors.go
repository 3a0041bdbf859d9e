package charge

import (
	"math/rand"

	"github.com/vovakirdan/charge/internal/core"
)

// Barrier is a kill line. It scrolls with the world and also advances
// right at the shared barrier speed.
type Barrier struct {
	Entity
	Front bool

	ownAcc float64
}

// NewBarrier creates a front or back barrier.
func NewBarrier(pos core.Rect, front bool) *Barrier {
	return &Barrier{Entity: Entity{Pos: pos, Kind: KindBarrier}, Front: front}
}

// Update moves the barrier. Barriers are never culled.
func (b *Barrier) Update(dt, playerSpeed, barrierSpeed float64) {
	b.Scroll(dt, playerSpeed)
	b.Pos.X += advance(&b.ownAcc, dt, barrierSpeed)
}

// Enemy patrols the platform it was spawned on.
type Enemy struct {
	Entity
	Platform *Platform

	step int // Signed pixels per tick
}

// NewEnemy creates an enemy walking in a random direction.
func NewEnemy(pos core.Rect, plat *Platform, speed int, rng *rand.Rand) *Enemy {
	if rng.Float64() < 0.5 {
		speed = -speed
	}
	return &Enemy{
		Entity:   Entity{Pos: pos, Kind: KindEnemy},
		Platform: plat,
		step:     speed,
	}
}

// FacingRight reports the patrol direction.
func (e *Enemy) FacingRight() bool {
	return e.step > 0
}

// Update walks one step, turning around at platform ends and walls, then
// scrolls with the world.
func (e *Enemy) Update(dt, speed float64) {
	next := e.Pos.X + e.step
	probe := next
	if e.step > 0 {
		probe += e.Pos.W
	}
	if e.Platform != nil && e.Platform.Walkable(e.Platform.SectionAt(probe)) {
		e.Pos.X = next
	} else {
		e.step = -e.step
	}
	e.Scroll(dt, speed)
	e.CullOffscreen()
}

// Projectile flies right at a fixed per-tick speed in screen space.
type Projectile struct {
	Entity
	step     int
	winWidth int
}

// NewProjectile creates a projectile.
func NewProjectile(pos core.Rect, step, winWidth int) *Projectile {
	return &Projectile{
		Entity:   Entity{Pos: pos, Kind: KindProjectile},
		step:     step,
		winWidth: winWidth,
	}
}

// Update moves the projectile and culls it once it leaves the window.
func (p *Projectile) Update() {
	p.Pos.X += p.step
	if p.Pos.Right() < -offscreenMargin || p.Pos.X > p.winWidth+offscreenMargin {
		p.Destroy()
	}
}
