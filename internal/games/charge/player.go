package charge

import (
	"math"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/core"
)

// OverchargeState is the phase of the overcharge buff.
type OverchargeState int

const (
	OverchargeOff OverchargeState = iota
	OverchargeIncreasing
	OverchargeDecreasing
)

// String returns a human-readable name for the state.
func (s OverchargeState) String() string {
	switch s {
	case OverchargeOff:
		return "Off"
	case OverchargeIncreasing:
		return "Increasing"
	case OverchargeDecreasing:
		return "Decreasing"
	default:
		return "Unknown"
	}
}

// Player is the runner. It stays at a fixed x while the world scrolls past.
type Player struct {
	Entity
	VSpeed   float64 // Pixels per tick, positive is down
	Grounded bool
	Jumps    int
	Dead     bool

	charge     float64
	overcharge float64
	ocState    OverchargeState

	physics config.PhysicsConfig
	rules   config.AbilityConfig
	insets  config.CollisionConfig
}

// NewPlayer creates a player at pos holding the configured start charge.
func NewPlayer(pos core.Rect, cfg *config.ChargeConfig) *Player {
	p := &Player{
		Entity:  Entity{Pos: pos},
		physics: cfg.Physics,
		rules:   cfg.Abilities,
		insets:  cfg.Collision,
	}
	p.SetCharge(cfg.Player.StartCharge)
	return p
}

// Update advances the overcharge phase and vertical physics by one tick.
func (p *Player) Update(dt float64) {
	switch p.ocState {
	case OverchargeIncreasing:
		p.overcharge += p.rules.OverchargeRiseRate * dt
		p.IncCharge(p.rules.OverchargeTrickle * dt)
		if p.overcharge >= p.rules.OverchargeMax {
			p.overcharge = p.rules.OverchargeMax
			p.ocState = OverchargeDecreasing
		}
	case OverchargeDecreasing:
		p.overcharge -= p.rules.OverchargeFallRate * dt
		if p.overcharge <= 0 {
			p.overcharge = 0
			p.ocState = OverchargeOff
		}
	}

	if p.Grounded {
		p.VSpeed = 0
		return
	}
	p.VSpeed += p.physics.Gravity * dt
	p.VSpeed = core.ClampF(p.VSpeed, -p.physics.MaxVerticalSpeed, p.physics.MaxVerticalSpeed)
	p.Pos.Y += core.Round(p.VSpeed)
}

// HitPlatform is a swept landing test: the player must be falling and
// within one tick of fall distance above the platform top.
func (p *Player) HitPlatform(plat *Platform) bool {
	// The horizontal distance is compared against the width of whichever
	// body is further left.
	width := p.Pos.W
	if plat.Pos.X < p.Pos.X {
		width = plat.Pos.W
	}
	if core.Abs(p.Pos.X-plat.Pos.X) >= width {
		return false
	}
	return p.VSpeed >= 0 && math.Abs(float64(p.Pos.Bottom()-plat.Pos.Y)) <= math.Abs(p.VSpeed)
}

// Land snaps the player onto plat and resets the jump counter.
func (p *Player) Land(plat *Platform) {
	if p.VSpeed > 0 {
		p.Pos.Y = plat.Pos.Y - p.Pos.H
	}
	p.Grounded = true
	p.Jumps = 0
}

// HitWall is a buffered overlap: the player must be well inside the wall.
func (p *Player) HitWall(w core.Rect) bool {
	a := p.Pos
	miss := a.X+a.W-p.insets.PlayerInsetX < w.X ||
		w.X+w.W-p.insets.WallInsetX < a.X ||
		a.Y < w.Y-w.H+p.insets.WallInsetY ||
		w.Y < a.Y-a.H+p.insets.PlayerInsetY
	return !miss
}

// HitEnemy is a buffered overlap against an enemy body.
func (p *Player) HitEnemy(e core.Rect) bool {
	a := p.Pos
	miss := a.X+a.W-p.insets.PlayerInsetX < e.X ||
		e.X+e.W-p.insets.EnemyInsetX < a.X ||
		a.Y < e.Y-e.H ||
		e.Y < a.Y
	return !miss
}

// Jump starts a jump if one is left. Landing refills jumps.
func (p *Player) Jump(maxJumps int) bool {
	if p.Jumps >= maxJumps && !p.Grounded {
		return false
	}
	p.Jumps++
	p.VSpeed = p.physics.JumpVelocity
	p.Grounded = false
	return true
}

// CutJump halves upward speed for a shorter hop.
func (p *Player) CutJump() {
	if p.VSpeed < 0 {
		p.VSpeed /= 2
	}
}

// Charge returns stored charge plus the overcharge bonus.
func (p *Player) Charge() float64 {
	return p.charge + p.overcharge
}

// StoredCharge returns the charge without the overcharge bonus.
func (p *Player) StoredCharge() float64 {
	return p.charge
}

// SetCharge sets stored charge, flooring it at zero.
func (p *Player) SetCharge(v float64) {
	p.charge = math.Max(0, v)
}

// IncCharge adds to stored charge.
func (p *Player) IncCharge(amt float64) {
	p.SetCharge(p.charge + amt)
}

// DecCharge removes from stored charge.
func (p *Player) DecCharge(amt float64) {
	p.SetCharge(p.charge - amt)
}

// Overcharge starts the overcharge ramp.
func (p *Player) Overcharge() {
	p.ocState = OverchargeIncreasing
}

// OverchargeState returns the current overcharge phase.
func (p *Player) OverchargeState() OverchargeState {
	return p.ocState
}

// OverchargeActive gates wall breaking.
func (p *Player) OverchargeActive() bool {
	return p.ocState != OverchargeOff
}
