// Package charge implements Charge, an endless runner where speed is bought
// with a draining charge resource and two kill barriers punish running too
// fast or too slow.
//
// The simulation works in a fixed virtual window (1920x1080 by default) and
// knows nothing about terminals; Render rasterises it into a core.Screen.
package charge

import (
	"math"

	"github.com/vovakirdan/charge/internal/core"
)

// Kind tags an entity for teardown dispatch and collision lookups.
type Kind int

const (
	KindPlatform Kind = iota
	KindBattery
	KindEnemy
	KindWall
	KindProjectile
	KindBarrier
	KindEffect
)

// String returns the tag used for broadphase lookups.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindBattery:
		return "battery"
	case KindEnemy:
		return "enemy"
	case KindWall:
		return "wall"
	case KindProjectile:
		return "projectile"
	case KindBarrier:
		return "barrier"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// offscreenMargin is how far past the left window edge an entity may
// travel before it is culled.
const offscreenMargin = 10

// Entity is the positioned body shared by everything in the world.
type Entity struct {
	Pos  core.Rect
	Kind Kind

	destroyed bool
	scrollAcc float64 // Fractional scroll not yet applied to Pos
}

// Destroy flags the entity for removal at the end of the current tick.
func (e *Entity) Destroy() {
	e.destroyed = true
}

// Destroyed reports whether the entity is flagged for removal.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// Scroll shifts the entity left by speed*dt, carrying the fractional part
// over to the next tick.
func (e *Entity) Scroll(dt, speed float64) {
	e.Pos.X -= advance(&e.scrollAcc, dt, speed)
}

// CullOffscreen flags the entity once it is fully past the left edge.
func (e *Entity) CullOffscreen() {
	if e.Pos.Right() < -offscreenMargin {
		e.destroyed = true
	}
}

// advance accumulates dt and returns how many whole pixels speed covers.
// The consumed time is removed from acc.
func advance(acc *float64, dt, speed float64) int {
	*acc += dt
	if speed <= 0 {
		return 0
	}
	move := math.Floor(*acc * speed)
	*acc -= move / speed
	return int(move)
}

// sweep removes destroyed items in place and calls teardown once for
// each removed item.
func sweep[T interface{ Destroyed() bool }](items []T, teardown func(any)) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Destroyed() {
			if teardown != nil {
				teardown(it)
			}
			continue
		}
		kept = append(kept, it)
	}
	// Drop references held in the tail.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
