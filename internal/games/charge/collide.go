package charge

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/charge/internal/core"
)

// broadphase buckets world rectangles into a resolv.Space so a projectile
// only runs exact tests against bodies sharing its cells. The space spans
// one window of margin on every side of the visible window.
type broadphase struct {
	space   *resolv.Space
	objects []*resolv.Object
	offX    float64
	offY    float64
}

func newBroadphase(winW, winH, cell int) *broadphase {
	return &broadphase{
		space: resolv.NewSpace(3*winW, 3*winH, cell, cell),
		offX:  float64(winW),
		offY:  float64(winH),
	}
}

// reset removes every object added since the last reset.
func (b *broadphase) reset() {
	if len(b.objects) > 0 {
		b.space.Remove(b.objects...)
	}
	b.objects = b.objects[:0]
}

// add registers r under tag with data attached.
func (b *broadphase) add(r core.Rect, tag string, data any) *resolv.Object {
	obj := resolv.NewObject(float64(r.X)+b.offX, float64(r.Y)+b.offY, float64(r.W), float64(r.H), tag)
	obj.Data = data
	b.space.Add(obj)
	b.objects = append(b.objects, obj)
	return obj
}

// candidates returns the data of objects near obj carrying one of tags.
func (b *broadphase) candidates(obj *resolv.Object, tags ...string) []any {
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	out := make([]any, 0, len(check.Objects))
	for _, o := range check.Objects {
		out = append(out, o.Data)
	}
	return out
}

// checkCollisions resolves player and projectile contacts in a fixed
// order: platforms, batteries, enemies, walls, barriers, blasts,
// projectiles.
func (w *World) checkCollisions() {
	w.collidePlatforms()
	w.collideBatteries()
	w.collideEnemies()
	w.collideWalls()
	w.collideBarriers()
	w.collideBlasts()
	w.collideProjectiles()
}

func (w *World) collidePlatforms() {
	p := w.Player
	p.Grounded = false
	for _, plat := range w.Platforms {
		// Platforms far to the right cannot be under the player.
		if plat.Destroyed() || plat.Pos.X >= 2*p.Pos.Right() {
			continue
		}
		if !p.HitPlatform(plat) {
			continue
		}
		p.Land(plat)
		if w.landArmed {
			w.landArmed = false
			w.sound.Play(core.SoundLand)
		}
		return
	}
}

func (w *World) collideBatteries() {
	for _, b := range w.Batteries {
		if b.Destroyed() || !w.Player.Pos.Intersects(b.Pos) {
			continue
		}
		w.Player.IncCharge(w.cfg.Charge.BatteryReplenish)
		b.Destroy()
		w.sound.Play(core.SoundBattery)
		return
	}
}

func (w *World) collideEnemies() {
	for _, e := range w.Enemies {
		if !e.Destroyed() && w.Player.HitEnemy(e.Pos) {
			w.killPlayer()
		}
	}
}

func (w *World) collideWalls() {
	for _, wall := range w.Walls {
		if wall.Destroyed() || !w.Player.HitWall(wall.Pos) {
			continue
		}
		if w.Player.OverchargeActive() {
			wall.Destroy()
			w.sound.Play(core.SoundWallBreak)
			continue
		}
		w.killPlayer()
	}
}

func (w *World) collideBarriers() {
	p := w.Player.Pos
	switch {
	case w.Front != nil && p.Right() > w.Front.Pos.CenterX():
		w.killPlayer()
	case w.Back != nil && p.X < w.Back.Pos.CenterX():
		w.killPlayer()
	case p.Y > w.cfg.Window.Height+w.cfg.Barriers.FallDeathBuffer:
		w.killPlayer()
	}
}

func (w *World) collideBlasts() {
	for _, fx := range w.Effects {
		blast, ok := fx.(*Blast)
		if !ok {
			continue
		}
		for _, e := range w.Enemies {
			if !e.Destroyed() && blast.Hits(e.Pos) {
				e.Destroy()
				w.sound.Play(core.SoundEnemyKill)
			}
		}
	}
}

// collideProjectiles rebuilds the broadphase from live targets and tests
// each projectile only against bodies sharing its cells.
func (w *World) collideProjectiles() {
	if len(w.Projectiles) == 0 {
		return
	}
	bp := w.broad
	bp.reset()
	for _, e := range w.Enemies {
		if !e.Destroyed() {
			bp.add(e.Pos, KindEnemy.String(), e)
		}
	}
	for _, wall := range w.Walls {
		if !wall.Destroyed() {
			bp.add(wall.Pos, KindWall.String(), wall)
		}
	}
	for _, plat := range w.Platforms {
		if !plat.Destroyed() {
			bp.add(plat.Pos, KindPlatform.String(), plat)
		}
	}

	reach := w.cfg.Window.Width / 2
	for _, pr := range w.Projectiles {
		if pr.Destroyed() {
			continue
		}
		obj := bp.add(pr.Pos, KindProjectile.String(), pr)
		for _, c := range bp.candidates(obj, KindEnemy.String(), KindWall.String(), KindPlatform.String()) {
			switch t := c.(type) {
			case *Enemy:
				if !t.Destroyed() && pr.Pos.Intersects(t.Pos) {
					t.Destroy()
					pr.Destroy()
					w.sound.Play(core.SoundEnemyKill)
				}
			case *Entity:
				if pr.Pos.Intersects(t.Pos) {
					pr.Destroy()
				}
			case *Platform:
				if t.Pos.X < pr.Pos.Right()+reach && pr.Pos.Intersects(t.Pos) {
					pr.Destroy()
				}
			}
		}
	}
}

// killPlayer ends the run. Tutorials cannot be lost and a run ends once.
func (w *World) killPlayer() {
	if w.dead || w.state.Tutorial() {
		return
	}
	w.dead = true
	w.Player.Dead = true
	w.state = StateGameOver
	w.Effects = append(w.Effects, deathBurst(w.Player.Pos, w.cfg.Effects.ParticleFadeTime, w.rng))
	w.sound.Play(core.SoundDeath)
	w.events = append(w.events, core.Event{Kind: core.EventGameOver, Score: w.score, Level: w.CurrentLevel()})
}
