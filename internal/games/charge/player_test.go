package charge

import (
	"math"
	"testing"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/core"
)

func newTestPlayer() *Player {
	cfg := config.DefaultChargeConfig()
	return NewPlayer(core.NewRect(640, 403, 84, 128), &cfg)
}

func TestPlayerDoubleJump(t *testing.T) {
	p := newTestPlayer()

	if !p.Jump(2) {
		t.Fatal("first jump should succeed")
	}
	if p.VSpeed != -28.8 {
		t.Errorf("VSpeed after jump = %v, expected -28.8", p.VSpeed)
	}
	if !p.Jump(2) {
		t.Fatal("double jump should succeed")
	}
	if p.Jump(2) {
		t.Error("third jump should fail while airborne")
	}

	plat := NewPlatform(core.NewRect(600, 837, 720, 72), 2, 72, core.ColorWhite)
	p.Land(plat)
	if p.Jumps != 0 || !p.Grounded {
		t.Errorf("after landing Jumps = %d, Grounded = %v", p.Jumps, p.Grounded)
	}
	if !p.Jump(2) {
		t.Error("jump after landing should succeed")
	}
}

func TestPlayerCutJump(t *testing.T) {
	p := newTestPlayer()
	p.Jump(2)
	p.CutJump()
	if p.VSpeed != -14.4 {
		t.Errorf("VSpeed after cut = %v, expected -14.4", p.VSpeed)
	}

	p.VSpeed = 10
	p.CutJump()
	if p.VSpeed != 10 {
		t.Errorf("CutJump changed a falling speed to %v", p.VSpeed)
	}
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	p := newTestPlayer()
	plat := NewPlatform(core.NewRect(600, 837, 720, 72), 2, 72, core.ColorWhite)

	landed := false
	for i := 0; i < 120 && !landed; i++ {
		p.Update(1.0 / 60)
		if p.HitPlatform(plat) {
			p.Land(plat)
			landed = true
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	if p.Pos.Bottom() != plat.Pos.Y {
		t.Errorf("player bottom = %d, expected platform top %d", p.Pos.Bottom(), plat.Pos.Y)
	}

	// Grounded players stay put and keep hitting the platform.
	p.Update(1.0 / 60)
	if !p.HitPlatform(plat) {
		t.Error("grounded player should still rest on the platform")
	}
}

func TestPlayerChargeFloor(t *testing.T) {
	p := newTestPlayer()

	if p.Charge() != 50 {
		t.Errorf("start charge = %v, expected 50", p.Charge())
	}
	p.DecCharge(1000)
	if p.Charge() != 0 {
		t.Errorf("Charge() = %v, expected 0", p.Charge())
	}
	p.SetCharge(-5)
	if p.Charge() != 0 {
		t.Errorf("SetCharge(-5) left %v, expected 0", p.Charge())
	}
}

func TestOverchargeStateMachine(t *testing.T) {
	p := newTestPlayer()
	p.Grounded = true
	const dt = 1.0 / 60

	p.Overcharge()
	if p.OverchargeState() != OverchargeIncreasing {
		t.Fatalf("state = %v, expected Increasing", p.OverchargeState())
	}

	ticks := 0
	for p.OverchargeState() == OverchargeIncreasing && ticks < 100 {
		p.Update(dt)
		ticks++
	}
	if p.OverchargeState() != OverchargeDecreasing {
		t.Fatalf("state = %v after %d ticks, expected Decreasing", p.OverchargeState(), ticks)
	}
	if ticks < 19 || ticks > 21 {
		t.Errorf("rise took %d ticks, expected about 20", ticks)
	}
	// The rise adds roughly 10 permanent charge on top of the 50 bonus.
	if math.Abs(p.StoredCharge()-60) > 1 {
		t.Errorf("StoredCharge() = %v, expected about 60", p.StoredCharge())
	}
	if math.Abs(p.Charge()-p.StoredCharge()-50) > 1e-9 {
		t.Errorf("overcharge bonus = %v, expected 50", p.Charge()-p.StoredCharge())
	}
	if !p.OverchargeActive() {
		t.Error("overcharge should be active while decreasing")
	}

	for i := 0; i < 400 && p.OverchargeState() != OverchargeOff; i++ {
		p.Update(dt)
	}
	if p.OverchargeState() != OverchargeOff {
		t.Errorf("state = %v, expected Off", p.OverchargeState())
	}
	if p.Charge() != p.StoredCharge() {
		t.Errorf("bonus left after overcharge: %v", p.Charge()-p.StoredCharge())
	}
}

func TestPlayerHitWallBuffer(t *testing.T) {
	p := newTestPlayer()

	tests := []struct {
		name     string
		wall     core.Rect
		expected bool
	}{
		{"far right", core.NewRect(900, 403, 108, 144), false},
		{"overlapping but inside the player buffer", core.NewRect(p.Pos.Right()-29, 403, 108, 144), false},
		{"at the buffer edge", core.NewRect(p.Pos.Right()-30, 403, 108, 144), true},
		{"deep overlap", core.NewRect(p.Pos.X, 403, 108, 144), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := p.HitWall(tc.wall)
			if result != tc.expected {
				t.Errorf("HitWall() = %v, expected %v", result, tc.expected)
			}
		})
	}
}
