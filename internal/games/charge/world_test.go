package charge

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/core"
)

const testDT = 1.0 / 60

// recordingSound records every cue it is asked to play.
type recordingSound struct {
	played []core.Sound
}

func (r *recordingSound) Play(s core.Sound) {
	r.played = append(r.played, s)
}

func (r *recordingSound) count(s core.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func newTestWorld(seed int64, state State) (*World, *recordingSound) {
	cfg := config.DefaultChargeConfig()
	snd := &recordingSound{}
	w := NewWorld(&cfg, rand.New(rand.NewSource(seed)), snd)
	w.StartRun(state)
	return w, snd
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestStartRun(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)

	if w.Player == nil || w.Front == nil || w.Back == nil {
		t.Fatal("run should have a player and both barriers")
	}
	want := core.NewRect(640, 403, 84, 128)
	if w.Player.Pos != want {
		t.Errorf("player at %v, expected %v", w.Player.Pos, want)
	}
	if w.Charge() != 50 {
		t.Errorf("Charge() = %v, expected 50", w.Charge())
	}
	if w.PlayerSpeed() != 500 {
		t.Errorf("PlayerSpeed() = %v, expected 500", w.PlayerSpeed())
	}
	if w.Front.Pos.X != 2620 || w.Back.Pos.X != -300 {
		t.Errorf("barriers at %d and %d, expected 2620 and -300", w.Front.Pos.X, w.Back.Pos.X)
	}
	if len(w.Platforms) != 3 {
		t.Errorf("start layout has %d platforms, expected 3", len(w.Platforms))
	}
}

func TestFrontBarrierKillsOnce(t *testing.T) {
	w, snd := newTestWorld(1, StateInGame)
	w.Front.Pos.X = w.Player.Pos.X - 200

	w.Update(testDT)
	events := w.Events()

	if w.State() != StateGameOver || !w.GameOver() {
		t.Fatalf("state = %v, expected GameOver", w.State())
	}
	if n := countEvents(events, core.EventGameOver); n != 1 {
		t.Errorf("game over events = %d, expected 1", n)
	}

	for i := 0; i < 30; i++ {
		w.Update(testDT)
	}
	if n := countEvents(w.Events(), core.EventGameOver); n != 0 {
		t.Errorf("game over raised %d more times", n)
	}
	if snd.count(core.SoundDeath) != 1 {
		t.Errorf("death sound played %d times, expected 1", snd.count(core.SoundDeath))
	}
}

func TestBackBarrierAndFallKill(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *World)
	}{
		{"back barrier", func(w *World) { w.Back.Pos.X = w.Player.Pos.X }},
		{"fell off the bottom", func(w *World) { w.Player.Pos.Y = w.cfg.Window.Height + 50 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(1, StateInGame)
			tc.setup(w)
			w.Update(testDT)
			if !w.GameOver() {
				t.Error("player should be dead")
			}
		})
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)
	w.Front.Pos.X = w.Player.Pos.X - 200
	w.Update(testDT)

	score := w.Score()
	before := w.Platforms[0].Pos
	for i := 0; i < 60; i++ {
		w.Update(testDT)
	}
	if w.Platforms[0].Pos != before {
		t.Error("platforms moved after game over")
	}
	if w.Score() != score {
		t.Errorf("score changed after game over: %d -> %d", score, w.Score())
	}
}

func TestBatteryPickedUpOnce(t *testing.T) {
	w, snd := newTestWorld(1, StateInGame)
	b1 := &Entity{Pos: w.Player.Pos, Kind: KindBattery}
	b2 := &Entity{Pos: w.Player.Pos, Kind: KindBattery}
	w.Batteries = append(w.Batteries, b1, b2)
	before := w.Player.StoredCharge()

	w.Update(testDT)

	if b1.Destroyed() == b2.Destroyed() {
		t.Errorf("expected exactly one battery taken, got %v and %v", b1.Destroyed(), b2.Destroyed())
	}
	expected := before + 5 - 2*testDT
	if math.Abs(w.Player.StoredCharge()-expected) > 1e-9 {
		t.Errorf("charge = %v, expected %v", w.Player.StoredCharge(), expected)
	}
	if snd.count(core.SoundBattery) != 1 {
		t.Errorf("battery sound played %d times, expected 1", snd.count(core.SoundBattery))
	}
	for _, b := range w.Batteries {
		if b.Destroyed() {
			t.Error("destroyed battery still listed after the tick")
		}
	}
}

func TestScoreAccumulationIsStepIndependent(t *testing.T) {
	fine, _ := newTestWorld(1, StateInGame)
	for i := 0; i < 60; i++ {
		fine.updateScore(testDT)
	}

	coarse, _ := newTestWorld(1, StateInGame)
	coarse.updateScore(1)

	if fine.Score() != 4 || coarse.Score() != 4 {
		t.Errorf("scores = %d and %d, expected 4", fine.Score(), coarse.Score())
	}
	if math.Abs(fine.scoreAcc-0.5) > 1e-9 || math.Abs(coarse.scoreAcc-0.5) > 1e-9 {
		t.Errorf("remainders = %v and %v, expected 0.5", fine.scoreAcc, coarse.scoreAcc)
	}
}

func TestCooldownRearmsOnce(t *testing.T) {
	w, snd := newTestWorld(1, StateInGame)
	w.SetCooldown(1)

	for i := 0; i < 90; i++ {
		w.updateCooldown(testDT)
	}
	remaining, total := w.Cooldown()
	if remaining != 0 || total != 0 {
		t.Errorf("Cooldown() = %v, %v, expected 0, 0", remaining, total)
	}
	if snd.count(core.SoundRearm) != 1 {
		t.Errorf("rearm sound played %d times, expected 1", snd.count(core.SoundRearm))
	}

	for i := 0; i < 10; i++ {
		w.updateCooldown(testDT)
	}
	if remaining, _ := w.Cooldown(); remaining != 0 {
		t.Errorf("cooldown went from 0 to %v", remaining)
	}
	if snd.count(core.SoundRearm) != 1 {
		t.Error("rearm sound replayed at zero cooldown")
	}
}

func TestAbilitiesShareCooldown(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)

	if !w.Shoot() {
		t.Fatal("first shot should fire")
	}
	if math.Abs(w.Charge()-40) > 1e-9 {
		t.Errorf("charge after shot = %v, expected 40", w.Charge())
	}
	if remaining, total := w.Cooldown(); remaining != 5 || total != 5 {
		t.Errorf("Cooldown() = %v, %v, expected 5, 5", remaining, total)
	}
	if len(w.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(w.Projectiles))
	}
	if x := w.Projectiles[0].Pos.X; x != w.Player.Pos.Right()+15 {
		t.Errorf("projectile x = %d, expected %d", x, w.Player.Pos.Right()+15)
	}

	if w.Discharge() || w.Overcharge() || w.Shoot() {
		t.Error("abilities should be locked during the cooldown")
	}
	if !w.Jump() {
		t.Error("jump is never cooldown gated")
	}
}

func TestDischargeCost(t *testing.T) {
	tests := []struct {
		name     string
		charge   float64
		expected float64
	}{
		{"fraction", 50, 35},
		{"capped", 300, 250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(1, StateInGame)
			w.Player.SetCharge(tc.charge)
			if !w.Discharge() {
				t.Fatal("discharge should fire")
			}
			if math.Abs(w.Charge()-tc.expected) > 1e-9 {
				t.Errorf("charge after discharge = %v, expected %v", w.Charge(), tc.expected)
			}
		})
	}
}

func TestBlastKillsEnemy(t *testing.T) {
	w, snd := newTestWorld(1, StateInGame)
	p := w.Player.Pos
	e := NewEnemy(core.NewRect(p.Right(), p.Y, 80, 72), nil, 2, w.rng)
	w.Enemies = append(w.Enemies, e)

	w.Discharge()
	w.Update(testDT)

	if !e.Destroyed() {
		t.Fatal("enemy inside the blast should be destroyed")
	}
	if w.GameOver() {
		t.Fatal("player should survive")
	}
	for _, live := range w.Enemies {
		if live == e {
			t.Error("destroyed enemy still listed")
		}
	}
	if snd.count(core.SoundEnemyKill) != 1 {
		t.Errorf("enemy kill sound played %d times, expected 1", snd.count(core.SoundEnemyKill))
	}

	bursts := func() int {
		n := 0
		for _, fx := range w.Effects {
			if _, ok := fx.(*Burst); ok {
				n++
			}
		}
		return n
	}
	if bursts() != 1 {
		t.Errorf("bursts = %d, expected 1", bursts())
	}
	w.Update(testDT)
	if bursts() != 1 {
		t.Errorf("teardown ran again: bursts = %d", bursts())
	}
}

func TestProjectileStopsAtWall(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)
	p := w.Player.Pos
	wall := &Entity{Pos: core.NewRect(p.Right()+100, p.Y, 108, 144), Kind: KindWall}
	w.Walls = append(w.Walls, wall)

	w.Shoot()
	shot := w.Projectiles[0]
	for i := 0; i < 6; i++ {
		w.Update(testDT)
	}

	if !shot.Destroyed() {
		t.Error("projectile should be destroyed by the wall")
	}
	if wall.Destroyed() {
		t.Error("projectiles do not break walls")
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("projectiles = %d, expected 0", len(w.Projectiles))
	}
	if w.GameOver() {
		t.Error("player should not have reached the wall")
	}
}

func TestProjectileKillsEnemy(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)
	p := w.Player.Pos
	e := NewEnemy(core.NewRect(p.Right()+100, p.CenterY()-36, 80, 72), nil, 2, w.rng)
	w.Enemies = append(w.Enemies, e)

	w.Shoot()
	shot := w.Projectiles[0]
	for i := 0; i < 6; i++ {
		w.Update(testDT)
	}

	if !e.Destroyed() || !shot.Destroyed() {
		t.Errorf("enemy destroyed = %v, shot destroyed = %v, expected both", e.Destroyed(), shot.Destroyed())
	}
}

func TestOverchargeBreaksWall(t *testing.T) {
	w, snd := newTestWorld(1, StateInGame)
	p := w.Player.Pos
	wall := &Entity{Pos: core.NewRect(p.X, p.Y, 108, 144), Kind: KindWall}
	w.Walls = append(w.Walls, wall)

	w.Overcharge()
	w.Update(testDT)

	if w.GameOver() {
		t.Fatal("overcharged player should survive a wall")
	}
	if !wall.Destroyed() {
		t.Error("wall should break")
	}
	if snd.count(core.SoundWallBreak) != 1 {
		t.Errorf("wall break sound played %d times", snd.count(core.SoundWallBreak))
	}
}

func TestWallKillsWithoutOvercharge(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)
	p := w.Player.Pos
	w.Walls = append(w.Walls, &Entity{Pos: core.NewRect(p.X, p.Y, 108, 144), Kind: KindWall})

	w.Update(testDT)
	if !w.GameOver() {
		t.Error("wall should kill a player without overcharge")
	}
}

func TestEnemyPatrolTurnsAtWall(t *testing.T) {
	plat := NewPlatform(core.NewRect(0, 837, 72*4, 72), 2, 72, core.ColorWhite)
	plat.Sections[3].Content = ContentWall
	e := NewEnemy(core.NewRect(72, 765, 80, 72), plat, 2, rand.New(rand.NewSource(1)))
	e.step = 2

	turned := false
	for i := 0; i < 60; i++ {
		e.Update(testDT, 0)
		if e.Pos.Right() > plat.SectionRect(3).X {
			t.Fatalf("enemy walked into the wall section: right edge %d", e.Pos.Right())
		}
		if !e.FacingRight() {
			turned = true
		}
	}
	if !turned {
		t.Error("enemy never turned around")
	}

	for i := 0; i < 200; i++ {
		e.Update(testDT, 0)
		if e.Pos.X < plat.Pos.X {
			t.Fatalf("enemy walked off the left end: x %d", e.Pos.X)
		}
	}
}

func TestTutorialProgression(t *testing.T) {
	w, _ := newTestWorld(1, StateTutorialJump)

	if w.Front != nil || w.Back != nil {
		t.Error("tutorial should have no barriers")
	}

	for i := 0; i < 10; i++ {
		w.Update(testDT)
	}
	if w.Charge() != 50 {
		t.Errorf("charge decayed during the tutorial: %v", w.Charge())
	}
	if w.Score() != 0 {
		t.Errorf("score accrued during the tutorial: %d", w.Score())
	}
	if len(w.Platforms) != 3 {
		t.Errorf("tutorial platforms = %d, expected 3", len(w.Platforms))
	}

	if w.Shoot(); w.State() != StateTutorialJump {
		t.Errorf("shooting advanced the jump stage to %v", w.State())
	}

	steps := []struct {
		use  func() bool
		next State
	}{
		{w.Jump, StateTutorialDischarge},
		{w.Discharge, StateTutorialShoot},
		{w.Shoot, StateTutorialOvercharge},
		{w.Overcharge, StateInGame},
	}
	for _, s := range steps {
		if !s.use() {
			t.Fatalf("ability refused in %v", w.State())
		}
		if w.State() != s.next {
			t.Fatalf("state = %v, expected %v", w.State(), s.next)
		}
	}

	if n := countEvents(w.Events(), core.EventTutorialComplete); n != 1 {
		t.Errorf("tutorial complete events = %d, expected 1", n)
	}
	if w.Front == nil || w.Back == nil {
		t.Error("run after the tutorial should have barriers")
	}
}

func TestTutorialCannotBeLost(t *testing.T) {
	w, _ := newTestWorld(1, StateTutorialJump)
	p := w.Player.Pos
	w.Enemies = append(w.Enemies, NewEnemy(core.NewRect(p.X, p.Y, 80, 72), nil, 2, w.rng))

	w.Update(testDT)
	if w.GameOver() {
		t.Error("tutorial player should not die")
	}
}

func TestEnterMenuResetsWorld(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)
	for i := 0; i < 30; i++ {
		w.Update(testDT)
	}

	w.EnterMenu(StateTitle)
	if w.Player != nil || w.Front != nil || w.Back != nil {
		t.Error("menu should have no player or barriers")
	}
	if w.PlayerSpeed() != 300 || w.BarrierSpeed() != 300 {
		t.Errorf("speeds = %v, %v, expected 300, 300", w.PlayerSpeed(), w.BarrierSpeed())
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", w.Score())
	}

	for i := 0; i < 60; i++ {
		w.Update(testDT)
	}
	if len(w.Platforms) == 0 {
		t.Error("menu backdrop should generate platforms")
	}
}

func TestGlowOpacity(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)

	// Threshold is a quarter of the 2920 px barrier span.
	back, front := w.GlowOpacity()
	if math.Abs(back-480.0/730) > 1e-9 {
		t.Errorf("back glow at start = %v, expected %v", back, 480.0/730)
	}
	if front != 0 {
		t.Errorf("front glow at start = %v, expected 0", front)
	}

	// Back barrier centered on the left window edge is at full intensity.
	w.Back.Pos.X = -w.Back.Pos.W / 2
	back, _ = w.GlowOpacity()
	if math.Abs(back-1) > 1e-9 {
		t.Errorf("back glow = %v, expected 1", back)
	}

	w.Back.Pos.X = 200
	back, _ = w.GlowOpacity()
	if back <= 0 || back >= 1 {
		t.Errorf("back glow past the edge = %v, expected (0, 1)", back)
	}
}

func TestPlatformColorFollowsLevel(t *testing.T) {
	w, _ := newTestWorld(1, StateInGame)
	if w.PlatformColor() != core.ColorGreen {
		t.Errorf("level %d color = %v, expected green", w.CurrentLevel(), w.PlatformColor())
	}
	w.barrierSpeed = 760
	if w.PlatformColor() != core.ColorYellow {
		t.Errorf("level %d color = %v, expected yellow", w.CurrentLevel(), w.PlatformColor())
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() (*World, int) {
		w, _ := newTestWorld(77, StateInGame)
		ticks := 0
		for ; ticks < 1200 && !w.GameOver(); ticks++ {
			if ticks%40 == 0 {
				w.Jump()
			}
			w.Update(testDT)
		}
		return w, ticks
	}

	w1, t1 := run()
	w2, t2 := run()
	if t1 != t2 || w1.Score() != w2.Score() {
		t.Fatalf("runs diverged: ticks %d vs %d, score %d vs %d", t1, t2, w1.Score(), w2.Score())
	}
	if w1.Player.Pos != w2.Player.Pos {
		t.Errorf("player at %v vs %v", w1.Player.Pos, w2.Player.Pos)
	}
	if len(w1.Platforms) != len(w2.Platforms) {
		t.Errorf("platform counts %d vs %d", len(w1.Platforms), len(w2.Platforms))
	}
}
