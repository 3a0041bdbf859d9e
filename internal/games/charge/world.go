package charge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/core"
)

// PlatformColors tint platforms by difficulty level.
var PlatformColors = []core.Color{
	core.ColorWhite, core.ColorGreen, core.ColorYellow,
	core.ColorTomato, core.ColorBlue, core.ColorViolet,
}

// BarColors fill the charge bar, one per full bar.
var BarColors = []core.Color{
	core.ColorGray, core.ColorGreen, core.ColorYellow,
	core.ColorRed, core.ColorBlue, core.ColorPink,
}

// World owns every entity and advances the simulation one tick at a time.
// All structural changes to the entity lists happen inside Update or an
// ability call; readers see a settled world between calls.
type World struct {
	cfg        *config.ChargeConfig
	rng        *rand.Rand
	sound      core.SoundPlayer
	difficulty *config.DifficultyManager
	gen        *LevelGenerator
	broad      *broadphase

	state State

	Player      *Player
	Front, Back *Barrier
	Platforms   []*Platform
	Batteries   []*Entity
	Walls       []*Entity
	Enemies     []*Enemy
	Projectiles []*Projectile
	Effects     []Effect

	Background float64 // Parallax scroll offset in world units

	score         int
	scoreAcc      float64
	playerSpeed   float64
	barrierSpeed  float64
	cooldown      float64
	totalCooldown float64
	rearmPlayed   bool
	landArmed     bool
	dead          bool

	events []core.Event
}

// NewWorld creates a world showing the title backdrop.
func NewWorld(cfg *config.ChargeConfig, rng *rand.Rand, sound core.SoundPlayer) *World {
	if sound == nil {
		sound = core.NopSound{}
	}
	w := &World{
		cfg:        cfg,
		rng:        rng,
		sound:      sound,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		gen:        NewLevelGenerator(cfg, rng),
		broad:      newBroadphase(cfg.Window.Width, cfg.Window.Height, cfg.Generation.SegmentWidth),
		landArmed:  true,
	}
	w.EnterMenu(StateTitle)
	return w
}

// SetSoundPlayer replaces the audio collaborator.
func (w *World) SetSoundPlayer(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSound{}
	}
	w.sound = p
}

// Generator exposes the level generator.
func (w *World) Generator() *LevelGenerator {
	return w.gen
}

func (w *World) clear() {
	w.Platforms = nil
	w.Batteries = nil
	w.Walls = nil
	w.Enemies = nil
	w.Projectiles = nil
	w.Effects = nil
	w.events = nil
	w.gen.Reset()
}

// EnterMenu switches to a menu backdrop: no player, no barriers, start
// speeds, fresh level.
func (w *World) EnterMenu(s State) {
	w.clear()
	w.state = s
	w.playerSpeed = w.cfg.Player.StartSpeed
	w.barrierSpeed = w.cfg.Barriers.StartSpeed
	w.score, w.scoreAcc = 0, 0
	w.dead = false
	w.Player, w.Front, w.Back = nil, nil, nil
}

// StartRun begins a new run in s, which is StateInGame or
// StateTutorialJump.
func (w *World) StartRun(s State) {
	w.clear()
	w.state = s

	pc := w.cfg.Player
	tiers := w.cfg.Generation.TierHeights
	mid := tiers[len(tiers)/2]
	w.Player = NewPlayer(core.NewRect(w.cfg.PlayerStartX(), mid-pc.StartLift, pc.Width, pc.Height), w.cfg)

	w.score, w.scoreAcc = 0, 0
	w.cooldown, w.totalCooldown = 0, 0
	w.rearmPlayed = true
	w.landArmed = true
	w.dead = false
	w.barrierSpeed = w.cfg.Barriers.StartSpeed
	w.playerSpeed = SpeedForCharge(w.Player.Charge(), w.cfg.Charge)

	color := w.PlatformColor()
	if s.Tutorial() {
		w.Front, w.Back = nil, nil
		bottom := len(tiers) - 1
		floor := NewPlatform(core.NewRect(0, tiers[bottom], w.cfg.Window.Width, w.cfg.Generation.PlatformHeight),
			bottom, w.cfg.Generation.SegmentWidth, color)
		w.Platforms = append(w.Platforms, floor)
		return
	}

	b := w.cfg.Barriers
	w.Back = NewBarrier(core.NewRect(b.BackStartX, b.Y, b.Width, b.Height), false)
	w.Front = NewBarrier(core.NewRect(b.FrontStartX, b.Y, b.Width, b.Height), true)
	w.Platforms = append(w.Platforms, w.gen.StartLayout(color)...)
}

// State returns the current state.
func (w *World) State() State {
	return w.state
}

// SetState changes state without resetting the world. Used for pause.
func (w *World) SetState(s State) {
	w.state = s
}

// Update advances the world by dt seconds.
func (w *World) Update(dt float64) {
	if w.state.Scrolls() {
		w.Background += dt * w.playerSpeed * w.cfg.Effects.BackgroundParallax
		w.updateEntities(dt)
		w.sweepAll()
		w.gen.Advance(dt, w.playerSpeed)
		w.generate()
	}

	switch {
	case w.state.Playing() && w.Player != nil:
		w.updatePlaying(dt)
	case w.state == StateGameOver:
		for _, e := range w.Effects {
			e.Update(dt, w.playerSpeed)
		}
	}
	w.sweepAll()
}

func (w *World) updatePlaying(dt float64) {
	tutorial := w.state.Tutorial()
	w.Player.Update(dt)
	if math.Abs(w.Player.VSpeed) > math.Abs(w.cfg.Physics.JumpVelocity/2) {
		w.landArmed = true
	}

	if !tutorial {
		w.barrierSpeed += w.difficulty.BarrierAcceleration(w.cfg.Barriers.SpeedUpRate) * dt
		w.Front.Update(dt, w.playerSpeed, w.barrierSpeed)
		w.Back.Update(dt, w.playerSpeed, w.barrierSpeed)
		w.updateScore(dt)
	}

	w.checkCollisions()

	if !tutorial {
		w.Player.DecCharge(w.cfg.Charge.DecayRate * dt)
	}
	w.playerSpeed = SpeedForCharge(w.Player.Charge(), w.cfg.Charge)
	w.updateCooldown(dt)
	w.spawnTrail()
}

func (w *World) updateEntities(dt float64) {
	speed := w.playerSpeed
	for _, p := range w.Platforms {
		p.Update(dt, speed)
	}
	for _, b := range w.Batteries {
		b.Scroll(dt, speed)
		b.CullOffscreen()
	}
	for _, e := range w.Enemies {
		e.Update(dt, speed)
	}
	for _, wall := range w.Walls {
		wall.Scroll(dt, speed)
		wall.CullOffscreen()
	}
	for _, p := range w.Projectiles {
		p.Update()
	}
	for _, e := range w.Effects {
		e.Update(dt, speed)
	}
}

// sweepAll removes destroyed entities, running each one's teardown once.
func (w *World) sweepAll() {
	w.Platforms = sweep(w.Platforms, w.teardown)
	w.Batteries = sweep(w.Batteries, w.teardown)
	w.Enemies = sweep(w.Enemies, w.teardown)
	w.Walls = sweep(w.Walls, w.teardown)
	w.Projectiles = sweep(w.Projectiles, nil)
	w.Effects = sweep(w.Effects, nil)
}

// teardown runs the side effect tied to an entity's removal.
func (w *World) teardown(v any) {
	fade := w.cfg.Effects.ParticleFadeTime
	switch e := v.(type) {
	case *Platform:
		w.gen.PlatformRemoved(e)
	case *Enemy:
		w.Effects = append(w.Effects, enemyBurst(e.Pos, fade, w.rng))
	case *Entity:
		if e.Kind == KindWall {
			w.Effects = append(w.Effects, wallBurst(e.Pos, fade, w.rng))
		}
	}
}

func (w *World) generate() {
	color := w.PlatformColor()
	if w.state.Tutorial() {
		x := 0
		if n := len(w.Platforms); n > 0 {
			x = w.Platforms[n-1].Pos.Right()
		}
		if p := w.gen.TutorialFloor(len(w.Platforms), x, color); p != nil {
			w.Platforms = append(w.Platforms, p)
		}
		return
	}

	out := w.gen.Generate(len(w.Platforms), len(w.Enemies), w.playerSpeed, w.barrierSpeed, color)
	w.Platforms = append(w.Platforms, out.Platforms...)
	w.Batteries = append(w.Batteries, out.Batteries...)
	w.Walls = append(w.Walls, out.Walls...)
	w.Enemies = append(w.Enemies, out.Enemies...)
}

func (w *World) updateScore(dt float64) {
	w.scoreAcc += dt * w.cfg.Score.Coefficient
	if w.scoreAcc >= 1 {
		whole := math.Floor(w.scoreAcc)
		w.score += int(whole)
		w.scoreAcc -= whole
	}
}

func (w *World) updateCooldown(dt float64) {
	w.cooldown = math.Max(0, w.cooldown-dt)
	if w.cooldown > 0 && w.cooldown < 2*dt && !w.rearmPlayed {
		w.rearmPlayed = true
		w.sound.Play(core.SoundRearm)
	}
	if w.cooldown == 0 {
		w.totalCooldown = 0
	}
}

func (w *World) spawnTrail() {
	p := w.Player
	if !p.OverchargeActive() || w.rng.Float64() >= w.cfg.Effects.OverchargeParticleChance {
		return
	}
	const size = 5
	x := p.Pos.X - size
	y := p.Pos.CenterY() - size/2
	switch r := w.rng.Float64(); {
	case r < 0.3:
		y += p.Pos.H / 3
	case r > 0.7:
		y -= p.Pos.H / 3
	}
	w.Effects = append(w.Effects, NewTrail(core.NewRect(x, y, size, size), p))
}

// SetCooldown starts a global ability lockout.
func (w *World) SetCooldown(seconds float64) {
	w.cooldown = seconds
	w.totalCooldown = seconds
	w.rearmPlayed = false
}

// ready reports whether abilities may fire. Tutorials ignore cooldowns.
func (w *World) ready() bool {
	if w.Player == nil || !w.state.Playing() || w.dead {
		return false
	}
	return w.state.Tutorial() || w.cooldown <= 0
}

// Jump makes the player jump or double jump. It is not cooldown gated.
func (w *World) Jump() bool {
	if w.Player == nil || !w.state.Playing() || w.dead {
		return false
	}
	if !w.Player.Jump(w.cfg.Player.MaxJumps) {
		return false
	}
	w.sound.Play(core.SoundJump)
	w.tutorialStep(StateTutorialJump)
	return true
}

// CutJump shortens a rising jump.
func (w *World) CutJump() {
	if w.Player == nil || !w.state.Playing() {
		return
	}
	w.Player.CutJump()
}

// Discharge spends charge to release a blast around the player.
func (w *World) Discharge() bool {
	if !w.ready() {
		return false
	}
	a := w.cfg.Abilities
	w.Player.DecCharge(math.Min(w.Player.Charge()*a.DischargeFraction, a.DischargeMaxCost))
	w.Effects = append(w.Effects, NewBlast(w.Player.Pos, a.BlastGrowthRate, a.BlastMaxRadius))
	w.setAbilityCooldown(a.DischargeCooldowns)
	w.sound.Play(core.SoundDischarge)
	w.tutorialStep(StateTutorialDischarge)
	return true
}

// Shoot spends charge to fire a projectile from the player's muzzle.
func (w *World) Shoot() bool {
	if !w.ready() {
		return false
	}
	a := w.cfg.Abilities
	p := w.Player.Pos
	w.Player.DecCharge(a.ShootCost)
	pos := core.NewRect(p.Right()+a.ProjectileWidth, p.CenterY()-a.ProjectileHeight/2+5, a.ProjectileWidth, a.ProjectileHeight)
	w.Projectiles = append(w.Projectiles, NewProjectile(pos, a.ProjectileSpeed, w.cfg.Window.Width))
	w.setAbilityCooldown(a.ShootCooldowns)
	w.sound.Play(core.SoundShoot)
	w.tutorialStep(StateTutorialShoot)
	return true
}

// Overcharge starts the overcharge buff.
func (w *World) Overcharge() bool {
	if !w.ready() {
		return false
	}
	w.Player.Overcharge()
	w.sound.Play(core.SoundOvercharge)
	w.setAbilityCooldown(w.cfg.Abilities.OverchargeCooldowns)
	w.tutorialStep(StateTutorialOvercharge)
	return true
}

func (w *World) setAbilityCooldown(table []float64) {
	if w.state.Tutorial() {
		return
	}
	w.SetCooldown(CooldownFor(table, w.CurrentLevel()))
}

// tutorialStep advances the tutorial when the ability of stage is used.
func (w *World) tutorialStep(stage State) {
	if w.state != stage {
		return
	}
	next := stage.nextTutorial()
	if next != StateInGame {
		w.state = next
		return
	}
	w.StartRun(StateInGame)
	w.events = append(w.events, core.Event{Kind: core.EventTutorialComplete})
}

// Events returns and clears the events raised since the last call.
func (w *World) Events() []core.Event {
	ev := w.events
	w.events = nil
	return ev
}

// Score returns the integer score.
func (w *World) Score() int {
	return w.score
}

// PlayerSpeed returns the scroll speed derived from charge.
func (w *World) PlayerSpeed() float64 {
	return w.playerSpeed
}

// BarrierSpeed returns the shared barrier speed.
func (w *World) BarrierSpeed() float64 {
	return w.barrierSpeed
}

// Cooldown returns the remaining and total global cooldown.
func (w *World) Cooldown() (remaining, total float64) {
	return w.cooldown, w.totalCooldown
}

// Charge returns the player's charge, or 0 without a player.
func (w *World) Charge() float64 {
	if w.Player == nil {
		return 0
	}
	return w.Player.Charge()
}

// GameOver reports whether the player has died.
func (w *World) GameOver() bool {
	return w.dead
}

// CurrentLevel returns the difficulty level derived from barrier speed.
func (w *World) CurrentLevel() int {
	return LevelForBarrierSpeed(w.barrierSpeed, w.cfg.Charge)
}

// LevelChargePercent returns how full the current level's bar is.
func (w *World) LevelChargePercent() float64 {
	return LevelChargePercent(w.Charge(), w.CurrentLevel(), w.cfg.Charge.BarCapacity)
}

// PlatformColor returns the tint for new platforms.
func (w *World) PlatformColor() core.Color {
	return PlatformColors[w.CurrentLevel()%len(PlatformColors)]
}

// BarColors returns the background and foreground colors of the charge bar.
func (w *World) BarColors() (bg, fg core.Color) {
	i := int(w.Charge()/w.cfg.Charge.BarCapacity) % len(BarColors)
	return BarColors[i], BarColors[(i+1)%len(BarColors)]
}

// GlowThreshold is the barrier distance at which warning glows appear.
func (w *World) GlowThreshold() float64 {
	return float64(w.cfg.Barriers.FrontStartX-w.cfg.Barriers.BackStartX) / 4
}

// GlowOpacity returns the warning intensity in [0, 1] for the back and
// front barriers.
func (w *World) GlowOpacity() (back, front float64) {
	if w.Front == nil || w.Back == nil {
		return 0, 0
	}
	t := w.GlowThreshold()
	back = glow((t + float64(w.Back.Pos.CenterX())) / t)
	front = glow((t - float64(w.Front.Pos.CenterX()-w.cfg.Window.Width)) / t)
	return back, front
}

func glow(v float64) float64 {
	if v > 1 {
		v = 1 / v
	}
	return math.Max(0, v)
}
