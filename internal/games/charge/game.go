package charge

import (
	"math/rand"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/registry"
)

// Mode identifiers registered with the registry.
const (
	ModeRun      = "charge"
	ModeTutorial = "charge_tutorial"
)

// Game adapts a World to the registry.Game interface.
type Game struct {
	id       string
	startIn  State
	runtime  core.RuntimeConfig
	cfg      config.ChargeConfig
	world    *World
	sound    core.SoundPlayer
	resumeTo State // State restored when unpausing

	board     []int
	boardRank int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall
// back to the config file's own settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a game that starts straight into a run.
func New() *Game {
	return &Game{id: ModeRun, startIn: StateInGame}
}

// NewTutorial creates a game that walks through the four abilities
// before starting a run.
func NewTutorial() *Game {
	return &Game{id: ModeTutorial, startIn: StateTutorialJump}
}

// NewBackdrop creates a game that only scrolls a decorative level, for
// menu screens.
func NewBackdrop() *Game {
	return &Game{id: "charge_backdrop", startIn: StateTitle}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.startIn.Tutorial() {
		return "Charge Tutorial"
	}
	return "Charge"
}

// SetSoundPlayer implements registry.SoundAware.
func (g *Game) SetSoundPlayer(p core.SoundPlayer) {
	g.sound = p
	if g.world != nil {
		g.world.SetSoundPlayer(p)
	}
}

// Reset loads config and starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCharge(configPath)
	if err != nil {
		cfg = config.DefaultChargeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChargePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(&g.cfg, rng, g.sound)
	if g.startIn == StateTitle {
		return
	}
	g.world.StartRun(g.startIn)
}

// ShowLeaderboard sets the table drawn on the game over screen. rank is
// this run's 0-based place in scores, or -1 when it did not place.
func (g *Game) ShowLeaderboard(scores []int, rank int) {
	g.board = scores
	g.boardRank = rank
}

// World exposes the simulation, mainly for tests.
func (g *Game) World() *World {
	return g.world
}

// Step applies input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	dt := g.runtime.DeltaTime()

	switch s := w.State(); {
	case s == StateGameOver:
		var events []core.Event
		switch {
		case in.Has(core.ActionRestart):
			g.ShowLeaderboard(nil, -1)
			w.StartRun(StateInGame)
		case in.Has(core.ActionBack):
			events = append(events, core.Event{Kind: core.EventBackToTitle})
		}
		w.Update(dt)
		return core.StepResult{State: g.State(), Events: append(events, w.Events()...)}

	case s == StatePaused:
		if in.Has(core.ActionPause) {
			w.SetState(g.resumeTo)
		}
		return core.StepResult{State: g.State()}

	case s.Playing() && in.Has(core.ActionPause):
		g.resumeTo = s
		w.SetState(StatePaused)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		w.Jump()
	}
	if in.Has(core.ActionJumpRelease) {
		w.CutJump()
	}
	if in.Has(core.ActionDischarge) {
		w.Discharge()
	}
	if in.Has(core.ActionShoot) {
		w.Shoot()
	}
	if in.Has(core.ActionOvercharge) {
		w.Overcharge()
	}

	w.Update(dt)
	return core.StepResult{State: g.State(), Events: w.Events()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver(),
		Paused:   g.world.State() == StatePaused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(ModeRun, func() registry.Game {
		return New()
	})
	registry.Register(ModeTutorial, func() registry.Game {
		return NewTutorial()
	})
}
