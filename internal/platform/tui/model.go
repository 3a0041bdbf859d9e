package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/registry"
)

// GameModel runs one game mode on a fixed tick and routes its events to
// the shared services.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        *Services
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	runTicks   int // Ticks played in the current run
	quitting   bool
	backToMenu bool
	standalone bool // Leaving the game quits instead of returning to a menu
}

// NewGameModel creates a model for game. svc may be nil.
func NewGameModel(game registry.Game, svc *Services, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if svc == nil {
		svc = &Services{}
	}
	if sa, ok := game.(registry.SoundAware); ok {
		sa.SetSoundPlayer(svc.Player())
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales its world to any size, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// The game handles back on its own game over screen; while paused the
	// platform takes it.
	if m.inputFrame.Has(core.ActionBack) && m.gameState.Paused {
		return m.leave()
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.runTicks = 0
	}
	if !m.gameState.GameOver && !m.gameState.Paused {
		m.runTicks++
	}

	back := m.handleEvents(result.Events)
	if back {
		return m.leave()
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvents applies one tick's events and reports whether the player
// asked to leave the game.
func (m *GameModel) handleEvents(events []core.Event) bool {
	back := false
	for _, ev := range events {
		switch ev.Kind {
		case core.EventGameOver:
			played := time.Duration(float64(m.runTicks) * m.config.DeltaTime() * float64(time.Second))
			board, rank := m.svc.RecordRun(m.game.ID(), ev, m.config.Seed, played)
			if lb, ok := m.game.(registry.LeaderboardAware); ok && board != nil {
				lb.ShowLeaderboard(board, rank)
			}
		case core.EventTutorialComplete:
			m.svc.MarkTutorialSeen()
			m.runTicks = 0
		case core.EventBackToTitle:
			back = true
		}
	}
	return back
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".charge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.logger().Warn("could not create screenshot dir", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.svc.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single mode until the player quits or leaves it.
func Run(game registry.Game, svc *Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
