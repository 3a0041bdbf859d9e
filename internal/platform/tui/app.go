package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/games/charge"
	"github.com/vovakirdan/charge/internal/registry"
)

// page is the screen the App is showing.
type page int

const (
	pageTitle page = iota
	pageOptions
	pageCredits
	pageScores
	pageGame
)

// App is the top-level model: title menu, options, credits, scoreboard
// and the game itself. A decorative level scrolls behind the menus. The
// same model serves local play and SSH sessions.
type App struct {
	svc      *Services
	config   core.RuntimeConfig
	page     page
	menu     MenuModel
	options  OptionsModel
	scores   ScoreboardModel
	game     *GameModel
	backdrop *charge.Game
	canvas   *core.Screen
	quitting bool
}

// NewApp creates the app. svc may be nil.
func NewApp(svc *Services, cfg core.RuntimeConfig) App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if svc == nil {
		svc = &Services{}
	}
	svc.Prefs()

	backdrop := charge.NewBackdrop()
	backdrop.Reset(cfg)

	return App{
		svc:      svc,
		config:   cfg,
		menu:     NewMenuModel(svc.Player(), cfg.ScreenW, cfg.ScreenH),
		backdrop: backdrop,
		canvas:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init starts the single tick loop shared by the backdrop and the game.
func (a App) Init() tea.Cmd {
	return tickCmd(a.config.TickRate)
}

// Update handles messages for the current page.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
		a.canvas.Resize(wsm.Width, wsm.Height)
		if a.game != nil {
			updated, _ := a.game.Update(msg)
			gm := updated.(GameModel)
			a.game = &gm
		}
		if a.page == pageScores {
			updated, _ := a.scores.Update(msg)
			a.scores = updated.(ScoreboardModel)
		}
		updatedMenu, _ := a.menu.Update(msg)
		a.menu = updatedMenu.(MenuModel)
		return a, nil
	}

	if _, ok := msg.(TickMsg); ok {
		return a.tick(msg)
	}

	switch a.page {
	case pageTitle:
		return a.updateTitle(msg)
	case pageOptions:
		return a.updateOptions(msg)
	case pageCredits:
		return a.updateCredits(msg)
	case pageScores:
		return a.updateScores(msg)
	case pageGame:
		return a.updateGame(msg)
	}
	return a, nil
}

// tick advances the game or the backdrop. Sub-models never schedule
// their own ticks here, so the rate stays fixed.
func (a App) tick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.page == pageGame && a.game != nil {
		return a.updateGame(msg)
	}
	a.backdrop.Step(core.NewInputFrame())
	return a, tickCmd(a.config.TickRate)
}

func (a App) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, _ := a.menu.Update(msg)
	a.menu = updated.(MenuModel)

	choice := a.menu.Selected()
	a.menu.selected = ChoiceNone

	switch choice {
	case ChoicePlay:
		if !a.svc.TutorialSeen() {
			return a.startGame(charge.ModeTutorial)
		}
		return a.startGame(charge.ModeRun)
	case ChoiceTutorial:
		return a.startGame(charge.ModeTutorial)
	case ChoiceOptions:
		a.options = NewOptionsModel(a.svc)
		a.enter(pageOptions, charge.StateOptions)
	case ChoiceHighScores:
		a.scores = NewScoreboardModel(a.svc, charge.ModeRun, a.config.ScreenW, a.config.ScreenH)
		a.enter(pageScores, charge.StateTitle)
	case ChoiceCredits:
		a.enter(pageCredits, charge.StateCredits)
	case ChoiceQuit:
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, _ := a.options.Update(msg)
	a.options = updated.(OptionsModel)
	if a.options.Done() {
		a.svc.SaveSettings()
		a.enter(pageTitle, charge.StateTitle)
	}
	return a, nil
}

func (a App) updateCredits(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch a.menu.keyMapper.MapKeyToMenuAction(km) {
		case MenuActionBack, MenuActionSelect:
			a.enter(pageTitle, charge.StateTitle)
		case MenuActionQuit:
			a.quitting = true
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.scores.Update(msg)
	a.scores = updated.(ScoreboardModel)
	if a.scores.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.scores.IsGoingBack() {
		a.enter(pageTitle, charge.StateTitle)
		return a, nil
	}
	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, _ := a.game.Update(msg)
	gm := updated.(GameModel)
	a.game = &gm

	if gm.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if gm.BackToMenu() {
		a.game = nil
		a.enter(pageTitle, charge.StateTitle)
		a.backdrop.World().EnterMenu(charge.StateTitle)
	}

	if _, ok := msg.(TickMsg); ok {
		return a, tickCmd(a.config.TickRate)
	}
	return a, nil
}

// startGame creates the mode and switches to it without a second tick loop.
func (a App) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		a.svc.logger().Error("could not create mode", "mode", id, "error", err)
		return a, nil
	}

	cfg := a.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewGameModel(game, a.svc, cfg)
	gm.game.Reset(gm.config)
	a.game = &gm
	a.page = pageGame
	return a, nil
}

// enter switches page and puts the backdrop world in the matching state.
func (a *App) enter(p page, s charge.State) {
	a.page = p
	a.backdrop.World().SetState(s)
}

// View renders the current page.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.page {
	case pageGame:
		if a.game != nil {
			return a.game.View()
		}
	case pageScores:
		return a.scores.View()
	}

	a.backdrop.Render(a.canvas)
	switch a.page {
	case pageTitle:
		a.menu.Draw(a.canvas)
	case pageOptions:
		a.options.Draw(a.canvas)
	case pageCredits:
		drawCredits(a.canvas)
	}
	return RenderScreen(a.canvas)
}

// RunApp runs the full menu-driven app in the local terminal.
func RunApp(svc *Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewApp(svc, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
