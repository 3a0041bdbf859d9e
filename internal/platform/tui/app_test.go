package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/games/charge"
	"github.com/vovakirdan/charge/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := a.Update(msg)
		a = updated.(App)
	}
	return a
}

func TestAppTitleMenu(t *testing.T) {
	a := NewApp(&Services{}, testConfig())
	a = send(t, a, TickMsg{})

	view := a.View()
	if !strings.Contains(view, titleBanner) {
		t.Error("title banner missing")
	}
	for _, item := range titleItems {
		if !strings.Contains(view, item.Title) {
			t.Errorf("menu item %q missing", item.Title)
		}
	}
}

func TestAppFirstPlayRoutesThroughTutorial(t *testing.T) {
	a := NewApp(&Services{}, testConfig())
	a = send(t, a, keyMsg("enter"))

	if a.page != pageGame {
		t.Fatalf("page = %v, expected game", a.page)
	}
	if a.game.game.ID() != charge.ModeTutorial {
		t.Errorf("first play started %q, expected the tutorial", a.game.game.ID())
	}
}

func TestAppPlayAfterTutorial(t *testing.T) {
	svc := &Services{}
	svc.MarkTutorialSeen()

	a := NewApp(svc, testConfig())
	a = send(t, a, keyMsg("enter"))
	if a.game == nil || a.game.game.ID() != charge.ModeRun {
		t.Fatal("expected a normal run")
	}
}

func TestAppTutorialCompletionIsSaved(t *testing.T) {
	svc := &Services{}
	a := NewApp(svc, testConfig())
	a = send(t, a, keyMsg("enter"))

	for _, k := range []string{" ", "a", "s", "d"} {
		a = send(t, a, keyMsg(k), TickMsg{})
	}
	if !svc.TutorialSeen() {
		t.Error("tutorial completion not recorded")
	}
}

func TestAppOptionsAdjustVolume(t *testing.T) {
	svc := &Services{}
	a := NewApp(svc, testConfig())

	// Options is the third entry.
	a = send(t, a, keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	if a.page != pageOptions {
		t.Fatalf("page = %v, expected options", a.page)
	}
	if !strings.Contains(a.View(), "Master Volume") {
		t.Error("options view missing the volume")
	}

	a = send(t, a, keyMsg("right"), keyMsg("right"))
	if v := svc.Volume(); v < 0.59 || v > 0.61 {
		t.Errorf("volume = %v, expected 0.6", v)
	}

	a = send(t, a, keyMsg("esc"))
	if a.page != pageTitle {
		t.Errorf("page = %v, expected title after back", a.page)
	}
}

func TestAppCreditsAndBack(t *testing.T) {
	a := NewApp(&Services{}, testConfig())
	a = send(t, a, keyMsg("up"), keyMsg("up"), keyMsg("enter"))
	if a.page != pageCredits {
		t.Fatalf("page = %v, expected credits", a.page)
	}
	if !strings.Contains(a.View(), "CREDITS") {
		t.Error("credits view missing")
	}
	a = send(t, a, keyMsg("esc"))
	if a.page != pageTitle {
		t.Errorf("page = %v, expected title", a.page)
	}
}

func TestAppGameOverBackToTitle(t *testing.T) {
	svc := newTestServices(t)
	svc.MarkTutorialSeen()

	a := NewApp(svc, testConfig())
	a = send(t, a, keyMsg("enter"))

	w := a.game.game.(*charge.Game).World()
	w.Front.Pos.X = w.Player.Pos.X - 200
	a = send(t, a, TickMsg{})
	if !a.game.gameState.GameOver {
		t.Fatal("expected game over")
	}
	if svc.HighScores.Rank(0) != w.Score() {
		t.Errorf("high score = %d, expected %d", svc.HighScores.Rank(0), w.Score())
	}

	a = send(t, a, keyMsg("b"), TickMsg{})
	if a.page != pageTitle || a.game != nil {
		t.Errorf("page = %v, expected title after leaving game over", a.page)
	}
}

func TestAppQuit(t *testing.T) {
	a := NewApp(&Services{}, testConfig())
	updated, cmd := a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if updated.(App).View() != "" {
		t.Error("quitting app should render nothing")
	}
}

func TestGameModelRecordsOnce(t *testing.T) {
	svc := newTestServices(t)
	game, err := registry.Create(charge.ModeRun)
	if err != nil {
		t.Fatal(err)
	}

	m := NewGameModel(game, svc, testConfig())
	m.Init()
	w := game.(*charge.Game).World()
	w.Front.Pos.X = w.Player.Pos.X - 200

	for range 5 {
		updated, _ := m.Update(TickMsg{})
		m = updated.(GameModel)
	}

	runs, err := svc.Store.TopRuns(charge.ModeRun, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("recorded %d runs, expected 1", len(runs))
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	game, _ := registry.Create(charge.ModeRun)
	m := NewGameModel(game, nil, testConfig())
	m.standalone = true
	m.Init()

	updated, _ := m.Update(keyMsg("p"))
	m = updated.(GameModel)
	updated, _ = m.Update(TickMsg{})
	m = updated.(GameModel)
	if !m.gameState.Paused {
		t.Fatal("expected paused")
	}

	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(GameModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("back while paused should quit a standalone game")
	}
}
