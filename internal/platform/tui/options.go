package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/charge/internal/core"
)

const (
	optionVolume = iota
	optionClearScores
	optionCount
)

const (
	clearScoresText   = "Clear High Scores"
	scoresClearedText = "High Scores Cleared"
	volumeBarWidth    = 20
)

// OptionsModel edits the master volume and clears the high-score table.
// Settings are saved by the App when the player leaves the screen.
type OptionsModel struct {
	svc       *Services
	cursor    int
	cleared   bool // Clearing is one shot per visit
	keyMapper *KeyMapper
	done      bool
}

// NewOptionsModel creates the options screen.
func NewOptionsModel(svc *Services) OptionsModel {
	return OptionsModel{svc: svc, keyMapper: NewKeyMapper()}
}

// Init initializes the options model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the options screen.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	sound := m.svc.Player()
	switch m.keyMapper.MapKeyToMenuAction(km) {
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + optionCount) % optionCount
		sound.Play(core.SoundMenu)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % optionCount
		sound.Play(core.SoundMenu)
	case MenuActionLeft:
		if m.cursor == optionVolume {
			m.svc.AdjustVolume(-VolumeStep)
			sound.Play(core.SoundMenu)
		}
	case MenuActionRight:
		if m.cursor == optionVolume {
			m.svc.AdjustVolume(VolumeStep)
			sound.Play(core.SoundMenu)
		}
	case MenuActionSelect:
		if m.cursor == optionClearScores && !m.cleared {
			m.svc.ClearHighScores()
			m.cleared = true
			sound.Play(core.SoundMenu)
		}
	case MenuActionBack, MenuActionQuit:
		m.done = true
	}

	return m, nil
}

// Draw overlays the options onto dst.
func (m OptionsModel) Draw(dst *core.Screen) {
	top := core.Max(1, dst.Height()/2-4)
	dst.DrawTextCenteredColor(top, "OPTIONS", core.ColorBrightCyan)

	vol := m.svc.Volume()
	filled := int(vol*volumeBarWidth + 0.5)
	bar := fmt.Sprintf("Master Volume: [%s%s] %3.0f%%",
		strings.Repeat("#", filled), strings.Repeat("-", volumeBarWidth-filled), vol*100)
	dst.DrawTextCenteredColor(top+2, bar, m.itemColor(optionVolume))

	clear := clearScoresText
	if m.cleared {
		clear = scoresClearedText
	}
	dst.DrawTextCenteredColor(top+4, clear, m.itemColor(optionClearScores))

	dst.DrawTextCenteredColor(dst.Height()-1, "Left/Right: Volume  |  Enter: Select  |  Esc: Back", core.ColorGray)
}

func (m OptionsModel) itemColor(i int) core.Color {
	if i == m.cursor {
		return core.ColorBrightYellow
	}
	return core.ColorWhite
}

// View renders the options without a backdrop.
func (m OptionsModel) View() string {
	screen := core.NewScreen(60, 12)
	m.Draw(screen)
	return RenderScreen(screen)
}

// Done reports whether the player left the screen.
func (m OptionsModel) Done() bool {
	return m.done
}

// creditLines are shown on the credits screen.
var creditLines = []string{
	"CREDITS",
	"",
	"Charge: an endless runner where your charge is your speed.",
	"Keep ahead of the back barrier without outrunning the front one.",
	"",
	"Built with Bubble Tea, Lip Gloss, Wish and beep.",
	"",
	"Press Esc to return",
}

// drawCredits overlays the credits onto dst.
func drawCredits(dst *core.Screen) {
	top := core.Max(1, (dst.Height()-len(creditLines))/2)
	for i, line := range creditLines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightCyan
		}
		dst.DrawTextCenteredColor(top+i, line, color)
	}
}
