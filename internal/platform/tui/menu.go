package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/charge/internal/core"
)

// MenuChoice is an entry of the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceTutorial
	ChoiceOptions
	ChoiceHighScores
	ChoiceCredits
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var titleItems = []MenuItem{
	{ChoicePlay, "Play"},
	{ChoiceTutorial, "Tutorial"},
	{ChoiceOptions, "Options"},
	{ChoiceHighScores, "High Scores"},
	{ChoiceCredits, "Credits"},
	{ChoiceQuit, "Quit"},
}

const titleBanner = "C H A R G E"

// MenuModel is the title menu. It only tracks the cursor; the App acts
// on the selection.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	sound     core.SoundPlayer
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates the title menu.
func NewMenuModel(sound core.SoundPlayer, width, height int) MenuModel {
	if sound == nil {
		sound = core.NopSound{}
	}
	return MenuModel{
		items:     titleItems,
		width:     width,
		height:    height,
		sound:     sound,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.selected = ChoiceQuit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
		m.sound.Play(core.SoundMenu)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)
		m.sound.Play(core.SoundMenu)

	case MenuActionSelect:
		m.selected = m.items[m.cursor].Choice
		m.sound.Play(core.SoundMenu)
	}

	return m, nil
}

// Draw overlays the menu onto dst, usually above the scrolling backdrop.
func (m MenuModel) Draw(dst *core.Screen) {
	top := core.Max(1, dst.Height()/2-len(m.items)-2)

	dst.DrawTextCenteredColor(top, titleBanner, core.ColorBrightCyan)
	for i, item := range m.items {
		line := "  " + item.Title + "  "
		color := core.ColorWhite
		if i == m.cursor {
			line = "> " + item.Title + " <"
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColor(top+2+i*2, line, color)
	}

	dst.DrawTextCenteredColor(dst.Height()-1, "Up/Down: Navigate  |  Enter: Select  |  Q: Quit", core.ColorGray)
}

// View renders the menu without a backdrop.
func (m MenuModel) View() string {
	screen := core.NewScreen(m.width, m.height)
	m.Draw(screen)
	return RenderScreen(screen)
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
