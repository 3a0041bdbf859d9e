package charge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/charge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlatformChar   = '▀'
	BatteryChar    = '◆'
	WallChar       = '▓'
	EnemyLeftChar  = '◄'
	EnemyRightChar = '►'
	EnemyBodyChar  = 'M'
	ProjectileChar = '─'
	BarrierChar    = '║'
	BlastChar      = '∙'
	PixelChar      = '·'
	TrailChar      = '░'
	StarChar       = '.'
	GlowChar       = '▒'
	BarFullChar    = '█'
	BarEmptyChar   = '░'
)

// hudRows is the number of screen rows reserved for the HUD.
const hudRows = 1

// viewport maps world units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(dst *core.Screen, winW, winH int) viewport {
	h := dst.Height() - hudRows
	if h < 1 {
		h = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / float64(winW),
		sy:  float64(h) / float64(winH),
		top: hudRows,
		w:   dst.Width(),
		h:   h,
	}
}

// rect converts a world rectangle to screen cells. Non-empty rectangles
// cover at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0 := int(math.Floor(float64(r.X) * v.sx))
	y0 := int(math.Floor(float64(r.Y) * v.sy))
	x1 := int(math.Ceil(float64(r.Right()) * v.sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(y*v.sy) + v.top
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	vp := newViewport(dst, g.cfg.Window.Width, g.cfg.Window.Height)

	g.drawBackground(dst, vp)
	g.drawGlow(dst, vp)

	for _, p := range w.Platforms {
		g.drawPlatform(dst, vp, p)
	}
	for _, b := range w.Batteries {
		r := vp.rect(b.Pos)
		dst.SetColor(r.X+r.W/2, r.Y+r.H/2, BatteryChar, core.ColorBrightYellow)
	}
	for _, wall := range w.Walls {
		dst.DrawRectColor(vp.rect(wall.Pos), WallChar, core.ColorGray)
	}
	for _, e := range w.Enemies {
		g.drawEnemy(dst, vp, e)
	}
	for _, p := range w.Projectiles {
		dst.DrawRectColor(vp.rect(p.Pos), ProjectileChar, core.ColorBrightCyan)
	}
	for _, fx := range w.Effects {
		g.drawEffect(dst, vp, fx)
	}

	if w.Player != nil && !w.Player.Dead {
		color := core.ColorBrightWhite
		if w.Player.OverchargeActive() {
			color = core.ColorBrightCyan
		}
		dst.DrawRectColor(vp.rect(w.Player.Pos), PlayerChar, color)
	}
	for _, b := range []*Barrier{w.Back, w.Front} {
		if b != nil {
			r := vp.rect(b.Pos)
			dst.DrawRectColor(core.NewRect(r.X+r.W/2, r.Y, 1, r.H), BarrierChar, core.ColorRed)
		}
	}

	if w.State().Menu() {
		return
	}
	g.drawHUD(dst)

	switch s := w.State(); {
	case s == StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case s == StateGameOver:
		g.drawGameOver(dst)
	case s.Tutorial():
		dst.DrawTextCenteredColor(hudRows+1, s.TutorialPrompt(), core.ColorBrightYellow)
	}
}

// drawBackground scrolls a sparse star field at the parallax offset.
func (g *Game) drawBackground(dst *core.Screen, vp viewport) {
	const stars = 40
	span := float64(g.cfg.Window.Width)
	off := math.Mod(g.world.Background, span)
	for i := 0; i < stars; i++ {
		wx := math.Mod(float64(i*397)+span-off, span)
		wy := float64((i * 173) % g.cfg.Window.Height)
		x, y := vp.point(wx, wy)
		dst.SetColor(x, y, StarChar, core.ColorDarkGray)
	}
}

// drawGlow shades the screen edges as a barrier closes in.
func (g *Game) drawGlow(dst *core.Screen, vp viewport) {
	back, front := g.world.GlowOpacity()
	width := vp.w / 7
	for _, side := range []struct {
		opacity float64
		left    bool
	}{{back, true}, {front, false}} {
		cols := int(math.Round(side.opacity * float64(width)))
		for i := 0; i < cols; i++ {
			x := i
			if !side.left {
				x = vp.w - 1 - i
			}
			dst.DrawRectColor(core.NewRect(x, vp.top, 1, vp.h), GlowChar, core.ColorRed)
		}
	}
}

func (g *Game) drawPlatform(dst *core.Screen, vp viewport, p *Platform) {
	r := vp.rect(p.Pos)
	dst.DrawRectColor(core.NewRect(r.X, r.Y, r.W, 1), PlatformChar, p.Color)
}

func (g *Game) drawEnemy(dst *core.Screen, vp viewport, e *Enemy) {
	r := vp.rect(e.Pos)
	dst.DrawRectColor(r, EnemyBodyChar, core.ColorRed)
	face := EnemyLeftChar
	x := r.X
	if e.FacingRight() {
		face = EnemyRightChar
		x = r.Right() - 1
	}
	dst.SetColor(x, r.Y, face, core.ColorBrightRed)
}

func (g *Game) drawEffect(dst *core.Screen, vp viewport, fx Effect) {
	switch e := fx.(type) {
	case *Blast:
		g.drawBlast(dst, vp, e)
	case *Burst:
		for _, px := range e.Pixels {
			x, y := vp.point(float64(e.Pos.X+px.DX), float64(e.Pos.Y+px.DY))
			dst.SetColor(x, y, PixelChar, px.Color)
		}
	case *Trail:
		x, y := vp.point(float64(e.Pos.X), float64(e.Pos.Y))
		dst.SetColor(x, y, TrailChar, core.ColorCyan)
	}
}

// drawBlast outlines the blast circle, one cell thick.
func (g *Game) drawBlast(dst *core.Screen, vp viewport, b *Blast) {
	c := b.Circle
	cellW := 1 / vp.sx
	cellH := 1 / vp.sy
	band := math.Max(cellW, cellH)
	for y := 0; y < vp.h; y++ {
		wy := (float64(y) + 0.5) * cellH
		for x := 0; x < vp.w; x++ {
			wx := (float64(x) + 0.5) * cellW
			d := math.Hypot(wx-c.X, wy-c.Y)
			if math.Abs(d-c.Radius) <= band/2 {
				dst.SetColor(x, y+vp.top, BlastChar, core.ColorBrightBlue)
			}
		}
	}
}

// drawHUD draws the charge bar, ability cooldown and score.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	const barWidth = 20

	level := w.CurrentLevel()
	bg, fg := w.BarColors()
	filled := int(math.Round(w.LevelChargePercent() * barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	x := 1
	dst.DrawText(x, 0, "Charge ")
	x += len("Charge ")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			dst.SetColor(x+i, 0, BarFullChar, fg)
		} else {
			dst.SetColor(x+i, 0, BarEmptyChar, bg)
		}
	}
	x += barWidth + 1
	levelText := fmt.Sprintf("L%d %3.0f", level, w.Charge())
	dst.DrawTextColor(x, 0, levelText, w.PlatformColor())
	x += len(levelText) + 2

	remaining, total := w.Cooldown()
	icons := abilityIcons(remaining, total)
	iconColor := core.ColorBrightGreen
	if remaining > 0 {
		iconColor = core.ColorDarkGray
	}
	dst.DrawTextColor(x, 0, icons, iconColor)

	scoreText := fmt.Sprintf(" Score: %d ", w.Score())
	dst.DrawText(dst.Width()-len(scoreText)-1, 0, scoreText)
}

// abilityIcons returns the ability labels with a cooldown countdown.
func abilityIcons(remaining, total float64) string {
	var sb strings.Builder
	sb.WriteString("[A]Blast [S]Shot [D]Over")
	if remaining > 0 && total > 0 {
		fmt.Fprintf(&sb, " %.1fs", remaining)
	}
	return sb.String()
}

// drawGameOver shows the final score over the leaderboard, when one is set.
func (g *Game) drawGameOver(dst *core.Screen) {
	footer := "R restart  |  B title"
	score := fmt.Sprintf("Score: %d", g.world.Score())
	if len(g.board) == 0 {
		drawCenteredMessage(dst, "GAME OVER", score+"  |  "+footer)
		return
	}

	lines := make([]string, len(g.board))
	boxW := len(footer)
	for i, s := range g.board {
		lines[i] = fmt.Sprintf("%2d: %d", i+1, s)
		boxW = core.Max(boxW, len(lines[i]))
	}
	boxW += 4
	boxH := len(lines) + 7
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max(hudRows, (dst.Height()-boxH)/2)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	title := "GAME OVER"
	titleColor := core.ColorBrightWhite
	if g.boardRank == 0 {
		title = "New High Score!"
		titleColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawText(boxX+(boxW-len(score))/2, boxY+2, score)

	for i, line := range lines {
		c := core.ColorWhite
		if i == g.boardRank {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColor(boxX+2, boxY+4+i, line, c)
	}
	dst.DrawText(boxX+(boxW-len(footer))/2, boxY+boxH-2, footer)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
