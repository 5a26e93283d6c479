package game

import (
	"fmt"

	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Visual characters for rendering
const (
	BasketChar = '█'
	FruitChar  = '●'
	StemChar   = '╻'
)

// Smallest terminal the playfield can be drawn into.
const (
	minScreenW = 46
	minScreenH = 8
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps playfield coordinates to screen cells.
type viewport struct {
	top        int
	cols, rows float64 // Screen area below the HUD
	pfW, pfH   float64
}

func newViewport(s *Session, dst *core.Screen) viewport {
	return viewport{
		top:  hudRows,
		cols: float64(dst.Width()),
		rows: float64(dst.Height() - hudRows),
		pfW:  s.cfg.Playfield.Width,
		pfH:  s.cfg.Playfield.Height,
	}
}

func (v viewport) col(x float64) int {
	return int(x * v.cols / v.pfW)
}

func (v viewport) row(y float64) int {
	if y < 0 {
		return v.top - 1 // Above the playfield
	}
	return v.top + int(y*v.rows/v.pfH)
}

// Render draws the current game state to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	if !s.gameOver {
		v := newViewport(s, dst)
		for _, o := range s.objects {
			s.drawObject(dst, v, o)
		}
		s.drawCatcher(dst, v)
	}

	s.drawHUD(dst)

	if s.gameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d", s.score),
			"Press SPACE to play again or ESC to quit")
	}
}

// drawCatcher renders the basket as a filled block.
func (s *Session) drawCatcher(dst *core.Screen, v viewport) {
	b := s.catcher.Bounds()
	x0, x1 := v.col(b.X), v.col(b.Right())
	y0, y1 := v.row(b.Y), v.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		dst.DrawHLine(x0, y, x1-x0, BasketChar, core.ColorBrown)
	}
}

// drawObject renders a fruit at its center cell with a stem above it.
// A stem never covers another fruit.
func (s *Session) drawObject(dst *core.Screen, v viewport, o FallingObject) {
	b := o.Bounds()
	x, y := b.Center()
	cx, cy := v.col(x), v.row(y)
	if cy >= v.top {
		dst.SetColored(cx, cy, FruitChar, core.ColorRed)
	}

	stemY := v.row(b.Y)
	if stemY < cy && stemY >= v.top && dst.Get(cx, stemY) != FruitChar {
		dst.SetColored(cx, stemY, StemChar, core.ColorGreen)
	}
}

// drawHUD renders score, lives and level on the top row.
func (s *Session) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.score), core.ColorYellow)
	dst.DrawTextColored(16, 0, fmt.Sprintf(" Lives: %d ", core.Max(s.lives, 0)), core.ColorBrightRed)

	levelText := fmt.Sprintf(" Level: %d ", s.spawner.Level())
	dst.DrawTextColored(dst.Width()-len(levelText)-2, 0, levelText, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW = core.Min(boxW+4, w)
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	for i, l := range lines {
		x := boxX + (boxW-len(l))/2
		dst.DrawText(x, boxY+3+i, l)
	}
}
