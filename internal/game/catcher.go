package game

import (
	"math"

	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Catcher is the player-controlled basket sliding along the bottom of the playfield.
type Catcher struct {
	X      float64 // Left edge
	Y      float64 // Top edge, fixed for the session
	Width  float64
	Height float64
	Speed  float64 // Distance per move
	maxX   float64
}

// NewCatcher creates a catcher centered horizontally, resting above the floor.
func NewCatcher(cfg config.CatcherConfig) Catcher {
	pf := cfg.Playfield
	c := cfg.Catcher
	return Catcher{
		X:      math.Floor(pf.Width/2) - math.Floor(c.Width/2),
		Y:      pf.Height - c.Height - c.BottomMargin,
		Width:  c.Width,
		Height: c.Height,
		Speed:  c.Speed,
		maxX:   pf.Width - c.Width,
	}
}

// MoveLeft shifts the catcher left by its speed, stopping at the left wall.
func (c *Catcher) MoveLeft() {
	c.X = core.ClampF(c.X-c.Speed, 0, c.maxX)
}

// MoveRight shifts the catcher right by its speed, stopping at the right wall.
func (c *Catcher) MoveRight() {
	c.X = core.ClampF(c.X+c.Speed, 0, c.maxX)
}

// Bounds returns the catcher's rectangle in playfield coordinates.
func (c Catcher) Bounds() core.Box {
	return core.NewBox(c.X, c.Y, c.Width, c.Height)
}
