package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
)

// minFallSpeed keeps Speed positive if a config slips past validation.
const minFallSpeed = 0.01

// FallingObject is a single object dropping toward the floor.
type FallingObject struct {
	X     float64 // Center
	Y     float64 // Center
	Size  float64 // Side of the square hitbox
	Speed float64 // Fall distance per tick, fixed at spawn
}

// newFallingObject creates an object just above the visible area at a random column.
// It draws from rng twice: column first, then speed.
func newFallingObject(rng *rand.Rand, cfg config.CatcherConfig) FallingObject {
	size := cfg.Objects.Size

	lo := int(math.Ceil(size))
	hi := int(math.Floor(cfg.Playfield.Width - size))
	x := cfg.Playfield.Width / 2
	if hi >= lo {
		x = float64(lo + rng.Intn(hi-lo+1))
	}

	jitter := cfg.Objects.SpeedJitter
	speed := cfg.Objects.BaseSpeed + (rng.Float64()*2-1)*jitter
	if speed < minFallSpeed {
		speed = minFallSpeed
	}

	return FallingObject{
		X:     x,
		Y:     -size,
		Size:  size,
		Speed: speed,
	}
}

// Advance moves the object down by one tick.
func (o *FallingObject) Advance() {
	o.Y += o.Speed
}

// Expired reports whether the object has fallen past the floor.
func (o FallingObject) Expired(floor float64) bool {
	return o.Y > floor
}

// Bounds returns the object's square hitbox.
func (o FallingObject) Bounds() core.Box {
	return core.CenteredBox(o.X, o.Y, o.Size, o.Size)
}
