package game

import (
	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Resolution is the outcome of resolving one tick of collisions.
type Resolution struct {
	Survivors []FallingObject // Objects still in play, in their original order
	Caught    int
	Missed    int
}

// Resolver tests falling objects against the catcher and the floor.
type Resolver struct {
	margin float64 // Catcher hitbox grows by this much on every side
	floor  float64 // Objects below this y are missed
}

// NewResolver creates a resolver for the given catch tolerance and floor height.
func NewResolver(margin, floor float64) Resolver {
	return Resolver{margin: margin, floor: floor}
}

// Resolve sorts every object into exactly one of caught, missed or surviving.
// A catch wins over a simultaneous floor hit. The input slice is not modified.
func (r Resolver) Resolve(objects []FallingObject, catcher core.Box) Resolution {
	hitbox := catcher.Expand(r.margin)

	res := Resolution{
		Survivors: make([]FallingObject, 0, len(objects)),
	}
	for _, o := range objects {
		switch {
		case o.Bounds().Overlaps(hitbox):
			res.Caught++
		case o.Expired(r.floor):
			res.Missed++
		default:
			res.Survivors = append(res.Survivors, o)
		}
	}
	return res
}
