package game

import (
	"testing"

	"github.com/vovakirdan/tui-catcher/internal/core"
)

// catcherBox spans x 350..450, y 550..590 like a fresh default session.
var catcherBox = core.NewBox(350, 550, 100, 40)

func TestResolveCatch(t *testing.T) {
	r := NewResolver(5, 600)
	objects := []FallingObject{{X: 400, Y: 595, Size: 30, Speed: 3}}

	res := r.Resolve(objects, catcherBox)

	if res.Caught != 1 || res.Missed != 0 {
		t.Errorf("Caught/Missed = %d/%d, expected 1/0", res.Caught, res.Missed)
	}
	if len(res.Survivors) != 0 {
		t.Errorf("expected no survivors, got %d", len(res.Survivors))
	}
}

func TestResolveMiss(t *testing.T) {
	r := NewResolver(5, 600)
	objects := []FallingObject{{X: 100, Y: 601, Size: 30, Speed: 3}}

	res := r.Resolve(objects, catcherBox)

	if res.Caught != 0 || res.Missed != 1 {
		t.Errorf("Caught/Missed = %d/%d, expected 0/1", res.Caught, res.Missed)
	}
	if len(res.Survivors) != 0 {
		t.Errorf("expected no survivors, got %d", len(res.Survivors))
	}
}

func TestResolveCatchBeatsFloor(t *testing.T) {
	r := NewResolver(5, 600)
	// Past the floor but its top edge (586) still reaches the expanded catcher (bottom 595)
	objects := []FallingObject{{X: 400, Y: 601, Size: 30, Speed: 3}}

	res := r.Resolve(objects, catcherBox)

	if res.Caught != 1 || res.Missed != 0 {
		t.Errorf("Caught/Missed = %d/%d, expected 1/0", res.Caught, res.Missed)
	}
}

func TestResolveMarginIsEdgeInclusive(t *testing.T) {
	r := NewResolver(5, 600)

	tests := []struct {
		name   string
		obj    FallingObject
		caught bool
	}{
		// Expanded hitbox starts at x=345; object right edge = X + 15
		{"touching left edge", FallingObject{X: 330, Y: 570, Size: 30, Speed: 3}, true},
		{"just outside left edge", FallingObject{X: 329.5, Y: 570, Size: 30, Speed: 3}, false},
		// Expanded hitbox ends at x=455; object left edge = X - 15
		{"touching right edge", FallingObject{X: 470, Y: 570, Size: 30, Speed: 3}, true},
		// Expanded hitbox starts at y=545; object bottom edge = Y + 15
		{"touching top edge", FallingObject{X: 400, Y: 530, Size: 30, Speed: 3}, true},
		{"above the hitbox", FallingObject{X: 400, Y: 529, Size: 30, Speed: 3}, false},
		// Inside the margin but outside the raw catcher
		{"within margin only", FallingObject{X: 342, Y: 570, Size: 10, Speed: 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := r.Resolve([]FallingObject{tc.obj}, catcherBox)
			if got := res.Caught == 1; got != tc.caught {
				t.Errorf("caught = %v, expected %v", got, tc.caught)
			}
			if !tc.caught && len(res.Survivors) != 1 {
				t.Errorf("uncaught object should survive, got %d survivors", len(res.Survivors))
			}
		})
	}
}

func TestResolveKeepsOrderAndInput(t *testing.T) {
	r := NewResolver(5, 600)
	objects := []FallingObject{
		{X: 100, Y: 100, Size: 30, Speed: 3},
		{X: 400, Y: 595, Size: 30, Speed: 3}, // caught
		{X: 200, Y: 200, Size: 30, Speed: 3},
		{X: 700, Y: 650, Size: 30, Speed: 3}, // missed
		{X: 300, Y: 300, Size: 30, Speed: 3},
	}
	original := make([]FallingObject, len(objects))
	copy(original, objects)

	res := r.Resolve(objects, catcherBox)

	if res.Caught != 1 || res.Missed != 1 {
		t.Errorf("Caught/Missed = %d/%d, expected 1/1", res.Caught, res.Missed)
	}

	expected := []float64{100, 200, 300}
	if len(res.Survivors) != len(expected) {
		t.Fatalf("got %d survivors, expected %d", len(res.Survivors), len(expected))
	}
	for i, x := range expected {
		if res.Survivors[i].X != x {
			t.Errorf("survivor %d X = %v, expected %v", i, res.Survivors[i].X, x)
		}
	}

	for i := range objects {
		if objects[i] != original[i] {
			t.Errorf("input object %d modified: %+v", i, objects[i])
		}
	}
}
