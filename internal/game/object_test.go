package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-catcher/internal/config"
)

func TestNewFallingObjectRanges(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		o := newFallingObject(rng, cfg)

		if o.X < 30 || o.X > 770 {
			t.Fatalf("spawn %d: X = %v outside [30, 770]", i, o.X)
		}
		if o.X != math.Trunc(o.X) {
			t.Fatalf("spawn %d: X = %v should be a whole number", i, o.X)
		}
		if o.Y != -30 {
			t.Fatalf("spawn %d: Y = %v, expected -30", i, o.Y)
		}
		if o.Speed < 2.5 || o.Speed > 3.5 {
			t.Fatalf("spawn %d: Speed = %v outside [2.5, 3.5]", i, o.Speed)
		}
	}
}

func TestNewFallingObjectSpeedStaysPositive(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Objects.BaseSpeed = 0.1
	cfg.Objects.SpeedJitter = 0.5
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		if o := newFallingObject(rng, cfg); o.Speed <= 0 {
			t.Fatalf("spawn %d: Speed = %v, expected > 0", i, o.Speed)
		}
	}
}

func TestFallingObjectAdvance(t *testing.T) {
	o := FallingObject{X: 100, Y: -30, Size: 30, Speed: 3}

	prev := o.Y
	for i := 0; i < 10; i++ {
		o.Advance()
		if o.Y <= prev {
			t.Fatalf("step %d: Y = %v did not increase from %v", i, o.Y, prev)
		}
		prev = o.Y
	}
	if o.Y != 0 {
		t.Errorf("Y = %v after 10 steps, expected 0", o.Y)
	}
}

func TestFallingObjectExpired(t *testing.T) {
	tests := []struct {
		y        float64
		expected bool
	}{
		{599, false},
		{600, false}, // on the floor is not past it
		{601, true},
	}

	for _, tc := range tests {
		o := FallingObject{X: 100, Y: tc.y, Size: 30, Speed: 3}
		if got := o.Expired(600); got != tc.expected {
			t.Errorf("Expired() at y=%v = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestFallingObjectBounds(t *testing.T) {
	o := FallingObject{X: 400, Y: 595, Size: 30, Speed: 3}
	b := o.Bounds()

	if b.X != 385 || b.Y != 580 || b.W != 30 || b.H != 30 {
		t.Errorf("Bounds() = %+v, expected {385 580 30 30}", b)
	}
}
