package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catcher/internal/core"
)

func TestRenderHUD(t *testing.T) {
	s := newTestSession()
	s.score = 4
	s.lives = 2
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Score: 4", "Lives: 2", "Level: 1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestRenderCatcherAndObjects(t *testing.T) {
	s := newTestSession()
	s.objects = []FallingObject{{X: 400, Y: 300, Size: 30, Speed: 3}}
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	// 80 columns over 800 units, 23 rows over 600 units below the HUD
	fruit := screen.GetCell(40, 12)
	if fruit.Rune != FruitChar || fruit.Color != core.ColorRed {
		t.Errorf("cell (40, 12) = %+v, expected red fruit", fruit)
	}

	basketCells := 0
	for x := 0; x < screen.Width(); x++ {
		if c := screen.GetCell(x, 22); c.Rune == BasketChar && c.Color == core.ColorBrown {
			basketCells++
		}
	}
	if basketCells != 10 {
		t.Errorf("basket row has %d cells, expected 10", basketCells)
	}
}

func TestRenderStemKeepsFruitAbove(t *testing.T) {
	s := newTestSession()
	// The lower fruit's stem lands on the upper fruit's row.
	s.objects = []FallingObject{
		{X: 400, Y: 270, Size: 30, Speed: 3},
		{X: 400, Y: 300, Size: 30, Speed: 3},
	}
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	tests := []struct {
		y    int
		want rune
	}{
		{10, StemChar},
		{11, FruitChar},
		{12, FruitChar},
	}
	for _, tt := range tests {
		if got := screen.Get(40, tt.y); got != tt.want {
			t.Errorf("Get(40, %d) = %q, expected %q", tt.y, got, tt.want)
		}
	}
}

func TestRenderSkipsObjectsAboveField(t *testing.T) {
	s := newTestSession()
	s.objects = []FallingObject{{X: 400, Y: -20, Size: 30, Speed: 3}}
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	if strings.ContainsRune(screen.String(), FruitChar) {
		t.Error("object above the playfield should not be drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSession()
	s.score = 7
	s.lives = 0
	s.gameOver = true
	screen := core.NewScreen(80, 24)

	s.Render(screen)

	out := screen.String()
	for _, want := range []string{"GAME OVER", "Final Score: 7", "Press SPACE to play again or ESC to quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if strings.ContainsRune(out, BasketChar) {
		t.Error("catcher should be hidden after game over")
	}
	if !strings.Contains(screen.Row(0), "Lives: 0") {
		t.Errorf("HUD should show 0 lives, got %q", screen.Row(0))
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession()
	screen := core.NewScreen(20, 5)

	s.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}
