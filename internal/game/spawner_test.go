package game

import (
	"testing"

	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
)

func TestSpawnerFirstSpawn(t *testing.T) {
	s := NewSpawner(config.DefaultCatcherConfig(), 1)

	for tick := 1; tick < 60; tick++ {
		if _, ok := s.Update(); ok {
			t.Fatalf("unexpected spawn at tick %d", tick)
		}
	}

	if _, ok := s.Update(); !ok {
		t.Fatal("expected spawn at tick 60")
	}
	if s.DifficultyTimer() != 60 {
		t.Errorf("DifficultyTimer() = %d, expected 60", s.DifficultyTimer())
	}
	if timer := s.SpawnTimer(); timer < -10 || timer > 10 {
		t.Errorf("SpawnTimer() = %d after spawn, expected within [-10, 10]", timer)
	}
}

func TestSpawnerTimerRestartsAtJitter(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := NewSpawner(config.DefaultCatcherConfig(), seed)

		// First spawn at tick 60
		for i := 0; i < 60; i++ {
			s.Update()
		}
		baseline := s.SpawnTimer()

		// The next spawn comes when the timer climbs from its baseline to the interval
		wait := 60 - baseline
		for i := 1; i < wait; i++ {
			if _, ok := s.Update(); ok {
				t.Fatalf("seed %d: spawn after %d ticks, expected %d", seed, i, wait)
			}
		}
		if _, ok := s.Update(); !ok {
			t.Fatalf("seed %d: expected spawn after %d ticks (baseline %d)", seed, wait, baseline)
		}
	}
}

func TestSpawnerIntervalStaircase(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	s := NewSpawner(cfg, 1)

	for k := 0; k <= 10; k++ {
		s.difficultyTimer = cfg.Spawn.Ramp.Period * k

		expected := core.Max(cfg.Spawn.MinInterval, cfg.Spawn.BaseInterval-k*cfg.Spawn.Ramp.Step)
		if got := s.Interval(); got != expected {
			t.Errorf("k=%d: Interval() = %d, expected %d", k, got, expected)
		}
		if got := s.Level(); got != k+1 {
			t.Errorf("k=%d: Level() = %d, expected %d", k, got, k+1)
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	a := NewSpawner(cfg, 12345)
	b := NewSpawner(cfg, 12345)

	for tick := 0; tick < 3000; tick++ {
		oa, okA := a.Update()
		ob, okB := b.Update()
		if okA != okB || oa != ob {
			t.Fatalf("tick %d: spawners diverged: %+v/%v vs %+v/%v", tick, oa, okA, ob, okB)
		}
	}
}

func TestSpawnerReset(t *testing.T) {
	s := NewSpawner(config.DefaultCatcherConfig(), 5)
	for i := 0; i < 500; i++ {
		s.Update()
	}

	s.Reset(5)

	if s.SpawnTimer() != 0 || s.DifficultyTimer() != 0 {
		t.Errorf("after Reset timers = (%d, %d), expected (0, 0)", s.SpawnTimer(), s.DifficultyTimer())
	}
	if s.Level() != 1 {
		t.Errorf("after Reset Level() = %d, expected 1", s.Level())
	}
}
