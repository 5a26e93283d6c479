package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-catcher/internal/config"
)

// Spawner decides when a new object enters the playfield.
// After each spawn the timer restarts at a random value in
// [-JitterFrames, JitterFrames] rather than zero, so a negative
// timer means the next spawn is further away.
type Spawner struct {
	rng             *rand.Rand
	cfg             config.CatcherConfig
	ramp            config.Ramp
	spawnTimer      int // Ticks since the post-spawn baseline
	difficultyTimer int // Ticks since reset, drives the ramp
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.CatcherConfig, seed int64) *Spawner {
	s := &Spawner{
		cfg:  cfg,
		ramp: config.NewRamp(cfg.Spawn),
	}
	s.Reset(seed)
	return s
}

// Reset zeroes both timers and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.spawnTimer = 0
	s.difficultyTimer = 0
}

// Update advances both timers by one tick and returns a new object
// when the spawn interval has been reached.
func (s *Spawner) Update() (FallingObject, bool) {
	s.spawnTimer++
	s.difficultyTimer++

	if s.spawnTimer < s.Interval() {
		return FallingObject{}, false
	}

	obj := newFallingObject(s.rng, s.cfg)

	jitter := s.cfg.Spawn.JitterFrames
	s.spawnTimer = s.rng.Intn(2*jitter+1) - jitter

	return obj, true
}

// Interval returns the current effective spawn interval.
func (s *Spawner) Interval() int {
	return s.ramp.Interval(s.difficultyTimer)
}

// Level returns the 1-based difficulty level for display.
func (s *Spawner) Level() int {
	return s.ramp.Level(s.difficultyTimer)
}

// SpawnTimer returns ticks counted toward the next spawn. May be negative.
func (s *Spawner) SpawnTimer() int {
	return s.spawnTimer
}

// DifficultyTimer returns ticks since the last reset.
func (s *Spawner) DifficultyTimer() int {
	return s.difficultyTimer
}
