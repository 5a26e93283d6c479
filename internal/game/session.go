// Package game implements the catcher game: a basket slides along the floor
// catching objects that fall from the top of the playfield.
//
// The package is pure simulation. It has no clock and no terminal; the
// platform calls Step once per tick and reads state back for rendering.
package game

import (
	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
)

// Phase is the session's position in the play/game-over cycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the complete state of one game.
// It is not safe for concurrent use; a renderer may read it between steps.
type Session struct {
	cfg      config.CatcherConfig
	catcher  Catcher
	objects  []FallingObject // Spawn order
	spawner  *Spawner
	resolver Resolver
	score    int
	lives    int
	gameOver bool
}

// New creates a session from an immutable configuration and starts it.
func New(cfg config.CatcherConfig, seed int64) *Session {
	s := &Session{
		cfg:      cfg,
		spawner:  NewSpawner(cfg, seed),
		resolver: NewResolver(cfg.Collision.Margin, cfg.Playfield.Height),
	}
	s.Reset(seed)
	return s
}

// Reset starts a fresh game: centered catcher, no objects, zero score,
// full lives and both timers at zero.
func (s *Session) Reset(seed int64) {
	s.catcher = NewCatcher(s.cfg)
	s.objects = s.objects[:0]
	s.spawner.Reset(seed)
	s.score = 0
	s.lives = s.cfg.Session.Lives
	s.gameOver = false
}

// Step advances the game by one tick.
// Left is applied before right when both are pressed.
// After game over Step changes nothing until Reset.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.gameOver {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionLeft) {
		s.catcher.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.catcher.MoveRight()
	}

	result := core.StepResult{}
	if obj, ok := s.spawner.Update(); ok {
		s.objects = append(s.objects, obj)
		result.Spawned = 1
	}

	for i := range s.objects {
		s.objects[i].Advance()
	}

	res := s.resolver.Resolve(s.objects, s.catcher.Bounds())
	s.objects = res.Survivors
	s.score += res.Caught
	s.lives -= res.Missed
	if s.lives <= 0 {
		s.gameOver = true
	}

	result.Caught = res.Caught
	result.Missed = res.Missed
	result.State = s.State()
	return result
}

// Advance runs one step for any positive dt; the simulation is tick based,
// so larger values are clamped to a single step. dt <= 0 is a no-op.
func (s *Session) Advance(in core.InputFrame, dt int) core.StepResult {
	if dt <= 0 {
		return core.StepResult{State: s.State()}
	}
	return s.Step(in)
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		Level:    s.spawner.Level(),
		GameOver: s.gameOver,
	}
}

// Phase returns whether the session is playing or over.
func (s *Session) Phase() Phase {
	if s.gameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// Catcher returns a copy of the catcher.
func (s *Session) Catcher() Catcher {
	return s.catcher
}

// Objects returns a copy of the live objects in spawn order.
func (s *Session) Objects() []FallingObject {
	out := make([]FallingObject, len(s.objects))
	copy(out, s.objects)
	return out
}

// Score returns the number of objects caught.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Level returns the 1-based difficulty level.
func (s *Session) Level() int {
	return s.spawner.Level()
}

// GameOver reports whether the session has run out of lives.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.CatcherConfig {
	return s.cfg
}
