package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its rendering and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Difficulty level, starting at 1
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Session.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State   GameState
	Spawned int // Objects spawned this tick
	Caught  int // Objects caught this tick
	Missed  int // Objects that reached the floor this tick
}
