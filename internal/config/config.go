// Package config provides YAML-based game configuration loading and
// difficulty management for the catcher game.
package config

// CatcherConfig contains all configuration for the catcher game.
// A session copies it at construction and never mutates it.
type CatcherConfig struct {
	Playfield CatcherPlayfield `yaml:"playfield"`
	Catcher   CatcherBasket    `yaml:"catcher"`
	Objects   CatcherObjects   `yaml:"objects"`
	Spawn     CatcherSpawn     `yaml:"spawn"`
	Collision CatcherCollision `yaml:"collision"`
	Session   CatcherSession   `yaml:"session"`
}

// CatcherPlayfield defines the logical playfield size.
// The renderer scales it to the terminal.
type CatcherPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatcherBasket defines the player-controlled catcher.
type CatcherBasket struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal distance per move
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between catcher and floor
}

// CatcherObjects defines the falling objects.
type CatcherObjects struct {
	Size        float64 `yaml:"size"`
	BaseSpeed   float64 `yaml:"base_speed"`   // Fall distance per tick
	SpeedJitter float64 `yaml:"speed_jitter"` // Per-object speed varies by +/- this much
}

// CatcherSpawn defines spawn timing.
type CatcherSpawn struct {
	BaseInterval int        `yaml:"base_interval"` // Ticks between spawns at level 1
	MinInterval  int        `yaml:"min_interval"`  // Floor for the ramped interval
	JitterFrames int        `yaml:"jitter_frames"` // Spawn timer restarts in [-jitter, jitter]
	Ramp         RampConfig `yaml:"ramp"`
}

// RampConfig defines the staircase that shortens the spawn interval over time.
type RampConfig struct {
	Enabled bool `yaml:"enabled"`
	Period  int  `yaml:"period"` // Ticks per difficulty level
	Step    int  `yaml:"step"`   // Interval reduction per level
}

// CatcherCollision defines catch tolerance.
type CatcherCollision struct {
	Margin float64 `yaml:"margin"` // Catcher hitbox grows by this much on every side
}

// CatcherSession defines per-session bookkeeping.
type CatcherSession struct {
	Lives int `yaml:"lives"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
