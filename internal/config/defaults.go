package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default catcher configuration.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Playfield: CatcherPlayfield{
			Width:  800,
			Height: 600,
		},
		Catcher: CatcherBasket{
			Width:        100,
			Height:       40,
			Speed:        12,
			BottomMargin: 10,
		},
		Objects: CatcherObjects{
			Size:        30,
			BaseSpeed:   3.0,
			SpeedJitter: 0.5,
		},
		Spawn: CatcherSpawn{
			BaseInterval: 60,
			MinInterval:  30,
			JitterFrames: 10,
			Ramp: RampConfig{
				Enabled: true,
				Period:  300,
				Step:    5,
			},
		},
		Collision: CatcherCollision{
			Margin: 5,
		},
		Session: CatcherSession{
			Lives: 3,
		},
	}
}
