package config

import "fmt"

// ValidationError describes a configuration value that cannot produce a playable game.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns the first problem found.
func (c CatcherConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Playfield.Width > 0, "playfield.width", "must be positive"},
		{c.Playfield.Height > 0, "playfield.height", "must be positive"},
		{c.Catcher.Width > 0, "catcher.width", "must be positive"},
		{c.Catcher.Width <= c.Playfield.Width, "catcher.width", "must not exceed playfield.width"},
		{c.Catcher.Height > 0, "catcher.height", "must be positive"},
		{c.Catcher.Speed >= 0, "catcher.speed", "must not be negative"},
		{c.Catcher.BottomMargin >= 0, "catcher.bottom_margin", "must not be negative"},
		{c.Catcher.Height+c.Catcher.BottomMargin <= c.Playfield.Height, "catcher.height", "catcher must fit inside the playfield"},
		{c.Objects.Size > 0, "objects.size", "must be positive"},
		{2*c.Objects.Size <= c.Playfield.Width, "objects.size", "must be at most half of playfield.width"},
		{c.Objects.SpeedJitter >= 0, "objects.speed_jitter", "must not be negative"},
		{c.Objects.BaseSpeed-c.Objects.SpeedJitter > 0, "objects.base_speed", "must exceed objects.speed_jitter"},
		{c.Spawn.MinInterval >= 1, "spawn.min_interval", "must be at least 1"},
		{c.Spawn.BaseInterval >= c.Spawn.MinInterval, "spawn.base_interval", "must not be below spawn.min_interval"},
		{c.Spawn.JitterFrames >= 0, "spawn.jitter_frames", "must not be negative"},
		{!c.Spawn.Ramp.Enabled || c.Spawn.Ramp.Period > 0, "spawn.ramp.period", "must be positive when the ramp is enabled"},
		{c.Spawn.Ramp.Step >= 0, "spawn.ramp.step", "must not be negative"},
		{c.Collision.Margin >= 0, "collision.margin", "must not be negative"},
		{c.Session.Lives >= 1, "session.lives", "must be at least 1"},
	}

	for _, check := range checks {
		if !check.ok {
			return ValidationError{Field: check.field, Message: check.message}
		}
	}
	return nil
}
