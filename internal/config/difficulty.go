package config

// Ramp computes the spawn interval for a given tick count.
// The interval drops by Step every Period ticks and never goes below MinInterval.
type Ramp struct {
	cfg          RampConfig
	baseInterval int
	minInterval  int
}

// NewRamp creates a ramp from the spawn configuration.
func NewRamp(spawn CatcherSpawn) Ramp {
	return Ramp{
		cfg:          spawn.Ramp,
		baseInterval: spawn.BaseInterval,
		minInterval:  spawn.MinInterval,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (r Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Period > 0
}

// Stage returns how many full ramp periods have elapsed.
func (r Ramp) Stage(ticks int) int {
	if !r.IsEnabled() || ticks < 0 {
		return 0
	}
	return ticks / r.cfg.Period
}

// Interval returns the effective spawn interval after the given number of ticks.
func (r Ramp) Interval(ticks int) int {
	interval := r.baseInterval - r.Stage(ticks)*r.cfg.Step
	if interval < r.minInterval {
		interval = r.minInterval
	}
	return interval
}

// Level returns the 1-based difficulty level shown to the player.
func (r Ramp) Level(ticks int) int {
	return 1 + r.Stage(ticks)
}
