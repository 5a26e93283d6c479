package game

// Snapshot captures the complete game state for determinism testing and rendering.
type Snapshot struct {
	Phase           Phase
	Score           int
	Lives           int
	Level           int
	SpawnTimer      int
	DifficultyTimer int
	Interval        int
	Catcher         Catcher
	Objects         []FallingObject
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:           s.Phase(),
		Score:           s.score,
		Lives:           s.lives,
		Level:           s.spawner.Level(),
		SpawnTimer:      s.spawner.SpawnTimer(),
		DifficultyTimer: s.spawner.DifficultyTimer(),
		Interval:        s.spawner.Interval(),
		Catcher:         s.catcher,
		Objects:         s.Objects(),
	}
}
