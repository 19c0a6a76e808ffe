package config

import "math"

// DifficultyManager derives scroll speed and spawn pacing from the score.
type DifficultyManager struct {
	speed   RunnerSpeed
	spawn   RunnerSpawn
	enabled bool
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg RunnerConfig) *DifficultyManager {
	return &DifficultyManager{
		speed:   cfg.Speed,
		spawn:   cfg.Spawn,
		enabled: cfg.Difficulty.Enabled,
	}
}

// Speed returns the scroll speed for the given score: base + score*perScore.
func (d *DifficultyManager) Speed(score float64) float64 {
	if !d.enabled {
		return d.speed.Base
	}
	return d.speed.Base + score*d.speed.PerScore
}

// SpawnInterval returns the frames until the next obstacle:
// max(base - min(score, cap), floor).
func (d *DifficultyManager) SpawnInterval(score float64) float64 {
	reduction := 0.0
	if d.enabled {
		reduction = math.Min(math.Max(score, 0), d.spawn.Cap)
	}
	return math.Max(d.spawn.Base-reduction, d.spawn.Floor)
}
