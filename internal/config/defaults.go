package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Neon Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:        800,
			Height:       400,
			GroundOffset: 60,
		},
		Player: RunnerPlayer{
			X:      80,
			Width:  30,
			Height: 40,
		},
		Physics: RunnerPhysics{
			Gravity:   0.6,
			JumpForce: -11,
		},
		Speed: RunnerSpeed{
			Base:     5,
			PerScore: 0.02,
		},
		Score: RunnerScore{
			PerFrame: 0.1,
		},
		Obstacles: RunnerObstacles{
			MinWidth:      20,
			MaxWidth:      40,
			MinHeight:     30,
			MaxHeight:     60,
			SpawnMargin:   20,
			DespawnMargin: 20,
		},
		Spawn: RunnerSpawn{
			Base:  60,
			Cap:   40,
			Floor: 20,
		},
		Particles: RunnerParticles{
			Count:   10,
			Life:    30,
			Gravity: 0.1,
			SpreadX: 4,
			SpreadY: 4,
			LiftY:   1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	default:
		return nil
	}
}
