package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads Neon Runner configuration.
// Search order: customPath -> ~/.neonrun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. The
// implicit locations are skipped silently when unusable.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML on top of the hardcoded defaults, so partial
// files only override the keys they mention.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonrun", "configs", filename)
}

// Validate reports every field that would make the simulation degenerate.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.GroundOffset >= 0 && c.World.GroundOffset < c.World.Height,
		"world.ground_offset must be in [0, height), got %v", c.World.GroundOffset)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Height <= c.World.GroundY(),
		"player.height %v does not fit above the ground line %v", c.Player.Height, c.World.GroundY())

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce < 0, "physics.jump_force must be negative, got %v", c.Physics.JumpForce)

	check(c.Speed.Base > 0, "speed.base must be positive, got %v", c.Speed.Base)
	check(c.Speed.PerScore >= 0, "speed.per_score must not be negative, got %v", c.Speed.PerScore)
	check(c.Score.PerFrame > 0, "score.per_frame must be positive, got %v", c.Score.PerFrame)

	check(c.Obstacles.MinWidth > 0 && c.Obstacles.MinWidth <= c.Obstacles.MaxWidth,
		"obstacles width range [%v, %v) is invalid", c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	check(c.Obstacles.MinHeight > 0 && c.Obstacles.MinHeight <= c.Obstacles.MaxHeight,
		"obstacles height range [%v, %v) is invalid", c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	check(c.Obstacles.MaxHeight <= c.World.GroundY(),
		"obstacles.max_height %v does not fit above the ground line", c.Obstacles.MaxHeight)
	check(c.Obstacles.DespawnMargin >= 0, "obstacles.despawn_margin must not be negative")

	check(c.Spawn.Floor >= 1, "spawn.floor must be at least one frame, got %v", c.Spawn.Floor)
	check(c.Spawn.Base >= c.Spawn.Floor, "spawn.base %v is below spawn.floor %v", c.Spawn.Base, c.Spawn.Floor)
	check(c.Spawn.Cap >= 0, "spawn.cap must not be negative, got %v", c.Spawn.Cap)

	check(c.Particles.Count >= 0, "particles.count must not be negative, got %d", c.Particles.Count)
	check(c.Particles.Life > 0, "particles.life must be positive, got %d", c.Particles.Life)

	return errors.Join(errs...)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 4
		cfg.Speed.PerScore = 0.015
		cfg.Spawn.Base = 70
	case DifficultyHard:
		cfg.Speed.Base = 6
		cfg.Speed.PerScore = 0.03
		cfg.Spawn.Base = 50
	}
}
