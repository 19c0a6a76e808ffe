package config

import (
	"math"
	"testing"
)

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig())

	tests := []struct {
		score    float64
		expected float64
	}{
		{0, 5},
		{10, 5.2},
		{50, 6},
		{100, 7},
	}

	for _, tc := range tests {
		got := d.Speed(tc.score)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed(%v) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig())

	tests := []struct {
		score    float64
		expected float64
	}{
		{0, 60},
		{10, 50},
		{39.5, 20.5},
		{40, 20},
		{50, 20},
		{1000, 20},
	}

	for _, tc := range tests {
		got := d.SpawnInterval(tc.score)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("SpawnInterval(%v) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyFloorBindsWhenCapIsLarge(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Spawn.Cap = 100

	d := NewDifficultyManager(cfg)
	if got := d.SpawnInterval(90); got != 20 {
		t.Errorf("SpawnInterval(90) = %v, expected floor 20", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg)

	if got := d.Speed(500); got != 5 {
		t.Errorf("disabled Speed(500) = %v, expected base 5", got)
	}
	if got := d.SpawnInterval(500); got != 60 {
		t.Errorf("disabled SpawnInterval(500) = %v, expected base 60", got)
	}
}
