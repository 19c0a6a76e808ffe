// Package config provides YAML-based game configuration loading and
// difficulty management for neonrun.
package config

// RunnerConfig contains all tunables of the Neon Runner simulation.
// World values are in canvas units; rates are per simulation frame.
type RunnerConfig struct {
	World      RunnerWorld      `yaml:"world"`
	Player     RunnerPlayer     `yaml:"player"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Speed      RunnerSpeed      `yaml:"speed"`
	Score      RunnerScore      `yaml:"score"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Particles  RunnerParticles  `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerWorld defines the logical play field.
type RunnerWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from bottom edge to the ground line
}

// GroundY returns the y coordinate of the ground line.
func (w RunnerWorld) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// RunnerPlayer defines the player body geometry.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerPhysics defines vertical motion parameters.
type RunnerPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative: up is -y
}

// RunnerSpeed defines the horizontal scroll speed curve.
type RunnerSpeed struct {
	Base     float64 `yaml:"base"`
	PerScore float64 `yaml:"per_score"`
}

// RunnerScore defines how fast score accrues.
type RunnerScore struct {
	PerFrame float64 `yaml:"per_frame"`
}

// RunnerObstacles defines obstacle geometry ranges.
// Sizes are drawn uniformly from [Min, Max).
type RunnerObstacles struct {
	MinWidth      float64 `yaml:"min_width"`
	MaxWidth      float64 `yaml:"max_width"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Spawn this far past the right edge
	DespawnMargin float64 `yaml:"despawn_margin"` // Remove this far past the left edge
}

// RunnerSpawn defines the obstacle spawn interval curve, in frames:
// max(Base - min(score, Cap), Floor).
type RunnerSpawn struct {
	Base  float64 `yaml:"base"`
	Cap   float64 `yaml:"cap"`
	Floor float64 `yaml:"floor"`
}

// RunnerParticles defines the decorative particle bursts.
type RunnerParticles struct {
	Count   int     `yaml:"count"`
	Life    int     `yaml:"life"`
	Gravity float64 `yaml:"gravity"`
	SpreadX float64 `yaml:"spread_x"` // dx = (r - 0.5) * SpreadX
	SpreadY float64 `yaml:"spread_y"` // dy = (r - LiftY) * SpreadY
	LiftY   float64 `yaml:"lift_y"`
}

// DifficultyConfig toggles score-driven progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset.
// Unknown or empty strings yield "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
