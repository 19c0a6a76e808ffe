package runner

import (
	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/core"
)

// ObstaclePalette holds the colors obstacles are drawn with.
var ObstaclePalette = [...]core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
	core.ColorOrange,
}

// Obstacle is a block standing on the ground that ends the run on contact.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Color core.Color // Visual only
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// ObstacleField spawns, scrolls and prunes obstacles.
// Obstacles are kept in spawn order, which is also arrival order.
type ObstacleField struct {
	obstacles []Obstacle
	rng       Rand
	cfg       config.RunnerObstacles
	worldW    float64
	groundY   float64
}

// NewObstacleField creates an empty field.
func NewObstacleField(cfg config.RunnerConfig, rng Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg.Obstacles,
		worldW:    cfg.World.Width,
		groundY:   cfg.World.GroundY(),
	}
}

// Reset removes every obstacle, keeping the backing storage.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Update scrolls obstacles left by speed and drops those fully past the
// despawn margin. Survivors keep their relative order.
func (f *ObstacleField) Update(speed float64) {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= speed
		if o.X+o.W > -f.cfg.DespawnMargin {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Spawn appends a new obstacle just past the right edge, standing on the ground.
func (f *ObstacleField) Spawn() Obstacle {
	h := uniform(f.rng, f.cfg.MinHeight, f.cfg.MaxHeight)
	w := uniform(f.rng, f.cfg.MinWidth, f.cfg.MaxWidth)
	o := Obstacle{
		X:     f.worldW + f.cfg.SpawnMargin,
		Y:     f.groundY - h,
		W:     w,
		H:     h,
		Color: ObstaclePalette[f.rng.Intn(len(ObstaclePalette))],
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Obstacles returns the live obstacles in arrival order.
// The slice is owned by the field and is only valid until the next mutation.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
