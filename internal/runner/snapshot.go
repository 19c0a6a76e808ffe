package runner

import "github.com/vovakirdan/neonrun/internal/core"

// WorldView describes the fixed play field.
type WorldView struct {
	Width   float64
	Height  float64
	GroundY float64
}

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Rect     core.RectF
	OnGround bool
}

// ObstacleView is the renderable part of an obstacle.
type ObstacleView struct {
	Rect  core.RectF
	Color core.Color
}

// ParticleView is the renderable part of a particle.
type ParticleView struct {
	X, Y  float64
	Alpha float64 // Remaining life ratio in (0, 1]
	Color core.Color
}

// Snapshot is a read-only view of one frame, produced for renderers.
type Snapshot struct {
	World        WorldView
	Player       PlayerView
	Obstacles    []ObstacleView
	Particles    []ParticleView
	Score        float64
	DisplayScore int
	Speed        float64
	GameOver     bool
	Frame        int
}

// Snapshot returns a freshly allocated view of the current frame.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto fills dst with the current frame, reusing its slices.
// Renderers that draw every frame keep one Snapshot and call this to avoid
// allocating per frame.
func (s *Session) SnapshotInto(dst *Snapshot) {
	dst.World = WorldView{
		Width:   s.cfg.World.Width,
		Height:  s.cfg.World.Height,
		GroundY: s.cfg.World.GroundY(),
	}
	dst.Player = PlayerView{
		Rect:     s.player.Rect(),
		OnGround: s.player.OnGround,
	}

	dst.Obstacles = dst.Obstacles[:0]
	for _, o := range s.field.Obstacles() {
		dst.Obstacles = append(dst.Obstacles, ObstacleView{Rect: o.Rect(), Color: o.Color})
	}

	dst.Particles = dst.Particles[:0]
	for _, p := range s.particles.Particles() {
		dst.Particles = append(dst.Particles, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Alpha: s.particles.Alpha(p),
			Color: p.Color,
		})
	}

	dst.Score = s.score
	dst.DisplayScore = s.DisplayScore()
	dst.Speed = s.speed
	dst.GameOver = s.GameOver()
	dst.Frame = s.frame
}
