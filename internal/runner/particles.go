package runner

import (
	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/core"
)

// Particle is a short-lived decorative spark.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   int // Frames left
	Color  core.Color
}

// ParticleSystem spawns bursts of sparks and ages them out.
type ParticleSystem struct {
	particles []Particle
	rng       Rand
	cfg       config.RunnerParticles
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.RunnerConfig, rng Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 4*cfg.Particles.Count),
		rng:       rng,
		cfg:       cfg.Particles,
	}
}

// Burst spawns one burst of particles at (x, y).
// Horizontal velocity spreads both ways; vertical velocity is biased upward.
func (ps *ParticleSystem) Burst(x, y float64, color core.Color) {
	for range ps.cfg.Count {
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			DX:    (ps.rng.Float64() - 0.5) * ps.cfg.SpreadX,
			DY:    (ps.rng.Float64() - ps.cfg.LiftY) * ps.cfg.SpreadY,
			Life:  ps.cfg.Life,
			Color: color,
		})
	}
}

// Update moves every particle one frame and removes the expired ones.
func (ps *ParticleSystem) Update() {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.DX
		p.Y += p.DY
		p.DY += ps.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Alpha returns the particle's opacity in (0, 1].
func (ps *ParticleSystem) Alpha(p Particle) float64 {
	return core.ClampF(float64(p.Life)/float64(ps.cfg.Life), 0, 1)
}

// Reset removes every particle, keeping the backing storage.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}

// Particles returns the live particles.
// The slice is owned by the system and is only valid until the next mutation.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}
