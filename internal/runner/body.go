package runner

import (
	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/core"
)

// Body is the player's physics body. Only vertical motion is simulated;
// the track scrolls past a fixed X.
type Body struct {
	X, Y     float64
	W, H     float64
	DY       float64 // Vertical velocity, negative is up
	OnGround bool

	gravity   float64
	jumpForce float64
	groundY   float64
}

// NewBody creates a body standing on the ground.
func NewBody(cfg config.RunnerConfig) Body {
	b := Body{
		X:         cfg.Player.X,
		W:         cfg.Player.Width,
		H:         cfg.Player.Height,
		gravity:   cfg.Physics.Gravity,
		jumpForce: cfg.Physics.JumpForce,
		groundY:   cfg.World.GroundY(),
	}
	b.Reset()
	return b
}

// Reset puts the body back on the ground at rest.
func (b *Body) Reset() {
	b.Y = b.groundY - b.H
	b.DY = 0
	b.OnGround = true
}

// Update integrates one frame. It returns true when a jump started this frame.
// Jumps are only honoured from the ground and while the run is live.
func (b *Body) Update(jump, gameOver bool) bool {
	jumped := false
	if jump && b.OnGround && !gameOver {
		b.DY = b.jumpForce
		b.OnGround = false
		jumped = true
	}

	b.DY += b.gravity
	b.Y += b.DY

	if b.Y+b.H >= b.groundY {
		b.Y = b.groundY - b.H
		b.DY = 0
		b.OnGround = true
	}
	return jumped
}

// Rect returns the collision box.
func (b Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// BaseCenter returns the midpoint of the body's bottom edge.
func (b Body) BaseCenter() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H
}

// GroundY returns the ground line the body rests on.
func (b Body) GroundY() float64 {
	return b.groundY
}
