package runner

import (
	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/core"
)

// Burst colors.
const (
	JumpColor      = core.ColorBrightCyan
	CollisionColor = core.ColorBrightWhite
)

// State is the session's position in the run/game-over cycle.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Input is the per-frame input signal. Both fields are held-state samples.
type Input struct {
	Jump    bool
	Restart bool
}

// InputFromFrame maps platform actions onto the session input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Jump:    f.Has(core.ActionJump),
		Restart: f.Has(core.ActionRestart),
	}
}

// StepResult reports the session state after a step and what happened in it.
type StepResult struct {
	State  State
	Events []core.Event
}

// Session owns the whole simulation: player, obstacles, particles, score
// and the run/game-over state machine. It is not safe for concurrent use.
type Session struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager

	player    Body
	field     *ObstacleField
	particles *ParticleSystem

	score      float64
	speed      float64
	spawnTimer float64
	state      State
	frame      int
}

// NewSession creates a session in its initial running state.
// rng feeds both obstacle spawning and particle bursts.
func NewSession(cfg config.RunnerConfig, rng Rand) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg),
		player:     NewBody(cfg),
		field:      NewObstacleField(cfg, rng),
		particles:  NewParticleSystem(cfg, rng),
	}
	s.Reset()
	return s
}

// Reset returns the session to its initial state. Calling it repeatedly
// yields the same state each time; only the random source advances.
func (s *Session) Reset() {
	s.player.Reset()
	s.field.Reset()
	s.particles.Reset()
	s.score = 0
	s.speed = s.difficulty.Speed(0)
	s.spawnTimer = 0
	s.state = StateRunning
	s.frame = 0
}

// Step advances the session by one frame.
//
// While running: physics, obstacle scroll and spawn, particles, collision,
// then score and speed. After game over the world keeps settling (the body
// falls, obstacles and particles move) but score, speed and spawning are
// frozen and jumps are ignored. A restart request during game over resets the
// session instead of simulating the frame.
func (s *Session) Step(in Input) StepResult {
	var events []core.Event

	if s.state == StateGameOver {
		if in.Restart {
			s.Reset()
			return StepResult{State: s.state, Events: append(events, core.EventRestart)}
		}
		s.frame++
		s.player.Update(false, true)
		s.field.Update(s.speed)
		s.particles.Update()
		return StepResult{State: s.state}
	}

	s.frame++

	if s.player.Update(in.Jump, false) {
		x, y := s.player.BaseCenter()
		s.particles.Burst(x, y, JumpColor)
		events = append(events, core.EventJump)
	}

	s.field.Update(s.speed)
	s.spawnTimer--
	if s.spawnTimer <= 0 {
		s.field.Spawn()
		s.spawnTimer = s.difficulty.SpawnInterval(s.score)
		events = append(events, core.EventSpawn)
	}

	s.particles.Update()

	if _, hit := Collide(s.player.Rect(), s.field.Obstacles()); hit {
		cx, cy := s.player.Rect().Center()
		s.particles.Burst(cx, cy, CollisionColor)
		s.state = StateGameOver
		events = append(events, core.EventCollision)
		return StepResult{State: s.state, Events: events}
	}

	s.score += s.cfg.Score.PerFrame
	s.speed = s.difficulty.Speed(s.score)

	return StepResult{State: s.state, Events: events}
}

// Score returns the raw score.
func (s *Session) Score() float64 { return s.score }

// DisplayScore returns the score floored for display.
func (s *Session) DisplayScore() int { return int(s.score) }

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 { return s.speed }

// SpawnTimer returns the frames left until the next obstacle spawns.
func (s *Session) SpawnTimer() float64 { return s.spawnTimer }

// State returns the state machine position.
func (s *Session) State() State { return s.state }

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool { return s.state == StateGameOver }

// Frame returns the number of frames simulated since the last reset.
func (s *Session) Frame() int { return s.frame }

// Player returns a copy of the player body.
func (s *Session) Player() Body { return s.player }

// Obstacles returns the live obstacles. See ObstacleField.Obstacles.
func (s *Session) Obstacles() []Obstacle { return s.field.Obstacles() }

// Particles returns the live particles. See ParticleSystem.Particles.
func (s *Session) Particles() []Particle { return s.particles.Particles() }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }
