// Package runner implements Neon Runner, a single-screen endless runner: the
// player jumps over obstacles scrolling in from the right while score, speed
// and spawn rate climb.
//
// The simulation (Session and its parts) is pure and deterministic for a
// given random source. Game adapts it to the platform's registry.Game
// interface and draws it onto a terminal screen.
package runner

import (
	"fmt"

	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/core"
	"github.com/vovakirdan/neonrun/internal/registry"
)

// GameID is the registry identifier of Neon Runner.
const GameID = "runner"

// Viewer is a game whose frames can be drawn from a Snapshot instead of a
// terminal screen.
type Viewer interface {
	registry.Game
	SnapshotInto(dst *Snapshot)
	Paused() bool
}

// Game implements registry.Game on top of a Session.
type Game struct {
	cfg     config.RunnerConfig
	session *Session
	runtime core.RuntimeConfig
	paused  bool
	view    Snapshot // reused between renders
}

// New creates a game from an explicit configuration.
func New(cfg config.RunnerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// NewFromOptions loads configuration as described by opts and creates a game.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load runner config: %w", err)
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(opts.Difficulty))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("difficulty %q: %w", opts.Difficulty, err)
	}
	return New(cfg), nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Runner"
}

// Reset starts a fresh session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.session = NewSession(g.cfg, NewRand(runtime.Seed))
}

// Step advances the game by one tick.
// Pause is handled here so the session never sees paused frames.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Step(InputFromFrame(in))
	return core.StepResult{State: g.State(), Events: res.Events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.DisplayScore(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns a read-only view of the current frame.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// SnapshotInto fills dst with the current frame, reusing its slices.
func (g *Game) SnapshotInto(dst *Snapshot) {
	g.session.SnapshotInto(dst)
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

var _ Viewer = (*Game)(nil)

// Register the game with the registry
func init() {
	registry.Register(GameID, "Neon Runner", func(opts registry.Options) (registry.Game, error) {
		g, err := NewFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
