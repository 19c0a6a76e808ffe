// Package eventlog turns per-frame game events into structured log lines.
// Front-ends feed it every StepResult; the simulation itself never logs.
package eventlog

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neonrun/internal/core"
)

// Recorder logs game events and keeps per-run counters.
type Recorder struct {
	logger *log.Logger
	game   string
	runs   int
	jumps  int
	spawns int
}

// New creates a recorder for the given game. A nil logger discards output.
func New(logger *log.Logger, game string) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{logger: logger.With("game", game), game: game}
}

// Start logs the beginning of the first run.
func (r *Recorder) Start(runtime core.RuntimeConfig) {
	r.runs = 1
	r.logger.Info("run started",
		"seed", runtime.Seed,
		"tick_rate", runtime.TickRate,
		"screen", [2]int{runtime.ScreenW, runtime.ScreenH},
	)
}

// Record logs the events of one frame.
func (r *Recorder) Record(res core.StepResult) {
	for _, ev := range res.Events {
		switch ev {
		case core.EventJump:
			r.jumps++
			r.logger.Debug("jump", "jumps", r.jumps)
		case core.EventSpawn:
			r.spawns++
			r.logger.Debug("obstacle spawned", "spawns", r.spawns)
		case core.EventCollision:
			r.logger.Info("game over",
				"run", r.runs,
				"score", res.State.Score,
				"jumps", r.jumps,
				"obstacles", r.spawns,
			)
		case core.EventRestart:
			r.runs++
			r.jumps = 0
			r.spawns = 0
			r.logger.Info("restart", "run", r.runs)
		}
	}
}

// Runs returns the number of runs started, including the current one.
func (r *Recorder) Runs() int { return r.runs }

// Jumps returns the jump count of the current run.
func (r *Recorder) Jumps() int { return r.jumps }

// Spawns returns the number of obstacles spawned in the current run.
func (r *Recorder) Spawns() int { return r.spawns }
