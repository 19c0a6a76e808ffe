package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neonrun/internal/core"
	"github.com/vovakirdan/neonrun/internal/platform/gfx"
	"github.com/vovakirdan/neonrun/internal/platform/tui"
	"github.com/vovakirdan/neonrun/internal/registry"
	"github.com/vovakirdan/neonrun/internal/runner"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (the runner by default).

Controls:
  Space/Up/W - Jump
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit (Esc also quits the window)

Difficulty options:
  easy   - Slower start, gentler ramp
  normal - Default tuning
  hard   - Faster start, steeper ramp
  fixed  - No progression, speed and spawn rate stay at base

Examples:
  neonrun play
  neonrun play runner --difficulty easy
  neonrun play --window --seed 42
  neonrun play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := runner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'neonrun list' to see available games)", gameID)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	// The terminal UI owns stdout, so logs only go to an explicit file there.
	var fallback io.Writer = io.Discard
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, fallback)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting", "game", gameID, "window", flagWindow, "difficulty", flagDifficulty)

	if flagWindow {
		viewer, ok := game.(runner.Viewer)
		if !ok {
			return fmt.Errorf("game %q cannot run in a window", gameID)
		}
		if err := gfx.Run(viewer, cfg, logger); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		return nil
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
