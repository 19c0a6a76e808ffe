// neonrun is a neon endless runner for the terminal and the desktop.
//
// Usage:
//
//	neonrun play [game]      - Play a game (default: runner)
//	neonrun list             - List available games
//	neonrun config           - Print the default game config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/neonrun/internal/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrun",
	Short: "Neon Runner - jump the neon blocks",
	Long: `Neon Runner is an endless runner: jump over incoming obstacles while
the track speeds up. Play it in the terminal or in a desktop window.

Available commands:
  play     - Play a game (the runner by default)
  list     - Show all available games
  config   - Print the default configuration

Examples:
  neonrun play
  neonrun play --difficulty hard
  neonrun play --window
  neonrun config > ~/.neonrun/configs/runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
