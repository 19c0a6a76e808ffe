package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/runner"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default configuration",
	Long: `Prints the embedded default YAML for a game. Save it to
~/.neonrun/configs/<game>.yaml or ./configs/<game>.yaml and edit to override.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := runner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for game %q", gameID)
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
