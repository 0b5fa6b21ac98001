// snake is the classic snake game for the terminal, playable locally or over SSH.
//
// Usage:
//
//	snake                    - Play in this terminal (same as snake play)
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake runs               - List recorded runs
//	snake runs rm <id>       - Delete a recorded run
//	snake replay <id>        - Re-run a recorded run and show how it ended
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - RNG seed for the first run
//	--db <path>         - Runs database (default: ~/.snake/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
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
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game: steer the snake, eat the food, and don't
hit the walls or yourself. Yellow bonus food is worth more but disappears after a
few seconds.

Every run is recorded and can be replayed exactly from its seed.

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake runs
  snake replay 6f1c2a3e-...`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed of the first run (random when not given)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// seedOption returns the --seed value when it was given on the command line, so an
// explicit 0 is a real seed. Otherwise it returns nil and the game picks one.
func seedOption(cmd *cobra.Command) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return nil
	}
	return &seed
}
