// snake-gui plays snake in a desktop window.
//
// Usage:
//
//	snake-gui [--config path] [--seed n] [--db path] [--no-record]
//
// Arrow keys or WASD steer, R/Enter or the Restart button start over after game over,
// Esc closes the window.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/gui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagNoRecord bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "snake-gui",
	Short:         "Snake in a desktop window",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed of the first run (random when not given)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save runs")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-gui",
		Level:           level,
	})

	opts := gui.Options{
		Config: cfg,
		Logger: logger,
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = &flagSeed
	}

	if !flagNoRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database, runs will not be saved", "error", err)
		} else {
			defer store.Close()
			opts.Sink = store
		}
	}

	return gui.Run(opts)
}
