package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  R/Enter or click  - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  ?                 - Show all keys
  Q/Esc/Ctrl+C      - Quit

Finished runs are saved to the runs database unless --no-record is given.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./big-board.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save runs")
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.FrameRate = cfg.Display.FrameRate
	rt.Seed = seedOption(cmd)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	}

	if !flagNoRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
			// Continue without recording - game still works
		} else {
			defer store.Close()
			opts.Sink = store
		}
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
