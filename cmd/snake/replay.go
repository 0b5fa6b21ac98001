package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded run",
	Long: `Re-run a recorded run from its seed and events, print the final board, and
check that it ends exactly as it did when it was played.

Examples:
  snake runs
  snake replay 6f1c2a3e-...`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Run(args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no run with ID %q; run 'snake runs' to list runs", args[0])
	}

	g := replay.Play(rec.Journal)
	fmt.Println(renderBoard(g))

	snap := g.Snapshot()
	fmt.Printf("Run %s\n", rec.ID)
	fmt.Printf("  seed %d, %d events\n", rec.Journal.Seed, len(rec.Journal.Events))
	fmt.Printf("  score %d, length %d, %d ticks, %s\n", snap.Score, snap.SnakeLen, snap.Ticks, snap.State)

	if snap.Score != rec.Score || snap.SnakeLen != rec.Length || snap.Ticks != rec.Ticks {
		return fmt.Errorf("replay diverged: recorded score %d, length %d, %d ticks",
			rec.Score, rec.Length, rec.Ticks)
	}
	return nil
}

// renderBoard draws the game at the smallest size that fits the whole board.
func renderBoard(g *snake.Game) string {
	rules := g.Rules()
	w, h := rules.Grid.Width*2+2, rules.Grid.Height+3
	screen := core.NewScreen(w, h)
	g.Render(screen, snake.NewLayout(rules, w, h))
	return tui.NewPalette(lipgloss.DefaultRenderer()).Render(screen)
}
