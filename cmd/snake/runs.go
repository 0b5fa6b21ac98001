package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent recorded runs, newest first.

Examples:
  snake runs
  snake runs --limit 50
  snake runs rm 6f1c2a3e-...`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

var runsRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete recorded runs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRunsRm,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 20, "Number of runs to show")
	runsCmd.AddCommand(runsRmCmd)
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play a game first!")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Played", "Score", "Length", "Ticks", "Seed", "Grid").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range runs {
		played := "-"
		if !r.CreatedAt.IsZero() {
			played = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		grid := fmt.Sprintf("%dx%d", r.Journal.Rules.Grid.Width, r.Journal.Rules.Grid.Height)
		t.Row(
			r.ID,
			played,
			strconv.FormatUint(uint64(r.Score), 10),
			strconv.Itoa(r.Length),
			strconv.FormatUint(r.Ticks, 10),
			strconv.FormatInt(r.Journal.Seed, 10),
			grid,
		)
	}

	fmt.Println(t.String())
	return nil
}

func runRunsRm(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, id := range args {
		if err := store.DeleteRun(id); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", id)
	}
	return nil
}
