package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/storage"
)

var flagResetRecords bool

var recordsCmd = &cobra.Command{
	Use:   "records [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the top 10 recorded runs for the given mode (default: classic).

Examples:
  farmstand records
  farmstand records endless
  farmstand records --reset   # wipe the book and start over`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagResetRecords, "reset", false, "delete every recorded run for the mode")
}

func runRecords(_ *cobra.Command, args []string) {
	mode := "classic"
	if len(args) > 0 {
		mode = args[0]
	}
	mustMode(mode)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetRecords {
		if err := store.ClearRuns(mode); err != nil {
			fmt.Fprintf(os.Stderr, "cannot reset records: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Records for %s wiped clean.\n", game.Title())
		return
	}

	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Past Runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("\nPlay 'farmstand play %s' to get on the board!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-4s  %-6s  %-6s  %s\n", "Rank", "Player", "Days", "Coins", "Served", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %-6s  %-6s  %s\n", "----", "------", "----", "-----", "------", "----")
	for i, entry := range runs {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10s  %-4d  %-6d  %-6d  %s\n",
			i+1, player, entry.Days, entry.Money, entry.Customers,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.RunStats(mode); err == nil && stats.RunsCount > 0 {
		fmt.Printf("\nRuns: %d   Best: %d coins   Average: %.0f coins\n",
			stats.RunsCount, stats.BestMoney, stats.AvgMoney)
	}

	// Day-by-day takings of the best run, when recorded
	if days, err := store.DaysForRun(runs[0].ID); err == nil && len(days) > 0 {
		fmt.Println("\nBest run, day by day:")
		for _, d := range days {
			fmt.Printf("  Day %-2d  %4d coins  %3d served\n", d.Day, d.Earned, d.Served)
		}
	}
}
