// farmstand is a terminal farm stand game: grow produce, serve customers,
// and spend the takings on upgrades between days.
//
// Usage:
//
//	farmstand play [mode]    - Play a season (classic or endless)
//	farmstand menu           - Start menu to pick a mode interactively
//	farmstand serve          - Start SSH server for remote play
//	farmstand records [mode] - Show the best runs for a mode
//	farmstand almanac        - Show produce prices and the upgrade catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.farmstand/farmstand.db)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bryomx12/farmstand/internal/audio"
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/session"
	"github.com/bryomx12/farmstand/internal/storage"

	// Register the game modes
	_ "github.com/bryomx12/farmstand/internal/farm"
)

// Flags shared by every subcommand.
var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farmstand",
	Short: "Farm Stand - Run a produce stand in your terminal",
	Long: `Farm Stand is a terminal game about running a small produce stand.
Harvest from your stations, serve the customer at the counter, and spend
each day's takings on upgrades that grow the farm.

Available commands:
  play     - Play a season directly (classic or endless)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  records  - View the best recorded runs
  almanac  - Produce prices and the upgrade catalog

Examples:
  farmstand play
  farmstand play endless --difficulty hard
  farmstand menu
  farmstand serve --ssh :2222
  farmstand records classic`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.farmstand/farmstand.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(almanacCmd)
}

// mustMode exits with a hint when the requested mode is not registered.
func mustMode(mode string) {
	if registry.Exists(mode) {
		return
	}
	fmt.Fprintf(os.Stderr, "unknown mode %q (have: %s)\n", mode, strings.Join(registry.IDs(), ", "))
	os.Exit(1)
}

// terminalConfig sizes a runtime config to the terminal, falling back to
// 80x24 when stdout is not one.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openRunStore opens the runs database. Losing it only costs persistence,
// so failures warn instead of exiting.
func openRunStore() (*storage.Store, session.Recorder) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: runs will not be recorded: %v\n", err)
		return nil, nil
	}
	return store, store
}

// newSoundPlayer opens the speaker when --sound is on. The result may be
// nil; callers guard their own Cleanup.
func newSoundPlayer() *audio.Player {
	if !flagSound {
		return nil
	}
	sound := audio.NewPlayer()
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: sound unavailable: %v\n", err)
	}
	return sound
}
