package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryomx12/farmstand/internal/farm"
	"github.com/bryomx12/farmstand/internal/platform/tui"
	"github.com/bryomx12/farmstand/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a season",
	Long: `Start a run in the given mode (default: classic).

Controls:
  Arrows/WASD  - Walk around the farm
  Enter/Space  - Confirm in menus
  P            - Pause
  R            - Restart (after the run ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Patient customers and some spare coins to start
  normal - The default pace
  hard   - Short tempers from day one
  fixed  - No day-by-day progression

Examples:
  farmstand play
  farmstand play endless
  farmstand play classic --difficulty easy
  farmstand play classic --config ./my-farm.yaml
  farmstand play endless --sound=false`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with the run")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound cues")
}

func runPlay(_ *cobra.Command, args []string) {
	mode := "classic"
	if len(args) > 0 {
		mode = args[0]
	}
	mustMode(mode)

	// Both take effect on the next Reset
	farm.SetConfigPath(flagConfig)
	farm.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start %s: %v\n", mode, err)
		os.Exit(1)
	}

	store, recorder := openRunStore()
	sound := newSoundPlayer()
	if sound != nil {
		defer sound.Cleanup()
	}

	runErr := tui.Run(game, recorder, sound, terminalConfig(), flagPlayer)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}
