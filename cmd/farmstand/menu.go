package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryomx12/farmstand/internal/audio"
	"github.com/bryomx12/farmstand/internal/core"
	"github.com/bryomx12/farmstand/internal/farm"
	"github.com/bryomx12/farmstand/internal/platform/tui"
	"github.com/bryomx12/farmstand/internal/registry"
	"github.com/bryomx12/farmstand/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the farm stand with a mode picker menu",
	Long: `Start the farm stand in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, then pick a
season pace. After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Past runs
  Q            - Quit

Examples:
  farmstand menu
  farmstand menu --fps 30
  farmstand menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with runs")
	menuCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound cues")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, recorder := openRunStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sound := newSoundPlayer()
	if sound != nil {
		defer sound.Cleanup()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}

		// The menu tracks resizes while it is up
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsRecords:
			goBack, err := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			if !goBack {
				return
			}

		case menuResult.GameID != "":
			if err := playFromMenu(menuResult.GameID, cfg, recorder, sound); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}

		default:
			return
		}
	}
}

// playFromMenu shows the pace selector, then plays one full run. Backing
// out of the selector is not an error; it just returns to the menu.
func playFromMenu(mode string, cfg core.RuntimeConfig, recorder session.Recorder, sound *audio.Player) error {
	preset, back, err := tui.RunDifficultySelector(cfg)
	if err != nil || back {
		return err
	}

	farm.SetConfigPath(flagConfig)
	farm.SetDifficultyPreset(preset)

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	// A fresh seed for every run started from the menu
	cfg.Seed = time.Now().UnixNano()
	return tui.Run(game, recorder, sound, cfg, flagPlayer)
}
