package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a race variant from a menu",
	Long: `Start the racer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game over, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - High scores
  Q            - Quit

Examples:
  racer menu
  racer menu --fps 30
  racer menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	env, err := openLocalEnv()
	if err != nil {
		fatal("%v", err)
	}
	defer env.Close()

	cfg := runtimeConfig()
	status := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(env.Store, cfg, status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		status = ""

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(env.Store, env.Player, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			status = err.Error()
			continue
		}

		// Fresh seed for each race unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, env.Env, cfg)
		if err != nil {
			// A broken config shows in the menu instead of ending the session
			env.Logger.Error("race failed", "game", game.ID(), "error", err)
			status = err.Error()
			continue
		}
		if !backToMenu {
			return
		}
	}
}
