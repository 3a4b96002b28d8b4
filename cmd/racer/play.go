package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Start a race",
	Long: `Start a race of the given variant (default: racer).

Controls:
  Arrows/WASD  - Steer
  Space        - Nitrous (tap repeatedly to build speed)
  Enter/Click  - Start, or race again after game over
  B/Esc        - Leave after game over
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Traffic starts slow, speeds up with score
  normal - Traffic starts at 30% of its speed range
  hard   - Traffic starts at 70% of its speed range
  fixed  - Traffic speed never changes

Examples:
  racer play
  racer play racer_rush
  racer play --difficulty hard
  racer play --config ./my-racer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "racer"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available variants.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	env, err := openLocalEnv()
	if err != nil {
		fatal("%v", err)
	}

	_, runErr := tui.Run(game, env.Env, runtimeConfig())

	// Close everything before a potential exit
	env.Close()

	if runErr != nil {
		fatal("%v", runErr)
	}
}
