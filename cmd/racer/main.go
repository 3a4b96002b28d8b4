// racer is a top-down arcade racing game for the terminal.
//
// Usage:
//
//	racer list               - List race variants
//	racer play [variant]     - Race (default: racer)
//	racer menu               - Pick variants interactively
//	racer serve              - Start SSH server for remote play
//	racer scores <variant>   - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible races
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write debug logs to a file
//	--sound         - Enable sound effects
//	--hold <ticks>  - Frames a key stays held without a repeat
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagSound   bool
	flagHold    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "TUI Racer - Dodge traffic and grab coins in your terminal",
	Long: `TUI Racer is a top-down arcade racing game for the terminal.
Steer through oncoming traffic, collect coins, and survive as long as you can.

Available commands:
  list     - Show all race variants
  play     - Start a race directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  racer play
  racer play racer_rush --difficulty hard
  racer menu --sound
  racer serve --ssh :2222
  racer scores racer`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects (also RACER_AUDIO_ENABLED)")
	rootCmd.PersistentFlags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Frames a key stays held without a repeat")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
