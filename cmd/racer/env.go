package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/audio"
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addGameFlags registers the flags that shape a race.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the racer package.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	racer.SetConfigPath(flagConfig)
	racer.SetDifficultyPreset(flagDifficulty)
	return nil
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// localEnv holds the collaborators of a local terminal session.
type localEnv struct {
	tui.Env
	logFile *os.File
}

// openLocalEnv opens the log file, score database and sound device.
// Failures other than the log file are reported and the game runs without them.
func openLocalEnv() (*localEnv, error) {
	le := &localEnv{}

	// The game owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		le.logFile = f
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
		Level:           log.DebugLevel,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without scores", "error", err)
		store = nil // Continue without storage - game still works
	}

	audioCfg := audio.LoadConfig()
	audioCfg.Enabled = audioCfg.Enabled || flagSound
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, playing without sound\n", err)
		logger.Warn("sound disabled", "error", err)
	}

	le.Env = tui.Env{
		Store:     store,
		Sound:     sound,
		Logger:    logger,
		Player:    playerName(),
		HoldTicks: flagHold,
	}
	return le, nil
}

// Close releases everything openLocalEnv opened.
func (le *localEnv) Close() {
	if le.Sound != nil {
		le.Sound.Close()
	}
	if le.Store != nil {
		le.Store.Close()
	}
	if le.logFile != nil {
		le.logFile.Close()
	}
}

// playerName is the name local scores are recorded under.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.AnonymousPlayer
}
