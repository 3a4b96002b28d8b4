package racer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file used by every racer variant.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
// Unknown names keep the config's own difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// heldOrder fixes the order presses are applied in when several arrive in
// the same frame, so replays are deterministic.
var heldOrder = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionNitrous,
}

// Game adapts State to the registry.Game interface.
type Game struct {
	id      string
	title   string
	variant string

	runtime core.RuntimeConfig
	state   *State
	input   *InputMapper
}

// New creates a Classic Racer game.
func New() *Game {
	return &Game{id: "racer", title: "Classic Racer", variant: config.VariantClassic}
}

// NewRush creates a Rush Hour game: denser traffic, one extra life.
func NewRush() *Game {
	return &Game{id: "racer_rush", title: "Rush Hour", variant: config.VariantRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the variant's configuration and builds a fresh race.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadRacer(configPath, g.variant)
	if err != nil {
		return fmt.Errorf("racer: %w", err)
	}
	config.ApplyRacerPreset(&cfg, difficultyPreset)
	return g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a fresh race from an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.RacerConfig) error {
	state, err := NewState(cfg, runtime.Seed)
	if err != nil {
		return err
	}
	g.runtime = runtime
	g.state = state
	g.input = NewInputMapper(cfg.Player.SteerSpeed, cfg.Player.MaxSpeed)
	return nil
}

// Step applies the frame's input and advances the race by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{}
	}

	for _, a := range heldOrder {
		if in.Released(a) {
			g.input.Release(a)
		}
	}
	for _, a := range heldOrder {
		if in.Has(a) {
			g.input.Press(a)
		}
	}

	var events []core.Event
	if in.Has(core.ActionClick) || in.Has(core.ActionConfirm) {
		clicked := g.state.Click()
		// A race starts with no keys held, including ones pressed this frame
		if len(clicked) > 0 {
			g.input.Reset()
		}
		events = append(events, clicked...)
	}

	dt := in.Delta
	if dt <= 0 {
		dt = g.runtime.TickDuration()
	}
	events = append(events, g.state.Tick(dt.Seconds(), g.input.Intent())...)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		Elapsed:  time.Duration(g.state.ElapsedTime * float64(time.Second)),
		GameOver: g.state.Screen == ScreenGameOver,
	}
}

// Race exposes the underlying simulation state.
func (g *Game) Race() *State {
	return g.state
}

// Register the game variants with the registry
func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
	registry.Register("racer_rush", func() registry.Game {
		return NewRush()
	})
}
