package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/audio"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// Env bundles the collaborators a game runs against. Every field is
// optional; a zero Env runs the game without persistence or sound.
type Env struct {
	Store     *storage.Store
	Sound     *audio.SoundManager
	Logger    *log.Logger
	Palette   *Palette
	Player    string // Name recorded with saved scores
	HoldTicks int    // See HoldTracker
}

// withDefaults fills the fields a GameModel cannot run without.
func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Palette == nil {
		e.Palette = NewPalette(nil)
	}
	if e.Player == "" {
		e.Player = storage.AnonymousPlayer
	}
	return e
}

// eventSounds maps game events to the effect played for them.
var eventSounds = map[core.EventKind]audio.SoundType{
	core.EventStart:    audio.SoundStart,
	core.EventRestart:  audio.SoundStart,
	core.EventCoin:     audio.SoundCoin,
	core.EventCrash:    audio.SoundCrash,
	core.EventGameOver: audio.SoundGameOver,
}

// GameModel is the Bubble Tea model for running one racer game.
// Input arriving between ticks is buffered and handed to the game at the
// next tick boundary.
type GameModel struct {
	game       registry.Game
	env        Env
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *HoldTracker
	pending    *core.InputFrame
	loop       int64 // Tick loop this model follows
	lastTick   time.Time
	gameState  core.GameState
	quitOnBack bool // Standalone play exits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel resets the game and wraps it in a model. A configuration
// error from the game is returned and no model is usable.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	env = env.withDefaults()

	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}
	env.Logger.Debug("game ready", "game", game.ID(), "seed", cfg.Seed, "player", env.Player)

	frame := core.NewInputFrame()
	return GameModel{
		game:      game,
		env:       env,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(env.HoldTicks),
		pending:   &frame,
		loop:      nextLoopID(),
		gameState: game.State(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.pending.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world is projected onto whatever size the terminal has,
		// so a resize never restarts the race.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step with the buffered input.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.pending.Delta = frameDelta(m.lastTick, now)
	m.lastTick = now
	m.hold.Apply(m.pending)

	result := m.game.Step(*m.pending)
	m.gameState = result.State
	m.pending.Clear()

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleEvent logs a game event and plays its sound.
func (m GameModel) handleEvent(ev core.Event) {
	m.env.Logger.Debug("event",
		"game", m.game.ID(),
		"kind", ev.Kind,
		"score", ev.Score,
		"lives", ev.Lives,
	)
	if ev.Kind == core.EventStart || ev.Kind == core.EventRestart {
		// A new race forgets keys held through the previous one
		m.hold.Reset()
	}
	if s, ok := eventSounds[ev.Kind]; ok && m.env.Sound != nil {
		m.env.Sound.Play(s)
	}
}

// saveScore records the finished race. Storage failures are logged and
// the game continues.
func (m GameModel) saveScore() {
	if m.env.Store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.env.Store.SaveScore(m.game.ID(), m.env.Player, m.gameState.Score, m.gameState.Elapsed)
	if err != nil {
		m.env.Logger.Error("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.env.Logger.Info("score saved",
		"id", id,
		"game", m.game.ID(),
		"player", m.env.Player,
		"score", m.gameState.Score,
		"elapsed", m.gameState.Elapsed.Truncate(time.Second),
	)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.env.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.env.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.env.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.env.Palette.Render(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits or, after
// a game over, asks to go back. Reports whether the player asked to go back.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model, err := NewGameModel(game, env, cfg)
	if err != nil {
		return false, err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks start and restart races
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
