package racer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Screen is the top-level game phase.
type Screen int

const (
	ScreenInstructions Screen = iota
	ScreenRunning
	ScreenGameOver
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenInstructions:
		return "instructions"
	case ScreenRunning:
		return "running"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the complete simulation state of one race.
type State struct {
	Screen      Screen
	Score       int
	Lives       int
	ElapsedTime float64 // Seconds spent running

	FlashTimer int        // Ticks left of the crash flicker
	Flash      core.Color // Player tint while flickering, ColorDefault otherwise

	TargetCompetitors int
	TargetCoins       int

	Player      *Entity
	Competitors []*Entity
	Coins       []*Entity

	Ticks      int
	RoadOffset float64 // Lane marking scroll, in world units

	cfg     config.RacerConfig
	world   World
	rng     *rand.Rand
	spawner *Spawner
}

// NewState validates cfg and builds a fresh race on the instructions screen.
func NewState(cfg config.RacerConfig, seed int64) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("racer: invalid configuration: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	s := &State{
		Screen:  ScreenInstructions,
		cfg:     cfg,
		world:   NewWorld(cfg),
		rng:     rng,
		spawner: NewSpawner(rng, cfg),
	}
	s.Setup()
	return s, nil
}

// Setup rebuilds the race from scratch. It does not change the screen, so
// Setup alone never starts a race; Click moves to ScreenRunning.
func (s *State) Setup() {
	s.Score = 0
	s.Lives = s.cfg.Gameplay.StartingLives
	s.ElapsedTime = 0
	s.FlashTimer = 0
	s.Flash = core.ColorDefault
	s.Ticks = 0
	s.RoadOffset = 0

	s.TargetCompetitors = s.cfg.Competitors.Count
	s.TargetCoins = s.cfg.Coins.Count

	s.Player = s.spawner.NewPlayer()
	s.Competitors = s.spawner.SpawnCompetitors(nil, s.TargetCompetitors, 0, 0)
	s.Coins = s.spawner.SpawnCoins(nil, s.TargetCoins)
}

// Click handles a pointer click: it starts the race from the instructions
// screen and restarts it after game over. Clicks while running are ignored.
func (s *State) Click() []core.Event {
	switch s.Screen {
	case ScreenInstructions:
		s.Screen = ScreenRunning
		return []core.Event{s.event(core.EventStart)}
	case ScreenGameOver:
		s.Setup()
		s.Screen = ScreenRunning
		return []core.Event{s.event(core.EventRestart)}
	default:
		return nil
	}
}

// Tick advances a running race by one step. dt is the wall-clock time
// since the previous tick in seconds; movement is per tick regardless.
func (s *State) Tick(dt float64, intent Intent) []core.Event {
	if s.Screen != ScreenRunning {
		return nil
	}
	var events []core.Event

	// Apply intent and move everything
	s.Player.DX = intent.DX
	s.Player.DY = intent.DY
	s.Player.Speed = intent.Speed
	s.Player.Update(s.world, s.rng)
	for _, e := range s.Competitors {
		e.Update(s.world, s.rng)
	}
	for _, e := range s.Coins {
		e.Update(s.world, s.rng)
	}
	s.Ticks++
	s.RoadOffset++
	if s.RoadOffset >= s.world.Height/2 {
		s.RoadOffset = 0
	}

	s.ElapsedTime += dt

	if s.FlashTimer > 0 {
		s.FlashTimer--
		s.Flash = flashColor(s.FlashTimer)
	}

	// Competitors cost a life each. Respawn invulnerability is opt-in via respawn_ticks
	if s.Player.Respawning == 0 {
		if hits := DetectHits(s.Player, s.Competitors); len(hits) > 0 {
			before := len(s.Competitors)
			s.Competitors = Remove(s.Competitors, hits)
			for range before - len(s.Competitors) {
				s.Lives--
				s.FlashTimer = s.cfg.Gameplay.FlashTicks
				s.Flash = core.ColorGreen
				events = append(events, s.event(core.EventCrash))
			}
			if len(s.Competitors) < 1 {
				s.Competitors = s.spawner.SpawnCompetitors(s.Competitors, s.TargetCompetitors, s.Score, s.Ticks)
			}
		}
	}

	if s.Lives < 1 {
		s.Screen = ScreenGameOver
		s.FlashTimer = 0
		s.Flash = core.ColorDefault
		return append(events, s.event(core.EventGameOver))
	}

	if hits := DetectHits(s.Player, s.Coins); len(hits) > 0 {
		before := len(s.Coins)
		s.Coins = Remove(s.Coins, hits)
		for range before - len(s.Coins) {
			s.Score += s.cfg.Coins.Points
			events = append(events, s.event(core.EventCoin))
		}
		if len(s.Coins) < 1 {
			s.Coins = s.spawner.SpawnCoins(s.Coins, s.TargetCoins)
		}
	}

	return events
}

// flashColor alternates the player tint while the flash timer runs.
func flashColor(timer int) core.Color {
	switch {
	case timer == 0:
		return core.ColorDefault
	case timer%2 == 1:
		return core.ColorGreen
	default:
		return core.ColorBrightWhite
	}
}

func (s *State) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Score: s.Score, Lives: s.Lives}
}

// Config returns the configuration the state was built from.
func (s *State) Config() config.RacerConfig {
	return s.cfg
}

// World returns the world limits.
func (s *State) World() World {
	return s.world
}
