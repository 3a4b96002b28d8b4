// Package racer implements a top-down arcade racing game.
// The player steers a car up a road corridor, dodging competitor cars and
// picking up coins. World coordinates are float64 with y growing upward;
// Render projects them onto the terminal grid.
package racer

import (
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Kind tags what an entity is and selects its update rule.
type Kind int

const (
	KindPlayer Kind = iota
	KindCompetitor
	KindCoin
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCompetitor:
		return "competitor"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Entity is any moving object in the world.
type Entity struct {
	Kind   Kind
	X, Y   float64 // Center position
	DX, DY float64 // Velocity per tick
	Scale  float64
	Angle  float64 // Cosmetic
	Alive  bool

	Width, Height float64 // Unscaled sprite size

	// Player only
	Speed      float64 // Nitrous bias added to DY each tick
	MaxSpeed   float64 // Nitrous cap for the player, drift speed for competitors
	Respawning int     // Invulnerability ticks left

	// Competitor only
	Variant int // Visual variant
	Size    int // Cosmetic size tag
}

// Bounds returns the entity's collision box.
func (e *Entity) Bounds() core.RectF {
	return core.RectFromCenter(e.X, e.Y, e.Width*e.Scale, e.Height*e.Scale)
}

// World holds the limits every entity update is measured against.
type World struct {
	Width, Height float64
	Left, Right   float64 // Road corridor
	Bottom, Top   float64 // Competitor wrap limits, offscreen
	CoinFall      float64
}

// NewWorld derives the world limits from a config.
func NewWorld(cfg config.RacerConfig) World {
	p := cfg.Playfield
	return World{
		Width:    p.Width,
		Height:   p.Height,
		Left:     p.CorridorLeft(),
		Right:    p.CorridorRight(),
		Bottom:   p.BottomLimit(),
		Top:      p.TopLimit(),
		CoinFall: cfg.Coins.FallSpeed,
	}
}

// corridorX returns a random x inside the road corridor.
func (w World) corridorX(rng *rand.Rand) float64 {
	return w.Left + rng.Float64()*(w.Right-w.Left)
}

// Update advances the entity by one tick according to its kind.
func (e *Entity) Update(w World, rng *rand.Rand) {
	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(w)
	case KindCompetitor:
		e.updateCompetitor(w, rng)
	case KindCoin:
		e.updateCoin(w, rng)
	}
}

// updatePlayer moves the player and keeps it inside the corridor.
// Hitting a wall stops motion into that wall.
func (e *Entity) updatePlayer(w World) {
	e.Speed = core.ClampF(e.Speed, 0, e.MaxSpeed)
	e.DY += e.Speed

	e.X += e.DX
	e.Y += e.DY

	if e.X < w.Left {
		e.X = w.Left
		e.DX = max(e.DX, 0)
	} else if e.X > w.Right {
		e.X = w.Right
		e.DX = min(e.DX, 0)
	}
	if e.Y < 1 {
		e.Y = 1
		e.DY = max(e.DY, 0)
	} else if e.Y > w.Height-1 {
		e.Y = w.Height - 1
		e.DY = min(e.DY, 0)
	}

	if e.Respawning > 0 {
		e.Respawning--
	}
}

// updateCompetitor moves a competitor, wrapping it vertically and turning
// it back toward the road at the corridor edges.
func (e *Entity) updateCompetitor(w World, rng *rand.Rand) {
	e.X += e.DX
	e.Y += e.DY

	if e.Y > w.Top {
		e.Y = w.Bottom
	} else if e.Y < w.Bottom {
		e.Y = w.Top
	}

	if e.X < w.Left {
		e.X = w.Left
		e.DX = rng.Float64() * e.MaxSpeed
	} else if e.X > w.Right {
		e.X = w.Right
		e.DX = -rng.Float64() * e.MaxSpeed
	}
}

// updateCoin drops a coin by the fall speed and recycles it above the
// screen once it has fallen out of view.
func (e *Entity) updateCoin(w World, rng *rand.Rand) {
	e.Y -= w.CoinFall

	if e.Bounds().Top() < 0 {
		e.X = w.corridorX(rng)
		e.Y = w.Height + rng.Float64()*(w.Top-w.Height)
	}
}
