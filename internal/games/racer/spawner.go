package racer

import (
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/config"
)

// Spawner creates players, competitors and coins at randomized positions.
// Spawns only append; they never touch entities already in a collection.
type Spawner struct {
	rng        *rand.Rand
	world      World
	cfg        config.RacerConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.RacerConfig) *Spawner {
	return &Spawner{
		rng:        rng,
		world:      NewWorld(cfg),
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// NewPlayer returns a player at the configured start. With a non-zero
// respawn_ticks it ignores competitors for that many ticks.
func (s *Spawner) NewPlayer() *Entity {
	p := s.cfg.Player
	return &Entity{
		Kind:       KindPlayer,
		X:          p.StartX,
		Y:          p.StartY,
		Scale:      p.Sprite.Scale,
		Width:      p.Sprite.Width,
		Height:     p.Sprite.Height,
		Angle:      90,
		Alive:      true,
		MaxSpeed:   p.MaxSpeed,
		Respawning: p.RespawnTicks,
	}
}

// SpawnCompetitors appends count competitors to dst.
// Competitors spawned at a higher score drift faster.
func (s *Spawner) SpawnCompetitors(dst []*Entity, count, score, ticks int) []*Entity {
	c := s.cfg.Competitors
	speed := s.difficulty.Speed(c.Speed, score, ticks)

	for i := 0; i < count; i++ {
		e := &Entity{
			Kind:     KindCompetitor,
			Variant:  s.rng.Intn(c.Variants),
			X:        s.world.corridorX(s.rng),
			Y:        s.world.Bottom + s.rng.Float64()*(s.world.Top-s.world.Bottom),
			Scale:    c.Sprite.Scale,
			Width:    c.Sprite.Width,
			Height:   c.Sprite.Height,
			Angle:    90,
			Alive:    true,
			MaxSpeed: speed,
			Size:     c.SizeTag,
		}

		// Either a slow band that may run backwards or a fast forward band
		offset := 1.0
		if s.rng.Intn(2) == 0 {
			offset = -1.0
		}
		e.DX = s.rng.Float64()*speed + offset
		e.DY = s.rng.Float64()*speed + offset

		dst = append(dst, e)
	}
	return dst
}

// SpawnCoins appends count coins to dst, anywhere on the visible road.
func (s *Spawner) SpawnCoins(dst []*Entity, count int) []*Entity {
	c := s.cfg.Coins
	for i := 0; i < count; i++ {
		dst = append(dst, &Entity{
			Kind:   KindCoin,
			X:      s.world.corridorX(s.rng),
			Y:      s.rng.Float64() * s.world.Height,
			DY:     -c.FallSpeed,
			Scale:  c.Sprite.Scale,
			Width:  c.Sprite.Width,
			Height: c.Sprite.Height,
			Alive:  true,
		})
	}
	return dst
}
