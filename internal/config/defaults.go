package config

import (
	_ "embed"
)

// Variant ids. Each variant has its own embedded defaults and its own
// scoreboard.
const (
	VariantClassic = "racer"
	VariantRush    = "racer_rush"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/racer_rush.yaml
var defaultRushYAML []byte

// DefaultRacerConfig returns the default Classic Racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Playfield: Playfield{
			Width:          1280,
			Height:         720,
			CorridorMargin: 250,
			OffscreenSpace: 50,
		},
		Player: RacerPlayer{
			StartX:       640,
			StartY:       360,
			SteerSpeed:   3,
			MaxSpeed:     5,
			RespawnTicks: 0,
			Sprite:       Sprite{Width: 400, Height: 640, Scale: 0.15},
		},
		Competitors: RacerCompetitors{
			Count:    5,
			Speed:    4,
			Variants: 4,
			SizeTag:  4,
			Sprite:   Sprite{Width: 400, Height: 640, Scale: 0.15},
		},
		Coins: RacerCoins{
			Count:     3,
			FallSpeed: 1,
			Points:    10,
			Sprite:    Sprite{Width: 128, Height: 128, Scale: 0.2},
		},
		Gameplay: RacerGameplay{
			StartingLives: 3,
			FlashTicks:    50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultRushConfig returns the default Rush Hour configuration:
// denser traffic and an extra life.
func DefaultRushConfig() RacerConfig {
	cfg := DefaultRacerConfig()
	cfg.Competitors.Count = 7
	cfg.Gameplay.StartingLives = 4
	return cfg
}

// DefaultConfigFor returns the hard-coded defaults for a variant.
func DefaultConfigFor(variant string) RacerConfig {
	if variant == VariantRush {
		return DefaultRushConfig()
	}
	return DefaultRacerConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultRacerYAML
	case VariantRush:
		return defaultRushYAML
	default:
		return nil
	}
}
