// Package config provides YAML-based game configuration loading and
// difficulty management for the racer.
package config

// RacerConfig contains all configuration for the racing game.
// Distances are world units (the original playfield is 1280x720), speeds
// are world units per tick.
type RacerConfig struct {
	Playfield   Playfield        `yaml:"playfield"`
	Player      RacerPlayer      `yaml:"player"`
	Competitors RacerCompetitors `yaml:"competitors"`
	Coins       RacerCoins       `yaml:"coins"`
	Gameplay    RacerGameplay    `yaml:"gameplay"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// Playfield defines the world and the road corridor.
type Playfield struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CorridorMargin float64 `yaml:"corridor_margin"` // Off-road band on each side
	OffscreenSpace float64 `yaml:"offscreen_space"` // How far competitors travel past the edges before wrapping
}

// CorridorLeft returns the x-coordinate of the left road edge.
func (p Playfield) CorridorLeft() float64 {
	return p.CorridorMargin
}

// CorridorRight returns the x-coordinate of the right road edge.
func (p Playfield) CorridorRight() float64 {
	return p.Width - p.CorridorMargin
}

// BottomLimit is where competitors re-enter after leaving through the bottom.
func (p Playfield) BottomLimit() float64 {
	return -p.OffscreenSpace
}

// TopLimit is where competitors re-enter after leaving through the top.
func (p Playfield) TopLimit() float64 {
	return p.Height + p.OffscreenSpace
}

// Sprite describes the unscaled sprite size and its scaling factor.
// The collision box is Width*Scale by Height*Scale.
type Sprite struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// RacerPlayer defines the player's vehicle.
type RacerPlayer struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	SteerSpeed   float64 `yaml:"steer_speed"`   // Velocity while a direction key is held
	MaxSpeed     float64 `yaml:"max_speed"`     // Nitrous cap
	RespawnTicks int     `yaml:"respawn_ticks"` // Optional invulnerability after (re)spawning
	Sprite       Sprite  `yaml:"sprite"`
}

// RacerCompetitors defines the competitor traffic.
type RacerCompetitors struct {
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	Variants int     `yaml:"variants"` // Number of visual variants to pick from
	SizeTag  int     `yaml:"size_tag"`
	Sprite   Sprite  `yaml:"sprite"`
}

// RacerCoins defines the collectible coins.
type RacerCoins struct {
	Count     int     `yaml:"count"`
	FallSpeed float64 `yaml:"fall_speed"`
	Points    int     `yaml:"points"`
	Sprite    Sprite  `yaml:"sprite"`
}

// RacerGameplay defines lives and cosmetic timers.
type RacerGameplay struct {
	StartingLives int `yaml:"starting_lives"`
	FlashTicks    int `yaml:"flash_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "",
// meaning the config's own difficulty settings are used.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
