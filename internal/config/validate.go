package config

import (
	"errors"
	"fmt"
)

// Validate checks that every randomized range and count derived from the
// config is usable. All problems are reported at once.
func (c RacerConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	p := c.Playfield
	if p.Width <= 0 || p.Height <= 0 {
		bad("playfield must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.CorridorMargin < 0 {
		bad("corridor_margin must not be negative, got %g", p.CorridorMargin)
	}
	if p.CorridorRight()-p.CorridorLeft() <= 0 {
		bad("corridor_margin %g leaves no road in a playfield %g wide", p.CorridorMargin, p.Width)
	}
	if p.OffscreenSpace < 0 {
		bad("offscreen_space must not be negative, got %g", p.OffscreenSpace)
	}

	pl := c.Player
	if pl.StartX < 0 || pl.StartX > p.Width || pl.StartY < 0 || pl.StartY > p.Height {
		bad("player start (%g, %g) is outside the playfield", pl.StartX, pl.StartY)
	}
	if pl.SteerSpeed < 0 {
		bad("player steer_speed must not be negative, got %g", pl.SteerSpeed)
	}
	if pl.MaxSpeed < 0 {
		bad("player max_speed must not be negative, got %g", pl.MaxSpeed)
	}
	if pl.RespawnTicks < 0 {
		bad("player respawn_ticks must not be negative, got %d", pl.RespawnTicks)
	}
	validateSprite("player", pl.Sprite, bad)

	co := c.Competitors
	if co.Count < 1 {
		bad("competitors count must be at least 1, got %d", co.Count)
	}
	if co.Speed <= 0 {
		bad("competitors speed must be positive, got %g", co.Speed)
	}
	if co.Variants < 1 {
		bad("competitors variants must be at least 1, got %d", co.Variants)
	}
	validateSprite("competitors", co.Sprite, bad)

	cn := c.Coins
	if cn.Count < 1 {
		bad("coins count must be at least 1, got %d", cn.Count)
	}
	if cn.FallSpeed <= 0 {
		bad("coins fall_speed must be positive, got %g", cn.FallSpeed)
	}
	if cn.Points < 0 {
		bad("coins points must not be negative, got %d", cn.Points)
	}
	validateSprite("coins", cn.Sprite, bad)

	if c.Gameplay.StartingLives < 1 {
		bad("starting_lives must be at least 1, got %d", c.Gameplay.StartingLives)
	}
	if c.Gameplay.FlashTicks < 0 {
		bad("flash_ticks must not be negative, got %d", c.Gameplay.FlashTicks)
	}

	return errors.Join(errs...)
}

func validateSprite(name string, s Sprite, bad func(string, ...any)) {
	if s.Width <= 0 || s.Height <= 0 || s.Scale <= 0 {
		bad("%s sprite size and scale must be positive, got %gx%g at %g", name, s.Width, s.Height, s.Scale)
	}
}
