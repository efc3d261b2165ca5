// Package config provides YAML-based game configuration loading and validation.
package config

import (
	"errors"
	"fmt"
)

// GuitarConfig contains all tunables of the guitar chase game.
type GuitarConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Guitar GuitarBody   `yaml:"guitar"`
	Coin   CoinBody     `yaml:"coin"`
	Rules  RulesConfig  `yaml:"rules"`
}

// WorldConfig defines the play field. Entity centers stay within [Min, Max].
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	MinX   int `yaml:"min_x"`
	MinY   int `yaml:"min_y"`
	MaxX   int `yaml:"max_x"`
	MaxY   int `yaml:"max_y"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	StartX     int     `yaml:"start_x"`
	StartY     int     `yaml:"start_y"`
	Speed      float64 `yaml:"speed"` // world units per second
	HalfWidth  int     `yaml:"half_width"`
	HalfHeight int     `yaml:"half_height"`
}

// GuitarBody defines the guitar's hitbox and wall bounce.
type GuitarBody struct {
	HalfWidth  int     `yaml:"half_width"`
	HalfHeight int     `yaml:"half_height"`
	Bounce     float64 `yaml:"bounce"`
}

// CoinBody defines the coin's hitbox.
type CoinBody struct {
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
}

// RulesConfig defines level progression.
type RulesConfig struct {
	CatchTarget  int `yaml:"catch_target"`
	LevelCount   int `yaml:"level_count"`
	LevelSeconds int `yaml:"level_seconds"`
	BaseSpeed    int `yaml:"base_speed"`
	SpeedStep    int `yaml:"speed_step"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c GuitarConfig) Validate() error {
	var errs []error
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", w.Width, w.Height))
	}
	if w.MaxX < w.MinX || w.MaxY < w.MinY {
		errs = append(errs, fmt.Errorf("world bounds [%d..%d]x[%d..%d] are empty", w.MinX, w.MaxX, w.MinY, w.MaxY))
	}
	if w.MinX < 0 || w.MinY < 0 || w.MaxX > w.Width || w.MaxY > w.Height {
		errs = append(errs, fmt.Errorf("world bounds exceed %dx%d field", w.Width, w.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed %.1f must be positive", c.Player.Speed))
	}
	if c.Player.HalfWidth <= 0 || c.Player.HalfHeight <= 0 ||
		c.Guitar.HalfWidth <= 0 || c.Guitar.HalfHeight <= 0 ||
		c.Coin.HalfWidth <= 0 || c.Coin.HalfHeight <= 0 {
		errs = append(errs, errors.New("hitbox extents must be positive"))
	}
	if c.Guitar.Bounce < 0 {
		errs = append(errs, fmt.Errorf("guitar bounce %.2f must not be negative", c.Guitar.Bounce))
	}

	r := c.Rules
	if r.CatchTarget <= 0 {
		errs = append(errs, fmt.Errorf("catch_target %d must be positive", r.CatchTarget))
	}
	if r.LevelCount <= 0 {
		errs = append(errs, fmt.Errorf("level_count %d must be positive", r.LevelCount))
	}
	if r.LevelSeconds <= 0 {
		errs = append(errs, fmt.Errorf("level_seconds %d must be positive", r.LevelSeconds))
	}
	if r.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("base_speed %d must be positive", r.BaseSpeed))
	}
	if r.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("speed_step %d must not be negative", r.SpeedStep))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalid, errors.Join(errs...))
}
