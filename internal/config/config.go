// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Tick rate limits accepted from configuration and flags.
const (
	MinTicksPerSecond = 1
	MaxTicksPerSecond = 60
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Snake      SnakeBody        `yaml:"snake"`
	Speed      SpeedConfig      `yaml:"speed"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the snake's starting shape.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
}

// SpeedConfig defines the base frame clock.
type SpeedConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// RulesConfig toggles rule variations.
type RulesConfig struct {
	TailChase bool `yaml:"tail_chase"`
}

// DifficultyConfig defines how difficulty scales during gameplay.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 to 1.0
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty progression.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or moves at which max difficulty is reached
}

// ScalingConfig defines how parameters scale with difficulty.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("%w: grid must be at least 5x5, got %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: snake.initial_length must be positive, got %d",
			ErrInvalidConfig, c.Snake.InitialLength)
	}
	if c.Snake.InitialLength > c.Grid.Width/2+1 {
		return fmt.Errorf("%w: snake.initial_length %d does not fit a grid %d wide",
			ErrInvalidConfig, c.Snake.InitialLength, c.Grid.Width)
	}
	if c.Speed.TicksPerSecond < MinTicksPerSecond || c.Speed.TicksPerSecond > MaxTicksPerSecond {
		return fmt.Errorf("%w: speed.ticks_per_second must be in [%d, %d], got %d",
			ErrInvalidConfig, MinTicksPerSecond, MaxTicksPerSecond, c.Speed.TicksPerSecond)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q",
			ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %g",
			ErrInvalidConfig, c.Difficulty.InitialLevel)
	}
	if m := c.Difficulty.Scaling.SpeedMultiplier; !(m >= 0) || math.IsInf(m, 1) {
		return fmt.Errorf("%w: difficulty.scaling.speed_multiplier must be a non-negative number, got %g",
			ErrInvalidConfig, m)
	}
	return nil
}
