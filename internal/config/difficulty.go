package config

import "math"

// DifficultyManager calculates the snake's speed based on score/moves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/moves.
// Disabled progression still applies the initial level.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TickRate returns the moves per second for the current difficulty level,
// from base up to base * (1 + speed_multiplier), clamped to the allowed range.
func (d *DifficultyManager) TickRate(base int, score int, ticks int) int {
	if !d.cfg.Enabled {
		return clampI(base, MinTicksPerSecond, MaxTicksPerSecond)
	}
	level := d.Level(score, ticks)
	rate := math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier))
	if math.IsNaN(rate) {
		return clampI(base, MinTicksPerSecond, MaxTicksPerSecond)
	}
	// Clamp before converting; huge multipliers overflow int.
	return int(clampF(rate, MinTicksPerSecond, MaxTicksPerSecond))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

func clampI(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
