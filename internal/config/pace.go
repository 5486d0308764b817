package config

import "math"

// Pace turns the difficulty curve into concrete per-day numbers: how long
// customers wait and how fast stations replenish. Level 0 is the opening
// day; level 1 is the busiest the farm ever gets.
type Pace struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewPace creates a pace manager from a difficulty config.
func NewPace(cfg DifficultyConfig) *Pace {
	return &Pace{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the starting difficulty level (0.0 to 1.0).
func (p *Pace) SetInitialLevel(level float64) {
	p.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (p *Pace) SetEnabled(enabled bool) {
	p.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (p *Pace) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a given day.
// Day 1 sits at the initial level; the curve tops out after MaxAt days.
func (p *Pace) Level(day int) float64 {
	if !p.cfg.Enabled || p.cfg.Progression.Type != "day" {
		return p.initialLevel
	}

	maxAt := float64(p.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(day-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return p.initialLevel + progress*(1.0-p.initialLevel)
}

// Patience returns how many ticks a customer waits on the given day.
func (p *Pace) Patience(base int, day int) int {
	if base <= 0 {
		return 0 // Patience disabled: customers wait forever
	}
	level := p.Level(day)
	result := base - int(level*float64(p.cfg.Scaling.PatienceReduction))
	if result < 180 { // Always leave 3 seconds
		result = 180
	}
	return result
}

// Cooldown returns how many ticks a station takes to replenish on the
// given day. Stations slow down as the season wears on.
func (p *Pace) Cooldown(base int, day int) int {
	level := p.Level(day)
	return base + int(level*p.cfg.Scaling.CooldownIncrease*float64(base))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
