package config

import "math"

// Difficulty derives score-dependent parameters from the tuning record.
// Every method is a pure function of score.
type Difficulty struct {
	cfg       DifficultyConfig
	obstacles ObstacleConfig
	density   float64
}

// NewDifficulty creates the difficulty curve for a tuning record.
func NewDifficulty(t Tuning) *Difficulty {
	return &Difficulty{
		cfg:       t.Difficulty,
		obstacles: t.Obstacles,
		density:   t.Density(),
	}
}

// Level returns the current difficulty level (0.0 to 1.0).
// It starts at the initial level and reaches 1.0 once the speed bonus is capped.
func (d *Difficulty) Level(score int) float64 {
	initial := clampF(d.cfg.InitialLevel, 0, 1)
	if !d.cfg.Enabled || d.cfg.SpeedBonusPerPoint <= 0 || d.cfg.MaxSpeedBonus <= 0 {
		return initial
	}

	progress := float64(max(0, score)) * d.cfg.SpeedBonusPerPoint / d.cfg.MaxSpeedBonus
	progress = clampF(progress, 0, 1)

	// Interpolate from initial level to 1.0
	return initial + progress*(1.0-initial)
}

// Factor returns the scroll speed multiplier for a score.
// Non-decreasing in score and bounded by MaxMultiplier.
func (d *Difficulty) Factor(score int) float64 {
	return 1.0 + d.Level(score)*math.Max(0, d.cfg.MaxSpeedBonus)
}

// MaxMultiplier is the asymptotic cap of Factor.
func (d *Difficulty) MaxMultiplier() float64 {
	return 1.0 + math.Max(0, d.cfg.MaxSpeedBonus)
}

// GapShrink returns how much the gap has narrowed at a score.
// Non-decreasing in score and bounded by GapShrinkMax.
func (d *Difficulty) GapShrink(score int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	limit := math.Max(0, d.obstacles.GapShrinkMax) * d.density
	shrink := float64(max(0, score)) * math.Max(0, d.obstacles.GapShrinkPerPoint) * d.density
	return math.Min(limit, shrink)
}

// GapForScore returns the passable gap height at a score; never below the floor.
func (d *Difficulty) GapForScore(score int) float64 {
	gap := d.obstacles.BaseGap*d.density - d.GapShrink(score)
	return math.Max(d.obstacles.GapFloor*d.density, gap)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
