package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned by Validate for any rejected configuration.
var ErrInvalidTuning = errors.New("config: invalid tuning")

// Validate checks the tuning once at setup. A configuration that passes can
// never produce an empty obstacle spawn interval for any reachable score.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.World.Width > 0, "world.width must be positive, got %v", t.World.Width)
	check(t.World.Height > 0, "world.height must be positive, got %v", t.World.Height)
	check(t.World.GroundOffset >= 0, "world.ground_offset must not be negative, got %v", t.World.GroundOffset)
	check(t.Actor.XRatio > 0 && t.Actor.XRatio < 1, "actor.x_ratio must be in (0, 1), got %v", t.Actor.XRatio)
	check(t.Actor.YRatio > 0 && t.Actor.YRatio < 1, "actor.y_ratio must be in (0, 1), got %v", t.Actor.YRatio)
	check(t.Actor.Radius > 0, "actor.radius must be positive, got %v", t.Actor.Radius)
	check(t.Physics.Gravity > 0, "physics.gravity must be positive, got %v", t.Physics.Gravity)
	check(t.Physics.FlapImpulse < 0, "physics.flap_impulse must be negative (upward), got %v", t.Physics.FlapImpulse)
	check(t.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive, got %v", t.Physics.ScrollSpeed)
	check(t.Physics.MaxStep > 0, "physics.max_step must be positive, got %v", t.Physics.MaxStep)
	check(t.Obstacles.Count >= 1, "obstacles.count must be at least 1, got %d", t.Obstacles.Count)
	check(t.Obstacles.Width > 0, "obstacles.width must be positive, got %v", t.Obstacles.Width)
	check(t.Obstacles.Spacing > t.Obstacles.Width,
		"obstacles.spacing (%v) must exceed obstacles.width (%v)", t.Obstacles.Spacing, t.Obstacles.Width)
	check(t.Obstacles.GapFloor > 0, "obstacles.gap_floor must be positive, got %v", t.Obstacles.GapFloor)
	check(t.Obstacles.MarginTop >= 0, "obstacles.margin_top must not be negative, got %v", t.Obstacles.MarginTop)
	check(t.Obstacles.MarginBottom >= 0, "obstacles.margin_bottom must not be negative, got %v", t.Obstacles.MarginBottom)
	check(t.Obstacles.GapShrinkPerPoint >= 0, "obstacles.gap_shrink_per_point must not be negative")
	check(t.Obstacles.GapShrinkMax >= 0, "obstacles.gap_shrink_max must not be negative")
	check(t.Difficulty.InitialLevel >= 0 && t.Difficulty.InitialLevel <= 1,
		"difficulty.initial_level must be in [0, 1], got %v", t.Difficulty.InitialLevel)
	check(t.Difficulty.SpeedBonusPerPoint >= 0, "difficulty.speed_bonus_per_point must not be negative")
	check(t.Difficulty.MaxSpeedBonus >= 0, "difficulty.max_speed_bonus must not be negative")
	check(t.Scoring.Boundary == BoundaryLeadingEdge || t.Scoring.Boundary == BoundaryCenter,
		"scoring.boundary must be %q or %q, got %q", BoundaryLeadingEdge, BoundaryCenter, t.Scoring.Boundary)
	check(t.Storage.BestScoreKey != "", "storage.best_score_key must not be empty")

	d := t.Density()
	groundY := t.GroundY()
	check(groundY > 0, "ground line %v lies above the ceiling", groundY)
	check(t.Obstacles.GapFloor*d < groundY,
		"obstacles.gap_floor (%v) must be smaller than the playfield height (%v)", t.Obstacles.GapFloor*d, groundY)

	// The gap is largest at score 0 and never grows, so score 0 bounds the
	// spawn interval for every reachable score.
	gap := NewDifficulty(t).GapForScore(0)
	topMin := t.Obstacles.MarginTop * d
	topMax := groundY - gap - t.Obstacles.MarginBottom*d
	check(topMax >= topMin,
		"obstacle spawn interval is empty: top wall must lie in [%v, %v] for gap %v", topMin, topMax, gap)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidTuning, errors.Join(errs...))
}
