package config

import (
	_ "embed"
)

//go:embed defaults/oceanrun.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in tuning, matching defaults/oceanrun.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		World: WorldConfig{
			Width:        1280,
			Height:       800,
			GroundOffset: 70,
		},
		Display: DisplayConfig{
			Density: 1.0,
		},
		Actor: ActorConfig{
			XRatio: 0.28,
			YRatio: 0.45,
			Radius: 18,
		},
		Physics: PhysicsConfig{
			Gravity:     1650,
			FlapImpulse: -640,
			ScrollSpeed: 270,
			MaxStep:     0.033,
		},
		Obstacles: ObstacleConfig{
			Count:             5,
			Width:             74,
			Spacing:           300,
			BaseGap:           235,
			GapFloor:          190,
			GapShrinkPerPoint: 0.22,
			GapShrinkMax:      22,
			MarginTop:         80,
			MarginBottom:      90,
		},
		Difficulty: DifficultyConfig{
			Enabled:            true,
			InitialLevel:       0.0,
			SpeedBonusPerPoint: 1.0 / 120.0,
			MaxSpeedBonus:      0.18,
		},
		Scoring: ScoringConfig{
			Boundary: BoundaryLeadingEdge,
		},
		Storage: StorageConfig{
			BestScoreKey: "oceanrun.best",
		},
	}
}
