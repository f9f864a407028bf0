// Package config provides YAML-based tuning for Ocean Run: the single
// configuration record that parameterises physics, the obstacle field,
// scoring and the difficulty curve.
package config

// Tuning contains every gameplay constant. Lengths and speeds are in world
// units and are multiplied by the display density at use.
type Tuning struct {
	World      WorldConfig      `yaml:"world"`
	Display    DisplayConfig    `yaml:"display"`
	Actor      ActorConfig      `yaml:"actor"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Storage    StorageConfig    `yaml:"storage"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the ground line
}

// DisplayConfig defines the density factor applied to world lengths.
type DisplayConfig struct {
	Density float64 `yaml:"density"`
}

// ActorConfig defines the player entity.
type ActorConfig struct {
	XRatio float64 `yaml:"x_ratio"` // Fixed x as a fraction of world width
	YRatio float64 `yaml:"y_ratio"` // Initial y as a fraction of world height
	Radius float64 `yaml:"radius"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, units/s²
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap, negative is up
	ScrollSpeed float64 `yaml:"scroll_speed"` // Base obstacle speed, units/s
	MaxStep     float64 `yaml:"max_step"`     // Upper bound on a single dt, seconds
}

// ObstacleConfig defines the obstacle field and gap geometry.
type ObstacleConfig struct {
	Count             int     `yaml:"count"`
	Width             float64 `yaml:"width"`
	Spacing           float64 `yaml:"spacing"`
	BaseGap           float64 `yaml:"base_gap"`
	GapFloor          float64 `yaml:"gap_floor"`
	GapShrinkPerPoint float64 `yaml:"gap_shrink_per_point"`
	GapShrinkMax      float64 `yaml:"gap_shrink_max"`
	MarginTop         float64 `yaml:"margin_top"`
	MarginBottom      float64 `yaml:"margin_bottom"`
}

// DifficultyConfig defines how scroll speed grows with score.
type DifficultyConfig struct {
	Enabled            bool    `yaml:"enabled"`
	InitialLevel       float64 `yaml:"initial_level"`         // 0.0 to 1.0
	SpeedBonusPerPoint float64 `yaml:"speed_bonus_per_point"` // Added to the multiplier per point scored
	MaxSpeedBonus      float64 `yaml:"max_speed_bonus"`       // Multiplier caps at 1 + MaxSpeedBonus
}

// ScoringBoundary selects which actor edge an obstacle must clear to score.
type ScoringBoundary string

const (
	// BoundaryLeadingEdge scores once the obstacle trailing edge is left of x - r.
	BoundaryLeadingEdge ScoringBoundary = "leading_edge"
	// BoundaryCenter scores once the obstacle trailing edge is left of x.
	BoundaryCenter ScoringBoundary = "center"
)

// ScoringConfig defines the pass-through rule.
type ScoringConfig struct {
	Boundary ScoringBoundary `yaml:"boundary"`
}

// StorageConfig names the persisted keys.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// Density returns the display density clamped to [1, 2].
func (t Tuning) Density() float64 {
	d := t.Display.Density
	if d < 1 {
		return 1
	}
	if d > 2 {
		return 2
	}
	return d
}

// GroundY returns the y coordinate of the ground line.
func (t Tuning) GroundY() float64 {
	return t.World.Height - t.World.GroundOffset*t.Density()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
