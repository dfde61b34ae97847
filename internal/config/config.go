// Package config provides YAML-based game configuration loading and
// difficulty presets for the stacking game.
package config

// StackConfig contains all tunable constants of the stacking game.
type StackConfig struct {
	Tower      TowerConfig      `yaml:"tower"`
	Motion     MotionConfig     `yaml:"motion"`
	Placement  PlacementConfig  `yaml:"placement"`
	Expansion  ExpansionConfig  `yaml:"expansion"`
	Colors     ColorConfig      `yaml:"colors"`
	Background BackgroundConfig `yaml:"background"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// TowerConfig defines the starting tower and platform sizes.
type TowerConfig struct {
	StartingPlatforms int     `yaml:"starting_platforms"`
	StartingHeight    float64 `yaml:"starting_height"` // Height of each starting platform
	PlatformHeight    float64 `yaml:"platform_height"` // Height of every dropped platform
	BaseWidth         float64 `yaml:"base_width"`
	BaseDepth         float64 `yaml:"base_depth"`
	MaxSide           float64 `yaml:"max_side"`       // Largest side an expansion may reach
	MinValidSide      float64 `yaml:"min_valid_side"` // Placements at or below this end the game
	DecimalPlaces     int     `yaml:"decimal_places"`
}

// MotionConfig defines the oscillation of the moving platform.
type MotionConfig struct {
	OscillationBound  float64 `yaml:"oscillation_bound"`
	StartVelocity     float64 `yaml:"start_velocity"`     // World units per second
	VelocityIncrement float64 `yaml:"velocity_increment"` // Added on every placement attempt
}

// PlacementConfig defines the perfect placement tolerance.
type PlacementConfig struct {
	MaxPerfectOffset float64 `yaml:"max_perfect_offset"` // Fraction of the side length
	MinTolerance     float64 `yaml:"min_tolerance"`      // Absolute tolerance floor
}

// ExpansionConfig defines the perfect streak reward.
type ExpansionConfig struct {
	PerfectStreak int     `yaml:"perfect_streak"` // Perfect placements needed before expanding
	Amount        float64 `yaml:"amount"`
	Margin        float64 `yaml:"margin"`
	Duration      float64 `yaml:"duration"` // Seconds
}

// ColorConfig defines gradient generation.
type ColorConfig struct {
	MinValue         int     `yaml:"min_value"`
	MaxValue         int     `yaml:"max_value"`
	Threshold        float64 `yaml:"threshold"` // Minimum RGB distance between related colors
	MaxAttempts      int     `yaml:"max_attempts"`
	MinSteps         int     `yaml:"min_steps"`
	MaxSteps         int     `yaml:"max_steps"`
	NewGradientCount int     `yaml:"new_gradient_count"`
}

// BackgroundConfig defines the background ramp and its transitions.
type BackgroundConfig struct {
	Lightening         float64 `yaml:"lightening"`
	Desaturation       float64 `yaml:"desaturation"`
	RowGroupSize       int     `yaml:"row_group_size"`
	TransitionDuration float64 `yaml:"transition_duration"` // Seconds
	TransitionChance   float64 `yaml:"transition_chance"`   // Per accepted placement
	MinDistance        int     `yaml:"min_distance"`        // Gradient steps ahead for the far color
	MaxDistance        int     `yaml:"max_distance"`
}

// AnimationConfig defines the tower drop animation.
type AnimationConfig struct {
	DropDuration float64 `yaml:"drop_duration"` // Seconds
	Easing       Easing  `yaml:"easing"`
}

// Easing names an eased interpolation curve.
type Easing string

const (
	EasingCubic  Easing = "cubic"  // 1 - (1-t)^3
	EasingCosine Easing = "cosine" // (1 - cos(pi*t)) / 2
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
