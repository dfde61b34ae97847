package config

import (
	_ "embed"
)

//go:embed defaults/stack.yaml
var defaultStackYAML []byte

// DefaultStackConfig returns the built-in configuration.
// It mirrors defaults/stack.yaml and is used when the embedded YAML cannot be parsed.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Tower: TowerConfig{
			StartingPlatforms: 3,
			StartingHeight:    5,
			PlatformHeight:    2,
			BaseWidth:         12.5,
			BaseDepth:         12.5,
			MaxSide:           12.5,
			MinValidSide:      0.15,
			DecimalPlaces:     3,
		},
		Motion: MotionConfig{
			OscillationBound:  25,
			StartVelocity:     26.5,
			VelocityIncrement: 0.2,
		},
		Placement: PlacementConfig{
			MaxPerfectOffset: 0.12,
			MinTolerance:     0.15,
		},
		Expansion: ExpansionConfig{
			PerfectStreak: 8,
			Amount:        2.5,
			Margin:        1.5,
			Duration:      0.5,
		},
		Colors: ColorConfig{
			MinValue:         25,
			MaxValue:         175,
			Threshold:        30,
			MaxAttempts:      1000,
			MinSteps:         7,
			MaxSteps:         10,
			NewGradientCount: 2,
		},
		Background: BackgroundConfig{
			Lightening:         1.4,
			Desaturation:       0.4,
			RowGroupSize:       5,
			TransitionDuration: 2,
			TransitionChance:   0.5,
			MinDistance:        1,
			MaxDistance:        3,
		},
		Animation: AnimationConfig{
			DropDuration: 0.4,
			Easing:       EasingCubic,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStackYAML
}
