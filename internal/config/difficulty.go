package config

import "fmt"

// ParseDifficulty converts a CLI string into a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", s)
	}
}

// ApplyStackPreset modifies the config based on a difficulty preset.
// normal keeps the values from the file; fixed keeps them but stops the
// platform from speeding up.
func ApplyStackPreset(cfg *StackConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Motion.StartVelocity *= 0.75
		cfg.Motion.VelocityIncrement *= 0.5
		cfg.Placement.MaxPerfectOffset *= 1.5
	case DifficultyHard:
		cfg.Motion.StartVelocity *= 1.25
		cfg.Motion.VelocityIncrement *= 1.5
		cfg.Placement.MaxPerfectOffset *= 0.6
		cfg.Expansion.PerfectStreak += 4
	case DifficultyFixed:
		cfg.Motion.VelocityIncrement = 0
	}
}
