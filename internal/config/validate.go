package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks every field and reports all problems at once.
func (c StackConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		}
	}

	t := c.Tower
	check(t.StartingPlatforms >= 1, "tower.starting_platforms", "must be at least 1, got %d", t.StartingPlatforms)
	check(t.StartingHeight > 0, "tower.starting_height", "must be positive, got %v", t.StartingHeight)
	check(t.PlatformHeight > 0, "tower.platform_height", "must be positive, got %v", t.PlatformHeight)
	check(t.BaseWidth > 0, "tower.base_width", "must be positive, got %v", t.BaseWidth)
	check(t.BaseDepth > 0, "tower.base_depth", "must be positive, got %v", t.BaseDepth)
	check(t.MaxSide >= t.BaseWidth && t.MaxSide >= t.BaseDepth, "tower.max_side",
		"must not be smaller than the base (%v x %v), got %v", t.BaseWidth, t.BaseDepth, t.MaxSide)
	check(t.MinValidSide >= 0, "tower.min_valid_side", "must not be negative, got %v", t.MinValidSide)
	check(t.DecimalPlaces >= 0 && t.DecimalPlaces <= 9, "tower.decimal_places", "must be within 0..9, got %d", t.DecimalPlaces)

	m := c.Motion
	check(m.OscillationBound > 0, "motion.oscillation_bound", "must be positive, got %v", m.OscillationBound)
	check(m.StartVelocity > 0, "motion.start_velocity", "must be positive, got %v", m.StartVelocity)
	check(m.VelocityIncrement >= 0, "motion.velocity_increment", "must not be negative, got %v", m.VelocityIncrement)

	p := c.Placement
	check(p.MaxPerfectOffset >= 0 && p.MaxPerfectOffset < 1, "placement.max_perfect_offset", "must be within [0, 1), got %v", p.MaxPerfectOffset)
	check(p.MinTolerance >= 0, "placement.min_tolerance", "must not be negative, got %v", p.MinTolerance)

	e := c.Expansion
	check(e.PerfectStreak >= 1, "expansion.perfect_streak", "must be at least 1, got %d", e.PerfectStreak)
	check(e.Amount > 0, "expansion.amount", "must be positive, got %v", e.Amount)
	check(e.Margin >= 0, "expansion.margin", "must not be negative, got %v", e.Margin)
	check(e.Duration > 0, "expansion.duration", "must be positive, got %v", e.Duration)

	col := c.Colors
	check(col.MinValue >= 0 && col.MaxValue <= 255 && col.MinValue <= col.MaxValue, "colors.min_value",
		"range %d..%d must lie within 0..255", col.MinValue, col.MaxValue)
	check(col.Threshold >= 0, "colors.threshold", "must not be negative, got %v", col.Threshold)
	check(col.MaxAttempts >= 1, "colors.max_attempts", "must be at least 1, got %d", col.MaxAttempts)
	check(col.MinSteps >= 1 && col.MinSteps <= col.MaxSteps, "colors.min_steps",
		"range %d..%d must be ordered and start at 1 or more", col.MinSteps, col.MaxSteps)
	check(col.NewGradientCount >= 1, "colors.new_gradient_count", "must be at least 1, got %d", col.NewGradientCount)

	b := c.Background
	check(b.RowGroupSize >= 1, "background.row_group_size", "must be at least 1, got %d", b.RowGroupSize)
	check(b.Desaturation >= 0 && b.Desaturation <= 1, "background.desaturation", "must be within [0, 1], got %v", b.Desaturation)
	check(b.TransitionDuration > 0, "background.transition_duration", "must be positive, got %v", b.TransitionDuration)
	check(b.TransitionChance >= 0 && b.TransitionChance <= 1, "background.transition_chance", "must be within [0, 1], got %v", b.TransitionChance)
	check(b.MinDistance >= 0 && b.MinDistance <= b.MaxDistance, "background.min_distance",
		"range %d..%d must be ordered and non-negative", b.MinDistance, b.MaxDistance)

	a := c.Animation
	check(a.DropDuration > 0, "animation.drop_duration", "must be positive, got %v", a.DropDuration)
	check(a.Easing == EasingCubic || a.Easing == EasingCosine, "animation.easing",
		"must be %q or %q, got %q", EasingCubic, EasingCosine, a.Easing)

	switch c.Difficulty {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
	default:
		check(false, "difficulty", "unknown preset %q", c.Difficulty)
	}

	return errors.Join(errs...)
}
