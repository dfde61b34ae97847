package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultStackConfig()) {
		t.Errorf("embedded defaults drifted from DefaultStackConfig():\n%+v\n%+v", cfg, DefaultStackConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("motion:\n  start_velocity: 40\nanimation:\n  easing: cosine\n")

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Motion.StartVelocity != 40 {
		t.Errorf("StartVelocity = %v, expected 40", cfg.Motion.StartVelocity)
	}
	if cfg.Animation.Easing != EasingCosine {
		t.Errorf("Easing = %q, expected cosine", cfg.Animation.Easing)
	}
	if cfg.Tower.BaseWidth != 12.5 {
		t.Errorf("untouched keys should keep defaults, BaseWidth = %v", cfg.Tower.BaseWidth)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultStackConfig()
	cfg.Tower.StartingPlatforms = 0
	cfg.Colors.MinSteps = 12
	cfg.Animation.Easing = "bounce"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	fields := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve ValidationError
		if !errors.As(e, &ve) {
			t.Fatalf("unexpected error type %T", e)
		}
		fields[ve.Field] = true
	}
	for _, want := range []string{"tower.starting_platforms", "colors.min_steps", "animation.easing"} {
		if !fields[want] {
			t.Errorf("missing validation error for %s (got %v)", want, fields)
		}
	}
}

func TestLoadStackCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("tower:\n  starting_platforms: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStack(path)
	if err != nil {
		t.Fatalf("LoadStack() failed: %v", err)
	}
	if cfg.Tower.StartingPlatforms != 5 {
		t.Errorf("StartingPlatforms = %d, expected 5", cfg.Tower.StartingPlatforms)
	}
}

func TestLoadStackCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadStack(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("motion:\n  start_velocity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadStack(bad)
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Field != "motion.start_velocity" {
		t.Errorf("invalid file error = %v, expected motion.start_velocity validation error", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultStackConfig()
	cfg.Colors.Threshold = 65

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Colors.Threshold != 65 {
		t.Errorf("Threshold = %v after round trip", back.Colors.Threshold)
	}
}

func TestApplyStackPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		velocity  float64
		increment float64
		streak    int
	}{
		{DifficultyNormal, 26.5, 0.2, 8},
		{DifficultyFixed, 26.5, 0, 8},
		{DifficultyHard, 26.5 * 1.25, 0.2 * 1.5, 12},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultStackConfig()
			ApplyStackPreset(&cfg, tc.preset)

			if cfg.Motion.StartVelocity != tc.velocity {
				t.Errorf("StartVelocity = %v, expected %v", cfg.Motion.StartVelocity, tc.velocity)
			}
			if cfg.Motion.VelocityIncrement != tc.increment {
				t.Errorf("VelocityIncrement = %v, expected %v", cfg.Motion.VelocityIncrement, tc.increment)
			}
			if cfg.Expansion.PerfectStreak != tc.streak {
				t.Errorf("PerfectStreak = %d, expected %d", cfg.Expansion.PerfectStreak, tc.streak)
			}
			if cfg.Difficulty != tc.preset {
				t.Errorf("Difficulty = %q, expected %q", cfg.Difficulty, tc.preset)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", p, err)
	}
	if p, err := ParseDifficulty(""); err != nil || p != "" {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty(insane) should fail")
	}
}
