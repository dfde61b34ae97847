package stack

import (
	"math"

	"github.com/vovakirdan/tui-stack/internal/config"
)

// easeOutCubic decelerates into the end of the animation.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// easeCosine starts and ends with zero velocity.
func easeCosine(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// ease maps linear progress in [0, 1] through the named curve.
func ease(e config.Easing, t float64) float64 {
	if e == config.EasingCosine {
		return easeCosine(t)
	}
	return easeOutCubic(t)
}

// lerp interpolates between two values.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
