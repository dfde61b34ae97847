package core

import (
	"fmt"
	"math"
)

// RGB is a color with channels on the 0..255 scale. Channels are float64 so
// that cross-fades can carry fractional values between frames; the helpers
// that emit display colors truncate to whole channel values.
//
// RGB implements image/color.Color.
type RGB struct {
	R, G, B float64
}

// Black is the zero color.
var Black = RGB{}

// NewRGB builds a color from integer channels.
func NewRGB(r, g, b int) RGB {
	return RGB{float64(r), float64(g), float64(b)}
}

// RGBA implements image/color.Color. Channels are clamped and truncated.
func (c RGB) RGBA() (r, g, b, a uint32) {
	conv := func(v float64) uint32 {
		u := uint32(ClampF(v, 0, 255))
		return u | u<<8
	}
	return conv(c.R), conv(c.G), conv(c.B), 0xffff
}

// String formats the color with truncated channels.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(c.R), int(c.G), int(c.B))
}

// Distance returns the Euclidean distance between two colors in RGB space.
func Distance(a, b RGB) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Lerp interpolates each channel linearly from a to b. t is not clamped.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// scaleChannel multiplies, truncates and clamps a channel.
func scaleChannel(v, factor float64) float64 {
	return float64(Clamp(int(v*factor), 0, 255))
}

// Lighten scales every channel by factor (> 1 lightens), clamped to [0, 255].
func Lighten(c RGB, factor float64) RGB {
	return RGB{scaleChannel(c.R, factor), scaleChannel(c.G, factor), scaleChannel(c.B, factor)}
}

// Darken scales every channel by factor (< 1 darkens), clamped to [0, 255].
func Darken(c RGB, factor float64) RGB {
	return Lighten(c, factor)
}

// Desaturate blends a color toward its luminance gray.
// factor 0 keeps the color, 1 yields full gray.
func Desaturate(c RGB, factor float64) RGB {
	gray := float64(int(0.3*c.R + 0.59*c.G + 0.11*c.B))
	return RGB{
		R: float64(int(c.R + (gray-c.R)*factor)),
		G: float64(int(c.G + (gray-c.G)*factor)),
		B: float64(int(c.B + (gray-c.B)*factor)),
	}
}

// GradientColorFrom returns step index of a numSteps gradient from start to
// target: start + (target-start)/numSteps*(index+1) per channel, truncated to
// an integer and clamped to [0, 255]. index numSteps-1 lands on target.
func GradientColorFrom(start, target RGB, numSteps, index int) RGB {
	if numSteps <= 0 {
		return target
	}
	ch := func(s, t float64) float64 {
		offset := (t - s) / float64(numSteps)
		return float64(Clamp(int(s+offset*float64(index+1)), 0, 255))
	}
	return RGB{ch(start.R, target.R), ch(start.G, target.G), ch(start.B, target.B)}
}
