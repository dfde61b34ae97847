// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec3 is a point in world space. Z points up.
type Vec3 struct {
	X, Y, Z float64
}

// Axis selects a horizontal world axis.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Box is an axis-aligned box given by its ranges on each world axis.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewBox creates a box with its min corner at origin and the given extents.
func NewBox(origin Vec3, width, depth, height float64) Box {
	return Box{
		MinX: origin.X, MaxX: origin.X + width,
		MinY: origin.Y, MaxY: origin.Y + depth,
		MinZ: origin.Z, MaxZ: origin.Z + height,
	}
}

// Width returns the extent along X.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Depth returns the extent along Y.
func (b Box) Depth() float64 { return b.MaxY - b.MinY }

// Height returns the extent along Z.
func (b Box) Height() float64 { return b.MaxZ - b.MinZ }

// Min returns the minimum corner.
func (b Box) Min() Vec3 { return Vec3{b.MinX, b.MinY, b.MinZ} }

// Span returns the range of the box along a horizontal axis.
func (b Box) Span(a Axis) (lo, hi float64) {
	if a == AxisY {
		return b.MinY, b.MaxY
	}
	return b.MinX, b.MaxX
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec3) Box {
	b.MinX += d.X
	b.MaxX += d.X
	b.MinY += d.Y
	b.MaxY += d.Y
	b.MinZ += d.Z
	b.MaxZ += d.Z
	return b
}

// Shift moves the box along a horizontal axis.
func (b Box) Shift(a Axis, d float64) Box {
	switch a {
	case AxisX:
		b.MinX += d
		b.MaxX += d
	case AxisY:
		b.MinY += d
		b.MaxY += d
	}
	return b
}

// Corners returns the eight corners. Index bits are (x, y, z) from most to
// least significant: corner 0 is the min corner, corner 7 the max corner.
func (b Box) Corners() [8]Vec3 {
	var c [8]Vec3
	xs := [2]float64{b.MinX, b.MaxX}
	ys := [2]float64{b.MinY, b.MaxY}
	zs := [2]float64{b.MinZ, b.MaxZ}
	i := 0
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				c[i] = Vec3{x, y, z}
				i++
			}
		}
	}
	return c
}

// ClipXY clamps the horizontal ranges of b into those of bounds.
func (b Box) ClipXY(bounds Box) Box {
	b.MinX = ClampF(b.MinX, bounds.MinX, bounds.MaxX)
	b.MaxX = ClampF(b.MaxX, bounds.MinX, bounds.MaxX)
	b.MinY = ClampF(b.MinY, bounds.MinY, bounds.MaxY)
	b.MaxY = ClampF(b.MaxY, bounds.MinY, bounds.MaxY)
	return b
}

// Overlap1D returns the length of the intersection of [aLo, aHi] and [bLo, bHi],
// or 0 when they are disjoint.
func Overlap1D(aLo, aHi, bLo, bHi float64) float64 {
	return math.Max(0, math.Min(aHi, bHi)-math.Max(aLo, bLo))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	if places < 0 {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
