package stack

import (
	"math"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
)

// drop is a running tower drop animation. Every platform slides down by the
// height of the one just added.
type drop struct {
	progress float64
	initial  []float64
	final    []float64
}

// Tower is the ordered stack of placed platforms, bottom first.
type Tower struct {
	platforms []*Platform
	drop      *drop

	dropDuration float64
	easing       config.Easing
	reference    float64 // Side length the tolerance curve is scaled by
	placement    config.PlacementConfig
	places       int
}

// NewTower builds the starting tower. Starting platform i sits
// (count - i) starting heights below the origin and is colored by stepping
// from black towards initial.
func NewTower(cfg config.StackConfig, initial core.RGB) *Tower {
	t := &Tower{
		dropDuration: cfg.Animation.DropDuration,
		easing:       cfg.Animation.Easing,
		reference:    cfg.Tower.BaseWidth,
		placement:    cfg.Placement,
		places:       cfg.Tower.DecimalPlaces,
	}

	n := cfg.Tower.StartingPlatforms
	h := cfg.Tower.StartingHeight
	for i := 0; i < n; i++ {
		t.platforms = append(t.platforms, NewPlatform(PlatformSpec{
			Width:   cfg.Tower.BaseWidth,
			Depth:   cfg.Tower.BaseDepth,
			Height:  h,
			ZOffset: float64(n-i) * h,
			Color:   core.GradientColorFrom(core.Black, initial, n, i),
		}))
	}
	return t
}

// Len returns the number of platforms.
func (t *Tower) Len() int { return len(t.platforms) }

// Top returns the topmost platform, or nil for an empty tower.
func (t *Tower) Top() *Platform {
	if len(t.platforms) == 0 {
		return nil
	}
	return t.platforms[len(t.platforms)-1]
}

// Platforms returns the platforms bottom first. The slice is a copy.
func (t *Tower) Platforms() []*Platform {
	out := make([]*Platform, len(t.platforms))
	copy(out, t.platforms)
	return out
}

// Dropping reports whether the drop animation is running.
func (t *Tower) Dropping() bool { return t.drop != nil }

// DropProgress returns the linear progress of the running drop, or 1 when idle.
func (t *Tower) DropProgress() float64 {
	if t.drop == nil {
		return 1
	}
	return t.drop.progress
}

// Add stops p, pushes it on top and starts a drop of the whole tower by the
// height of p. A drop still running is completed first.
func (t *Tower) Add(p *Platform) {
	if t.drop != nil {
		t.finishDrop()
	}
	p.Stop()
	t.platforms = append(t.platforms, p)

	d := &drop{
		initial: make([]float64, len(t.platforms)),
		final:   make([]float64, len(t.platforms)),
	}
	for i, pl := range t.platforms {
		d.initial[i] = pl.box.MinZ
		d.final[i] = pl.box.MinZ - p.height
	}
	t.drop = d
}

// Update advances platform animations and the drop by dt seconds.
func (t *Tower) Update(dt float64) {
	for _, p := range t.platforms {
		p.Advance(dt)
	}

	d := t.drop
	if d == nil {
		return
	}
	if t.dropDuration > 0 {
		d.progress += dt / t.dropDuration
	} else {
		d.progress = 1
	}
	if d.progress >= 1 {
		t.finishDrop()
		return
	}
	k := ease(t.easing, d.progress)
	for i := range d.initial {
		t.platforms[i].SetZ(lerp(d.initial[i], d.final[i], k))
	}
}

func (t *Tower) finishDrop() {
	for i, z := range t.drop.final {
		t.platforms[i].SetZ(z)
	}
	t.drop = nil
}

// Trim is the outcome of comparing a moving platform with the tower top.
type Trim struct {
	Width, Depth float64 // Dimensions of the next platform
	Perfect      bool
}

// Tolerance returns how far the overlap may fall short of size and still count
// as perfect. It grows with the side length and never drops below the floor.
func (t *Tower) Tolerance(size float64) float64 {
	curve := 1 - math.Exp(-size/t.reference)
	return math.Max(t.placement.MinTolerance, size*t.placement.MaxPerfectOffset*curve)
}

// Trimming compares moving against the top of the tower.
func (t *Tower) Trimming(moving *Platform) Trim {
	return t.TrimmingAgainst(moving, t.Top())
}

// TrimmingAgainst compares moving against last. Only the side on the axis
// moving travelled on decides perfection; on a perfect placement the
// dimensions of moving are kept, otherwise both overlaps are returned.
func (t *Tower) TrimmingAgainst(moving, last *Platform) Trim {
	mb, lb := moving.box, last.Footprint()
	overlapX := core.Round(core.Overlap1D(mb.MinX, mb.MaxX, lb.MinX, lb.MaxX), t.places)
	overlapY := core.Round(core.Overlap1D(mb.MinY, mb.MaxY, lb.MinY, lb.MaxY), t.places)

	var perfect bool
	switch moving.axis {
	case core.AxisX:
		perfect = moving.width-overlapX <= t.Tolerance(moving.width)
	case core.AxisY:
		perfect = moving.depth-overlapY <= t.Tolerance(moving.depth)
	}

	if perfect {
		return Trim{Width: moving.width, Depth: moving.depth, Perfect: true}
	}
	return Trim{Width: overlapX, Depth: overlapY}
}
