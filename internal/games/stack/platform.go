package stack

import (
	"math"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
)

// Face lighting factors for the top and left faces. The right face is drawn in
// the base color.
const (
	topLightening  = 1.4
	leftLightening = 0.6
)

// Oscillation is the motion state of a platform sliding back and forth on one
// axis. A stationary platform has no Oscillation.
type Oscillation struct {
	Velocity float64 // Signed, world units per second
	Bound    float64 // Maximum distance from Center
	Center   float64 // Alignment anchor on the motion axis
	Offset   float64 // Current min-corner position relative to Center
}

// Expansion is the state of a running expansion animation. A platform that is
// not expanding has no Expansion.
type Expansion struct {
	Axis     core.Axis
	Sign     int // +1 grows the max face, -1 the min face
	Progress float64
	Duration float64
	Easing   config.Easing
	From     float64 // Face coordinate when the expansion started
	To       float64 // Face coordinate when it completes
}

// PlatformSpec describes a platform to create.
type PlatformSpec struct {
	Width, Depth, Height float64

	Moving       bool
	Velocity     float64
	Bound        float64
	StackHeight  int // Platforms in the tower when this one spawns
	InitialCount int // Starting platforms of the tower

	ZOffset float64 // Distance below the origin for stationary platforms
	Color   core.RGB
}

// Platform is one box of the tower, or the box the player is about to drop.
type Platform struct {
	box    core.Box
	width  float64
	depth  float64
	height float64
	axis   core.Axis
	color  core.RGB

	motion    *Oscillation
	expansion *Expansion
}

// MotionAxisFor returns the axis a platform spawned at the given stack height
// travels on. Consecutive platforms alternate between Y and X.
func MotionAxisFor(stackHeight, initialCount int) core.Axis {
	if (stackHeight-initialCount)%2 != 0 {
		return core.AxisX
	}
	return core.AxisY
}

// NewPlatform creates a platform with its min corner at the world origin. A
// moving platform starts at the negative end of its travel; a stationary one
// is lowered by ZOffset.
func NewPlatform(spec PlatformSpec) *Platform {
	p := &Platform{
		box:    core.NewBox(core.Vec3{}, spec.Width, spec.Depth, spec.Height),
		width:  spec.Width,
		depth:  spec.Depth,
		height: spec.Height,
		color:  spec.Color,
	}
	if !spec.Moving {
		p.box = p.box.Translate(core.Vec3{Z: -spec.ZOffset})
		return p
	}

	p.axis = MotionAxisFor(spec.StackHeight, spec.InitialCount)
	p.motion = &Oscillation{
		Velocity: spec.Velocity,
		Bound:    spec.Bound,
		Offset:   -spec.Bound,
	}
	p.placeOnAxis()
	return p
}

// Box returns the current world box.
func (p *Platform) Box() core.Box { return p.box }

// Footprint returns the box the platform settles into once a running
// expansion completes. Without an expansion it equals Box.
func (p *Platform) Footprint() core.Box {
	b := p.box
	if e := p.expansion; e != nil {
		b = faceAt(b, e.Axis, e.Sign, e.To)
	}
	return b
}

// Width returns the logical width along X.
func (p *Platform) Width() float64 { return p.width }

// Depth returns the logical depth along Y.
func (p *Platform) Depth() float64 { return p.depth }

// Height returns the box height.
func (p *Platform) Height() float64 { return p.height }

// Axis returns the axis the platform travelled on, or AxisNone for starting
// platforms. It is kept after the platform stops.
func (p *Platform) Axis() core.Axis { return p.axis }

// Color returns the base color.
func (p *Platform) Color() core.RGB { return p.color }

// Moving reports whether the platform is oscillating.
func (p *Platform) Moving() bool { return p.motion != nil }

// Motion returns a copy of the oscillation state.
func (p *Platform) Motion() (Oscillation, bool) {
	if p.motion == nil {
		return Oscillation{}, false
	}
	return *p.motion, true
}

// Expanding reports whether an expansion animation is running.
func (p *Platform) Expanding() bool { return p.expansion != nil }

// ExpansionState returns a copy of the running expansion.
func (p *Platform) ExpansionState() (Expansion, bool) {
	if p.expansion == nil {
		return Expansion{}, false
	}
	return *p.expansion, true
}

// Colors returns the top, left and right face colors.
func (p *Platform) Colors() [3]core.RGB {
	return [3]core.RGB{
		core.Lighten(p.color, topLightening),
		core.Lighten(p.color, leftLightening),
		p.color,
	}
}

// Stop halts the oscillation. The travel axis is kept.
func (p *Platform) Stop() {
	p.motion = nil
}

// SetZ moves the box vertically so its bottom sits at z.
func (p *Platform) SetZ(z float64) {
	p.box.MinZ = z
	p.box.MaxZ = z + p.height
}

// Advance moves the platform forward by dt seconds.
// Advance(0) leaves the state unchanged.
func (p *Platform) Advance(dt float64) {
	if m := p.motion; m != nil {
		m.Offset += m.Velocity * dt
		if m.Offset > m.Bound {
			m.Offset = m.Bound
			m.Velocity = -m.Velocity
		} else if m.Offset < -m.Bound {
			m.Offset = -m.Bound
			m.Velocity = -m.Velocity
		}
		p.placeOnAxis()
	}

	if e := p.expansion; e != nil {
		if e.Duration > 0 {
			e.Progress += dt / e.Duration
		} else {
			e.Progress = 1
		}
		if e.Progress >= 1 {
			p.box = faceAt(p.box, e.Axis, e.Sign, e.To)
			p.expansion = nil
			return
		}
		p.box = faceAt(p.box, e.Axis, e.Sign, lerp(e.From, e.To, ease(e.Easing, e.Progress)))
	}
}

// placeOnAxis positions the box from the oscillation state.
func (p *Platform) placeOnAxis() {
	lo := p.motion.Center + p.motion.Offset
	switch p.axis {
	case core.AxisX:
		p.box.MinX = lo
		p.box.MaxX = lo + p.width
	case core.AxisY:
		p.box.MinY = lo
		p.box.MaxY = lo + p.depth
	}
}

// faceAt returns b with one face moved to v.
func faceAt(b core.Box, axis core.Axis, sign int, v float64) core.Box {
	switch {
	case axis == core.AxisX && sign > 0:
		b.MaxX = v
	case axis == core.AxisX:
		b.MinX = v
	case sign > 0:
		b.MaxY = v
	default:
		b.MinY = v
	}
	return b
}

// AlignTo translates the platform so its min corner matches the min corner of
// target's footprint in the horizontal plane. A moving platform is then
// anchored on target and pulled back to the negative end of its travel.
func (p *Platform) AlignTo(target *Platform) {
	p.moveCornerTo(target)
	if m := p.motion; m != nil {
		m.Center, _ = target.Footprint().Span(p.axis)
		m.Offset = -m.Bound
		p.placeOnAxis()
	}
}

// PerfectAlign stops the platform exactly on top of target.
func (p *Platform) PerfectAlign(target *Platform) {
	p.motion = nil
	p.moveCornerTo(target)
}

func (p *Platform) moveCornerTo(target *Platform) {
	to, from := target.Footprint().Min(), p.box.Min()
	p.box = p.box.Translate(core.Vec3{X: to.X - from.X, Y: to.Y - from.Y})
}

// TrimTo stops the platform and cuts off the parts that hang over target.
func (p *Platform) TrimTo(target *Platform, width, depth float64) {
	p.motion = nil
	p.box = p.box.ClipXY(target.Footprint())
	p.width = width
	p.depth = depth
}

// ExpansionRules configures Expand.
type ExpansionRules struct {
	MaxSide  float64
	Amount   float64
	Margin   float64
	Duration float64
	Places   int
	Easing   config.Easing
}

// ExpansionRulesFrom builds the rules from the game configuration.
func ExpansionRulesFrom(cfg config.StackConfig) ExpansionRules {
	return ExpansionRules{
		MaxSide:  cfg.Tower.MaxSide,
		Amount:   cfg.Expansion.Amount,
		Margin:   cfg.Expansion.Margin,
		Duration: cfg.Expansion.Duration,
		Places:   cfg.Tower.DecimalPlaces,
		Easing:   cfg.Animation.Easing,
	}
}

// Expand grows the platform along the axis it travelled on, inside the square
// region [0, MaxSide] on both axes. The face closest to the viewer grows first;
// the far face grows only when the near one sits on the region edge. A growth
// that would leave less than Margin to the edge snaps to the edge.
//
// Expand returns the new width and depth and the sign of the face that moved,
// or 0 when the platform could not grow.
func (p *Platform) Expand(r ExpansionRules) (width, depth float64, sign int) {
	axis := core.AxisY
	if p.axis == core.AxisX {
		axis = core.AxisX
	}

	p.box = roundBox(p.box, r.Places)
	lo, hi := p.box.Span(axis)
	if core.Round(hi-lo, r.Places) >= r.MaxSide {
		return p.width, p.depth, 0
	}

	var from, to float64
	switch {
	case hi < r.MaxSide:
		sign = 1
		from = hi
		to = hi + r.Amount
		if to+r.Margin >= r.MaxSide {
			to = r.MaxSide
		}
		to = math.Min(core.Round(to, r.Places), lo+r.MaxSide)
	case lo > 0:
		sign = -1
		from = lo
		to = lo - r.Amount
		if to-r.Margin <= 0 {
			to = 0
		}
		to = math.Max(core.Round(to, r.Places), hi-r.MaxSide)
	default:
		return p.width, p.depth, 0
	}

	side := hi - lo + math.Abs(to-from)
	if axis == core.AxisX {
		p.width = core.Round(side, r.Places)
	} else {
		p.depth = core.Round(side, r.Places)
	}

	p.motion = nil
	p.expansion = &Expansion{
		Axis:     axis,
		Sign:     sign,
		Duration: r.Duration,
		Easing:   r.Easing,
		From:     from,
		To:       to,
	}
	return p.width, p.depth, sign
}

func roundBox(b core.Box, places int) core.Box {
	return core.Box{
		MinX: core.Round(b.MinX, places), MaxX: core.Round(b.MaxX, places),
		MinY: core.Round(b.MinY, places), MaxY: core.Round(b.MaxY, places),
		MinZ: b.MinZ, MaxZ: b.MaxZ,
	}
}
