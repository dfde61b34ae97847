package stack

import "github.com/vovakirdan/tui-stack/internal/core"

// ColorPair is the top and bottom color of the background ramp.
type ColorPair struct {
	Start core.RGB // Top
	End   core.RGB // Bottom
}

// Transition cross-fades the background between two color pairs.
type Transition struct {
	current  ColorPair
	starting ColorPair
	target   ColorPair
	progress float64
	running  bool
	duration float64
}

// NewTransition creates an idle transition showing initial.
func NewTransition(initial ColorPair, duration float64) *Transition {
	return &Transition{
		current:  initial,
		starting: initial,
		target:   initial,
		progress: 1,
		duration: duration,
	}
}

// Current returns the pair to render.
func (t *Transition) Current() ColorPair { return t.current }

// Target returns the pair the transition ends on.
func (t *Transition) Target() ColorPair { return t.target }

// Running reports whether a transition is in progress.
func (t *Transition) Running() bool { return t.running }

// Progress returns the linear progress, 1 when idle.
func (t *Transition) Progress() float64 { return t.progress }

// Start begins a transition from the current pair to target. It is refused
// while another transition is running.
func (t *Transition) Start(target ColorPair) bool {
	if t.running {
		return false
	}
	t.starting = t.current
	t.target = target
	t.progress = 0
	t.running = true
	return true
}

// Advance moves the transition forward by dt seconds.
func (t *Transition) Advance(dt float64) {
	if !t.running {
		return
	}
	if t.duration > 0 {
		t.progress += dt / t.duration
	} else {
		t.progress = 1
	}
	if t.progress >= 1 {
		t.progress = 1
		t.current = t.target
		t.running = false
		return
	}
	t.current = ColorPair{
		Start: core.Lerp(t.starting.Start, t.target.Start, t.progress),
		End:   core.Lerp(t.starting.End, t.target.End, t.progress),
	}
}

// RampStyle post-processes ramp colors.
type RampStyle struct {
	Lightening   float64
	Desaturation float64
	GroupSize    int // Rows sharing one color
}

// Ramp returns one color per band of GroupSize rows, top band first, for a
// background rows tall. The top of the screen leans towards pair.Start.
func Ramp(pair ColorPair, rows int, style RampStyle) []core.RGB {
	group := style.GroupSize
	if group < 1 {
		group = 1
	}
	if rows <= 0 {
		return nil
	}

	bands := make([]core.RGB, 0, (rows+group-1)/group)
	for i := 0; i < rows; i += group {
		c := core.GradientColorFrom(pair.Start, pair.End, rows, rows-i-1)
		c = core.Lighten(c, style.Lightening)
		bands = append(bands, core.Desaturate(c, style.Desaturation))
	}
	return bands
}
