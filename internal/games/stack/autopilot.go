package stack

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-stack/internal/core"
)

// Autopilot plays the game by dropping each platform close to the anchor of
// the one below. Each platform gets a random aim within Jitter world units
// of a perfect drop.
type Autopilot struct {
	Jitter float64

	rng    *rand.Rand
	target *Platform
	aim    float64
}

// NewAutopilot creates an autopilot with its own random source.
func NewAutopilot(seed int64, jitter float64) *Autopilot {
	return &Autopilot{
		Jitter: jitter,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Offset returns how far the moving platform sits from the tower top along
// its axis.
func Offset(g *Game) (float64, core.Axis) {
	cur, top := g.Current(), g.Tower().Top()
	if cur == nil || top == nil {
		return 0, core.AxisNone
	}
	axis := cur.Axis()
	a, _ := cur.Box().Span(axis)
	b, _ := top.Footprint().Span(axis)
	return a - b, axis
}

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	st := g.State()
	if st.GameOver || st.Paused || g.Current() == nil {
		return in
	}

	if cur := g.Current(); cur != a.target {
		a.target = cur
		a.aim = (a.rng.Float64()*2 - 1) * a.Jitter
	}

	offset, _ := Offset(g)
	m, ok := g.Current().Motion()
	if !ok {
		return in
	}
	if math.Abs(offset-a.aim) <= math.Abs(m.Velocity)*g.TickDelta() {
		in.Set(core.ActionDrop)
	}
	return in
}
