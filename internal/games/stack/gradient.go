package stack

import (
	"math/rand"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
)

// Gradient is a start to target color ramp covering the stack heights
// From through To inclusive.
type Gradient struct {
	Start  core.RGB
	Target core.RGB
	Steps  int
	From   int
	To     int // From + Steps
}

// Contains reports whether the gradient covers the stack height h.
func (g Gradient) Contains(h int) bool {
	return h >= g.From && h <= g.To
}

// Color returns the color for stack height h. Height From is one step away
// from Start.
func (g Gradient) Color(h int) core.RGB {
	return core.GradientColorFrom(g.Start, g.Target, g.Steps, h-g.From)
}

// Sample is the outcome of target color generation. Fallback is set when the
// attempt budget ran out or the history check failed and Color was drawn
// without constraints.
type Sample struct {
	Color    core.RGB
	Fallback bool
	Attempts int
}

// ColorInfo describes the color some steps ahead of a stack height.
type ColorInfo struct {
	Height   int
	Color    core.RGB
	Gradient Gradient
}

// Sequencer generates and looks up the chain of gradients that colors the
// tower. The chain starts at a given height and only ever grows.
type Sequencer struct {
	gradients []Gradient
	rng       *rand.Rand
	cfg       config.ColorConfig
	fallbacks int
}

// NewSequencer creates a sequencer whose first gradient starts at initial and
// covers heights from fromIndex on.
func NewSequencer(initial core.RGB, fromIndex int, cfg config.ColorConfig, rng *rand.Rand) *Sequencer {
	s := &Sequencer{rng: rng, cfg: cfg}
	s.gradients = append(s.gradients, s.newGradient(initial, fromIndex))
	return s
}

// Gradients returns a copy of the chain.
func (s *Sequencer) Gradients() []Gradient {
	out := make([]Gradient, len(s.gradients))
	copy(out, s.gradients)
	return out
}

// Fallbacks returns how many target colors were drawn unconstrained.
func (s *Sequencer) Fallbacks() int { return s.fallbacks }

// Last returns the most recently appended gradient.
func (s *Sequencer) Last() Gradient {
	return s.gradients[len(s.gradients)-1]
}

// RandomColor draws a color uniformly within the configured channel range.
func (s *Sequencer) RandomColor() core.RGB {
	return randomColor(s.rng, s.cfg)
}

func randomColor(rng *rand.Rand, cfg config.ColorConfig) core.RGB {
	r := randInclusive(rng, cfg.MinValue, cfg.MaxValue)
	g := randInclusive(rng, cfg.MinValue, cfg.MaxValue)
	b := randInclusive(rng, cfg.MinValue, cfg.MaxValue)
	return core.NewRGB(r, g, b)
}

// GenerateTargetColor samples a target for a gradient starting at start. The
// candidate must lie further than the threshold from start, and start itself
// must lie further than the threshold from the start of the last gradient.
// When the second condition cannot hold or no candidate is found within the
// attempt budget, one unconstrained color is returned. Attempts counts the
// candidates rejected before the fallback.
func (s *Sequencer) GenerateTargetColor(start core.RGB) Sample {
	historyOK := true
	if len(s.gradients) > 0 {
		historyOK = core.Distance(s.Last().Start, start) > s.cfg.Threshold
	}

	attempts := 0
	for historyOK && attempts < s.cfg.MaxAttempts {
		attempts++
		c := s.RandomColor()
		if core.Distance(c, start) > s.cfg.Threshold {
			return Sample{Color: c, Attempts: attempts}
		}
	}

	s.fallbacks++
	return Sample{Color: s.RandomColor(), Fallback: true, Attempts: attempts}
}

func (s *Sequencer) newGradient(start core.RGB, from int) Gradient {
	target := s.GenerateTargetColor(start).Color
	steps := randInclusive(s.rng, s.cfg.MinSteps, s.cfg.MaxSteps)
	return Gradient{
		Start:  start,
		Target: target,
		Steps:  steps,
		From:   from,
		To:     from + steps,
	}
}

// Extend appends count gradients chained head to tail and returns them.
func (s *Sequencer) Extend(count int) []Gradient {
	added := make([]Gradient, 0, count)
	for i := 0; i < count; i++ {
		last := s.Last()
		g := s.newGradient(last.Target, last.To+1)
		s.gradients = append(s.gradients, g)
		added = append(added, g)
	}
	return added
}

// EnsureCovers extends the chain until it covers height h and returns the
// number of gradients appended.
func (s *Sequencer) EnsureCovers(h int) int {
	n := 0
	count := s.cfg.NewGradientCount
	if count < 1 {
		count = 1
	}
	for s.Last().To < h {
		n += len(s.Extend(count))
	}
	return n
}

// Current returns the gradient covering height h. The chain is not extended;
// callers query only heights they have covered.
func (s *Sequencer) Current(h int) (Gradient, bool) {
	for i := len(s.gradients) - 1; i >= 0; i-- {
		if s.gradients[i].Contains(h) {
			return s.gradients[i], true
		}
	}
	return Gradient{}, false
}

// ColorAt returns the color for stack height h. A height outside the chain
// yields the first gradient's start color and false.
func (s *Sequencer) ColorAt(h int) (core.RGB, bool) {
	g, ok := s.Current(h)
	if !ok {
		return s.gradients[0].Start, false
	}
	return g.Color(h), true
}

// NextColor returns the color distance heights above h.
func (s *Sequencer) NextColor(h, distance int) (ColorInfo, bool) {
	target := h + distance
	g, ok := s.Current(target)
	if !ok {
		return ColorInfo{}, false
	}
	return ColorInfo{Height: target, Color: g.Color(target), Gradient: g}, true
}

func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
