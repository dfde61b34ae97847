// Package stack implements an isometric tower stacking game. A platform slides
// back and forth above the tower; dropping it trims away everything that hangs
// over the platform below, and the game ends when nothing is left to stand on.
package stack

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/registry"
)

// GameID is the registry identifier of the stacking game.
const GameID = "stack"

// Game drives the tower, the moving platform, the color chain and the
// background from fixed simulation ticks.
type Game struct {
	cfg       config.StackConfig
	logger    *log.Logger
	listeners []Listener

	rng  *rand.Rand
	tick uint64
	dt   float64

	tower      *Tower
	current    *Platform
	sequencer  *Sequencer
	background *Transition

	velocity float64
	streak   int
	distance int // Gradient steps between the two background colors

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	assist   bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game constants.
func WithConfig(cfg config.StackConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithListener subscribes fn to game events.
func WithListener(fn Listener) Option {
	return func(g *Game) { g.Subscribe(fn) }
}

// New creates a stacking game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultStackConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Stack" }

// Config returns the constants the game runs with.
func (g *Game) Config() config.StackConfig { return g.cfg }

// Subscribe adds a listener. Listeners survive Reset.
func (g *Game) Subscribe(fn Listener) {
	if fn != nil {
		g.listeners = append(g.listeners, fn)
	}
}

func (g *Game) emit(e Event) {
	for _, fn := range g.listeners {
		fn(e)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.dt = rc.TickDelta()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.gameOver = false
	g.paused = false
	g.streak = 0
	g.velocity = g.cfg.Motion.StartVelocity

	n := g.cfg.Tower.StartingPlatforms
	initial := randomColor(g.rng, g.cfg.Colors)
	g.sequencer = NewSequencer(initial, n, g.cfg.Colors, g.rng)
	g.tower = NewTower(g.cfg, initial)

	g.distance = g.drawDistance()
	g.background = NewTransition(g.backgroundPair(n), g.cfg.Background.TransitionDuration)
	g.distance = g.drawDistance()

	g.current = g.spawn(g.cfg.Tower.BaseWidth, g.cfg.Tower.BaseDepth)

	g.logger.Debug("game reset",
		"seed", rc.Seed,
		"initial", initial,
		"platforms", n,
		"velocity", g.velocity,
	)
}

func (g *Game) drawDistance() int {
	return randInclusive(g.rng, g.cfg.Background.MinDistance, g.cfg.Background.MaxDistance)
}

// ensureColors extends the color chain to cover height h.
func (g *Game) ensureColors(h int) {
	before := g.sequencer.Fallbacks()
	added := g.sequencer.EnsureCovers(h)
	if added == 0 {
		return
	}
	last := g.sequencer.Last()
	g.logger.Debug("gradients extended",
		"count", added,
		"to", last.To,
		"fallbacks", g.sequencer.Fallbacks()-before,
	)
	g.emit(GradientsExtendedEvent{Count: added, To: last.To})
}

// backgroundPair returns the colors at height h and distance steps above it.
func (g *Game) backgroundPair(h int) ColorPair {
	g.ensureColors(h + g.distance)
	start, _ := g.sequencer.ColorAt(h)
	next, _ := g.sequencer.NextColor(h, g.distance)
	return ColorPair{Start: start, End: next.Color}
}

// spawn creates the next moving platform above the tower.
func (g *Game) spawn(width, depth float64) *Platform {
	h := g.tower.Len()
	g.ensureColors(h)
	color, _ := g.sequencer.ColorAt(h)
	p := NewPlatform(PlatformSpec{
		Width:        width,
		Depth:        depth,
		Height:       g.cfg.Tower.PlatformHeight,
		Moving:       true,
		Velocity:     g.velocity,
		Bound:        g.cfg.Motion.OscillationBound,
		StackHeight:  h,
		InitialCount: g.cfg.Tower.StartingPlatforms,
		Color:        color,
	})
	p.AlignTo(g.tower.Top())
	return p
}

// Placement is the outcome of dropping the moving platform.
type Placement struct {
	Accepted     bool
	Perfect      bool
	Width, Depth float64 // Dimensions of the next platform
	Streak       int
	Expanded     bool
}

// AttemptPlacement drops the moving platform onto the tower. An accepted
// platform joins the tower and the next one spawns; a refused one ends the
// game. Nothing happens after game over.
func (g *Game) AttemptPlacement() Placement {
	if g.gameOver || g.current == nil {
		return Placement{}
	}

	last := g.tower.Top()
	trim := g.tower.Trimming(g.current)
	places := g.cfg.Tower.DecimalPlaces
	width := core.Round(trim.Width, places)
	depth := core.Round(trim.Depth, places)
	perfect := trim.Perfect
	if g.assist {
		perfect = true
		width, depth = last.Width(), last.Depth()
	}

	g.velocity += g.cfg.Motion.VelocityIncrement

	minSide := g.cfg.Tower.MinValidSide
	if width <= minSide || depth <= minSide {
		g.current.Stop()
		g.gameOver = true
		score := g.Score()
		g.logger.Info("game over", "score", score, "width", width, "depth", depth)
		g.emit(GameOverEvent{Score: score})
		return Placement{Width: width, Depth: depth}
	}

	placed := g.current
	result := Placement{Accepted: true, Perfect: perfect}
	height := g.tower.Len() + 1

	if perfect {
		placed.PerfectAlign(last)
		g.streak++
		g.emit(PerfectStackEvent{Height: height, Streak: g.streak})

		if g.streak >= g.cfg.Expansion.PerfectStreak {
			w, d, sign := placed.Expand(ExpansionRulesFrom(g.cfg))
			width, depth = w, d
			if sign != 0 {
				result.Expanded = true
				g.logger.Debug("platform expanded", "axis", placed.Axis(), "sign", sign, "width", w, "depth", d)
				g.emit(ExpandedEvent{Axis: placed.Axis(), Sign: sign, Width: w, Depth: d})
			}
		}
	} else {
		g.streak = 0
		placed.TrimTo(last, width, depth)
		g.emit(NormalStackEvent{Height: height, Width: width, Depth: depth})
	}

	g.tower.Add(placed)
	g.current = g.spawn(width, depth)

	g.logger.Debug("platform placed",
		"height", g.tower.Len(),
		"perfect", perfect,
		"streak", g.streak,
		"width", width,
		"depth", depth,
		"velocity", g.velocity,
	)

	if g.rng.Float64() < g.cfg.Background.TransitionChance && !g.background.Running() {
		pair := g.backgroundPair(g.tower.Len())
		if g.background.Start(pair) {
			g.logger.Debug("background transition", "start", pair.Start, "end", pair.End, "distance", g.distance)
			g.emit(BackgroundTransitionEvent{Target: pair})
		}
		g.distance = g.drawDistance()
	}

	result.Width, result.Depth = width, depth
	result.Streak = g.streak
	return result
}

// Update advances the simulation by dt seconds: platform motion first, then
// the tower drop, then the background.
func (g *Game) Update(dt float64) {
	if !g.gameOver && g.current != nil {
		g.current.Advance(dt)
	}
	g.tower.Update(dt)
	g.background.Advance(dt)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAssist) {
		g.SetAssist(!g.assist)
	}

	g.tick++
	if in.Has(core.ActionDrop) {
		g.AttemptPlacement()
	}
	g.Update(g.dt)

	return core.StepResult{State: g.State()}
}

// SetAssist turns assisted placement on or off. While on, every placement
// is perfect.
func (g *Game) SetAssist(on bool) {
	if g.assist != on {
		g.logger.Debug("assist toggled", "on", on)
	}
	g.assist = on
}

// Assist reports whether assisted placement is on.
func (g *Game) Assist() bool { return g.assist }

// Score returns the number of platforms placed by the player.
func (g *Game) Score() int {
	if g.tower == nil {
		return 0
	}
	return g.tower.Len() - g.cfg.Tower.StartingPlatforms
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Tick returns the number of simulated ticks since Reset.
func (g *Game) Tick() uint64 { return g.tick }

// TickDelta returns the seconds simulated per tick.
func (g *Game) TickDelta() float64 { return g.dt }

// Streak returns the current perfect placement streak.
func (g *Game) Streak() int { return g.streak }

// Velocity returns the speed the next platform spawns with.
func (g *Game) Velocity() float64 { return g.velocity }

// Tower returns the tower.
func (g *Game) Tower() *Tower { return g.tower }

// Current returns the moving platform.
func (g *Game) Current() *Platform { return g.current }

// Sequencer returns the color chain.
func (g *Game) Sequencer() *Sequencer { return g.sequencer }

// Background returns the background transition.
func (g *Game) Background() *Transition { return g.background }
