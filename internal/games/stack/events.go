package stack

import "github.com/vovakirdan/tui-stack/internal/core"

// Event is a notification fired synchronously from the game.
type Event interface {
	stackEvent()
}

// Listener receives events. Listeners must not call back into the game.
type Listener func(Event)

// NormalStackEvent is fired when an imperfect placement is accepted.
type NormalStackEvent struct {
	Height       int
	Width, Depth float64
}

// PerfectStackEvent is fired on every perfect placement.
type PerfectStackEvent struct {
	Height int
	Streak int
}

// ExpandedEvent is fired when a platform grows after a perfect streak.
type ExpandedEvent struct {
	Axis         core.Axis
	Sign         int
	Width, Depth float64
}

// GameOverEvent is fired when a placement is refused.
type GameOverEvent struct {
	Score int
}

// GradientsExtendedEvent is fired when the color chain grows.
type GradientsExtendedEvent struct {
	Count int
	To    int // Last height now covered
}

// BackgroundTransitionEvent is fired when a background cross-fade starts.
type BackgroundTransitionEvent struct {
	Target ColorPair
}

func (NormalStackEvent) stackEvent()          {}
func (PerfectStackEvent) stackEvent()         {}
func (ExpandedEvent) stackEvent()             {}
func (GameOverEvent) stackEvent()             {}
func (GradientsExtendedEvent) stackEvent()    {}
func (BackgroundTransitionEvent) stackEvent() {}
