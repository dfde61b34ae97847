package stack

import "github.com/vovakirdan/tui-stack/internal/core"

// isoLean squeezes the horizontal isometric axis.
const isoLean = 0.65

// Isometric projects a world point onto the view plane. The result is in world
// units with y growing downwards.
func Isometric(v core.Vec3) (x, y float64) {
	return (v.X - v.Y) * isoLean, (v.X+v.Y)/2 - v.Z
}

// Quad is one visible face of a platform.
type Quad struct {
	Corners [4]core.Vec3
	Color   core.RGB
}

// Project returns the face corners projected onto the view plane.
func (q Quad) Project() [4][2]float64 {
	var out [4][2]float64
	for i, c := range q.Corners {
		out[i][0], out[i][1] = Isometric(c)
	}
	return out
}

// PlatformSnapshot is a read-only copy of one platform.
type PlatformSnapshot struct {
	Box       core.Box
	Colors    [3]core.RGB // Top, left and right face
	Axis      core.Axis
	Moving    bool
	Expanding bool
}

func snapshotOf(p *Platform) PlatformSnapshot {
	return PlatformSnapshot{
		Box:       p.Box(),
		Colors:    p.Colors(),
		Axis:      p.Axis(),
		Moving:    p.Moving(),
		Expanding: p.Expanding(),
	}
}

// Faces returns the three faces visible from the camera: the top, the face
// at max Y and the face at max X, in drawing order.
func (s PlatformSnapshot) Faces() [3]Quad {
	c := s.Box.Corners()
	return [3]Quad{
		{Corners: [4]core.Vec3{c[1], c[3], c[7], c[5]}, Color: s.Colors[0]},
		{Corners: [4]core.Vec3{c[2], c[3], c[7], c[6]}, Color: s.Colors[1]},
		{Corners: [4]core.Vec3{c[4], c[5], c[7], c[6]}, Color: s.Colors[2]},
	}
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick     uint64
	Score    int
	Streak   int
	Height   int
	Velocity float64
	GameOver bool
	Paused   bool
	Assist   bool

	Platforms []PlatformSnapshot // Tower, bottom first
	Current   *PlatformSnapshot  // Nil after game over

	Background         ColorPair
	TransitionProgress float64
	TransitionRunning  bool
	Gradients          int
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Score:    g.Score(),
		Streak:   g.streak,
		Velocity: g.velocity,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Assist:   g.assist,
	}
	if g.tower == nil {
		return s
	}

	s.Height = g.tower.Len()
	s.Platforms = make([]PlatformSnapshot, 0, g.tower.Len())
	for _, p := range g.tower.platforms {
		s.Platforms = append(s.Platforms, snapshotOf(p))
	}
	if !g.gameOver && g.current != nil {
		cur := snapshotOf(g.current)
		s.Current = &cur
	}

	s.Background = g.background.Current()
	s.TransitionProgress = g.background.Progress()
	s.TransitionRunning = g.background.Running()
	s.Gradients = len(g.sequencer.gradients)
	return s
}

// Faces returns every visible face in drawing order, back to front.
func (s Snapshot) Faces() []Quad {
	faces := make([]Quad, 0, 3*(len(s.Platforms)+1))
	for _, p := range s.Platforms {
		f := p.Faces()
		faces = append(faces, f[:]...)
	}
	if s.Current != nil {
		f := s.Current.Faces()
		faces = append(faces, f[:]...)
	}
	return faces
}
