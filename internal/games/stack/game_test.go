package stack

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, cfg config.StackConfig, seed int64) (*Game, *[]Event) {
	t.Helper()
	var events []Event
	g := New(WithConfig(cfg), WithListener(func(e Event) { events = append(events, e) }))
	g.Reset(testRuntime(seed))
	return g, &events
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != GameID || g.Title() != "Stack" {
		t.Errorf("ID=%q Title=%q", g.ID(), g.Title())
	}
}

func TestResetBuildsStartingState(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultStackConfig(), 1)

	if g.Tower().Len() != 3 || g.Score() != 0 {
		t.Errorf("Len=%d Score=%d, want 3 and 0", g.Tower().Len(), g.Score())
	}
	cur := g.Current()
	if cur == nil || !cur.Moving() {
		t.Fatal("no moving platform after Reset")
	}
	if cur.Width() != 12.5 || cur.Depth() != 12.5 {
		t.Errorf("spawn dims = %vx%v, want 12.5x12.5", cur.Width(), cur.Depth())
	}
	if cur.Axis() != core.AxisY {
		t.Errorf("first platform axis = %v, want y", cur.Axis())
	}
	if cur.Box().MinY != -25 || cur.Box().MinZ != 0 {
		t.Errorf("spawn box = %+v", cur.Box())
	}
	if c, _ := g.Sequencer().ColorAt(3); cur.Color() != c {
		t.Errorf("spawn color = %v, want %v", cur.Color(), c)
	}
	if g.Velocity() != 26.5 {
		t.Errorf("Velocity() = %v, want 26.5", g.Velocity())
	}
}

func TestPerfectPlacementScenario(t *testing.T) {
	cfg := config.DefaultStackConfig()
	cfg.Motion.StartVelocity = 25
	g, events := newTestGame(t, cfg, 7)

	p := movingOnX(25, 25)
	p.AlignTo(g.Tower().Top())
	p.Advance(1)
	if p.Box().MinX != 0 || p.Box().MinY != 0 {
		t.Fatalf("contrived platform at %+v, want full overlap", p.Box())
	}
	g.current = p

	res := g.AttemptPlacement()
	if !res.Accepted || !res.Perfect {
		t.Fatalf("AttemptPlacement() = %+v, want accepted perfect", res)
	}
	if res.Width != 12.5 || res.Depth != 12.5 {
		t.Errorf("next dims = %vx%v, want 12.5x12.5", res.Width, res.Depth)
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}

	next := g.Current()
	if next == p || !next.Moving() {
		t.Fatal("no new moving platform spawned")
	}
	if next.Width() != 12.5 || next.Depth() != 12.5 {
		t.Errorf("spawned %vx%v, want 12.5x12.5", next.Width(), next.Depth())
	}
	if m, _ := next.Motion(); m.Velocity != 25+cfg.Motion.VelocityIncrement {
		t.Errorf("spawn velocity = %v, want %v", m.Velocity, 25+cfg.Motion.VelocityIncrement)
	}

	var perfect []PerfectStackEvent
	for _, e := range *events {
		if pe, ok := e.(PerfectStackEvent); ok {
			perfect = append(perfect, pe)
		}
	}
	if len(perfect) != 1 || perfect[0].Streak != 1 {
		t.Errorf("perfect events = %+v, want one with streak 1", perfect)
	}
}

func TestImperfectPlacementTrims(t *testing.T) {
	g, events := newTestGame(t, config.DefaultStackConfig(), 3)

	p := movingOnX(25, 25)
	p.AlignTo(g.Tower().Top())
	p.Advance(1.16) // offset 4 on x
	g.current = p

	res := g.AttemptPlacement()
	if !res.Accepted || res.Perfect {
		t.Fatalf("AttemptPlacement() = %+v, want accepted imperfect", res)
	}
	if res.Width != 8.5 || res.Depth != 12.5 {
		t.Errorf("next dims = %vx%v, want 8.5x12.5", res.Width, res.Depth)
	}
	if top := g.Tower().Top(); top.Box().MaxX != 12.5 || top.Width() != 8.5 {
		t.Errorf("placed platform box %+v width %v, want clipped to 12.5", top.Box(), top.Width())
	}
	if g.Streak() != 0 {
		t.Errorf("Streak() = %d, want 0", g.Streak())
	}

	found := false
	for _, e := range *events {
		if ne, ok := e.(NormalStackEvent); ok && ne.Width == 8.5 {
			found = true
		}
	}
	if !found {
		t.Error("no NormalStackEvent fired")
	}
}

func TestRefusedPlacementEndsGame(t *testing.T) {
	g, events := newTestGame(t, config.DefaultStackConfig(), 4)

	// The platform spawns a full bound away, fully off the tower.
	res := g.AttemptPlacement()
	if res.Accepted {
		t.Fatalf("AttemptPlacement() = %+v, want refused", res)
	}
	st := g.State()
	if !st.GameOver || st.Score != 0 {
		t.Errorf("State() = %+v, want game over with score 0", st)
	}
	if g.Tower().Len() != 3 {
		t.Errorf("tower grew to %d on a refused placement", g.Tower().Len())
	}

	last := (*events)[len(*events)-1]
	if over, ok := last.(GameOverEvent); !ok || over.Score != 0 {
		t.Errorf("last event = %#v, want GameOverEvent{Score: 0}", last)
	}

	if again := g.AttemptPlacement(); again != (Placement{}) {
		t.Errorf("placement after game over = %+v, want zero value", again)
	}
	if g.Snapshot().Current != nil {
		t.Error("snapshot still has a moving platform after game over")
	}
}

func TestAssistAndExpansion(t *testing.T) {
	cfg := config.DefaultStackConfig()
	cfg.Tower.MaxSide = 20
	cfg.Expansion.PerfectStreak = 2
	g, events := newTestGame(t, cfg, 5)
	g.SetAssist(true)

	first := g.AttemptPlacement()
	if !first.Perfect || first.Expanded || first.Width != 12.5 {
		t.Fatalf("first placement = %+v", first)
	}

	second := g.AttemptPlacement()
	if !second.Perfect || !second.Expanded {
		t.Fatalf("second placement = %+v, want perfect with expansion", second)
	}
	if second.Streak != 2 {
		t.Errorf("Streak = %d, want 2", second.Streak)
	}
	// The second platform travelled on x and grows its visible face.
	if second.Width != 15 || second.Depth != 12.5 {
		t.Errorf("expanded dims = %vx%v, want 15x12.5", second.Width, second.Depth)
	}
	if next := g.Current(); next.Width() != 15 {
		t.Errorf("next platform width = %v, want 15", next.Width())
	}

	var expanded []ExpandedEvent
	for _, e := range *events {
		if ee, ok := e.(ExpandedEvent); ok {
			expanded = append(expanded, ee)
		}
	}
	if len(expanded) != 1 || expanded[0].Sign != 1 || expanded[0].Axis != core.AxisX {
		t.Errorf("expanded events = %+v", expanded)
	}
}

// dropAt moves the current platform to offset along its axis and drops it.
func dropAt(g *Game, offset float64) Placement {
	g.current.motion.Offset = offset
	g.current.placeOnAxis()
	return g.AttemptPlacement()
}

func TestMinFaceExpansionCarriesToNextPlatform(t *testing.T) {
	cfg := config.DefaultStackConfig()
	cfg.Expansion.PerfectStreak = 1
	g, events := newTestGame(t, cfg, 13)

	// Off by 3 on y leaves y in [3, 12.5].
	first := dropAt(g, 3)
	if first.Perfect || first.Depth != 9.5 {
		t.Fatalf("first placement = %+v, want imperfect with depth 9.5", first)
	}
	// Perfect on x; the side is already at the maximum.
	if second := dropAt(g, 0); !second.Perfect || second.Expanded {
		t.Fatalf("second placement = %+v, want perfect without expansion", second)
	}
	// Perfect on y; the near face sits on the edge, so the far face grows.
	third := dropAt(g, 0)
	if !third.Perfect || !third.Expanded || third.Depth != 12.5 {
		t.Fatalf("third placement = %+v, want perfect expansion to depth 12.5", third)
	}
	ee, ok := (*events)[len(*events)-1].(ExpandedEvent)
	for i := len(*events) - 1; !ok && i >= 0; i-- {
		ee, ok = (*events)[i].(ExpandedEvent)
	}
	if !ok || ee.Sign != -1 || ee.Axis != core.AxisY {
		t.Fatalf("expanded event = %+v, want sign -1 on y", ee)
	}

	top, next := g.Tower().Top(), g.Current()
	fp := top.Footprint()
	if fp.MinY != 0 || fp.MaxY != 12.5 {
		t.Fatalf("top footprint y = [%v, %v], want [0, 12.5]", fp.MinY, fp.MaxY)
	}
	if top.Box().MinY != 3 {
		t.Errorf("top box MinY = %v, want 3 before the animation runs", top.Box().MinY)
	}
	nb := next.Box()
	if nb.MinY != fp.MinY || nb.MaxY != fp.MaxY || next.Depth() != 12.5 {
		t.Errorf("next platform y = [%v, %v] depth %v, want the top footprint [0, 12.5]", nb.MinY, nb.MaxY, next.Depth())
	}

	// Dropping inside the expansion window still sees the grown side.
	fourth := dropAt(g, 1)
	if fourth.Perfect || fourth.Width != 11.5 || fourth.Depth != 12.5 {
		t.Errorf("fourth placement = %+v, want imperfect 11.5x12.5", fourth)
	}

	g.Update(1)
	if b := top.Box(); top.Expanding() || b.MinY != 0 || b.MaxY != 12.5 {
		t.Errorf("top box after the animation = %+v, want y in [0, 12.5]", b)
	}
}

func TestVelocityGrowsOnEveryAttempt(t *testing.T) {
	cfg := config.DefaultStackConfig()
	g, _ := newTestGame(t, cfg, 6)
	g.AttemptPlacement() // refused, still counts

	want := cfg.Motion.StartVelocity + cfg.Motion.VelocityIncrement
	if g.Velocity() != want {
		t.Errorf("Velocity() = %v, want %v", g.Velocity(), want)
	}
}

func TestStepPause(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultStackConfig(), 8)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	none := core.NewInputFrame()

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("Step(pause) did not pause")
	}
	box := g.Current().Box()
	for i := 0; i < 10; i++ {
		g.Step(none)
	}
	if g.Current().Box() != box || g.Tick() != 0 {
		t.Errorf("simulation advanced while paused: tick=%d", g.Tick())
	}

	g.Step(pause)
	if g.State().Paused {
		t.Fatal("second Step(pause) did not resume")
	}
	if g.Current().Box() == box {
		t.Error("platform did not move after resuming")
	}
}

func TestStepAssistToggle(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultStackConfig(), 9)
	in := core.NewInputFrame()
	in.Set(core.ActionAssist)

	g.Step(in)
	if !g.Assist() {
		t.Fatal("assist not enabled")
	}
	g.Step(in)
	if g.Assist() {
		t.Fatal("assist not disabled")
	}
}

func TestAutopilotStacksPerfectly(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultStackConfig(), 10)
	pilot := NewAutopilot(10, 0)

	for i := 0; i < 900; i++ {
		g.Step(pilot.Decide(g))
	}

	if g.State().GameOver {
		t.Fatalf("autopilot lost at score %d", g.Score())
	}
	if g.Score() < 5 {
		t.Errorf("Score() = %d after 900 ticks, want at least 5", g.Score())
	}
	if g.Streak() != g.Score() {
		t.Errorf("Streak() = %d, want every placement perfect (%d)", g.Streak(), g.Score())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultStackConfig()
		g := New(WithConfig(cfg))
		g.Reset(testRuntime(42))
		pilot := NewAutopilot(99, 2)
		for i := 0; i < 1500; i++ {
			g.Step(pilot.Decide(g))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different games:\n%+v\n%+v", a, b)
	}
}

func TestSnapshotFaces(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultStackConfig(), 11)
	snap := g.Snapshot()

	if len(snap.Platforms) != 3 || snap.Current == nil {
		t.Fatalf("snapshot has %d platforms, current=%v", len(snap.Platforms), snap.Current)
	}
	if got := len(snap.Faces()); got != 12 {
		t.Errorf("len(Faces()) = %d, want 12", got)
	}

	top := snap.Platforms[2].Faces()[0]
	for _, c := range top.Corners {
		if c.Z != 0 {
			t.Errorf("top face corner %+v not at z=0", c)
		}
	}
	if top.Color != snap.Platforms[2].Colors[0] {
		t.Errorf("top face color = %v, want %v", top.Color, snap.Platforms[2].Colors[0])
	}
}

func TestIsometric(t *testing.T) {
	tests := []struct {
		in   core.Vec3
		x, y float64
	}{
		{core.Vec3{}, 0, 0},
		{core.Vec3{X: 1}, 0.65, 0.5},
		{core.Vec3{Y: 1}, -0.65, 0.5},
		{core.Vec3{Z: 1}, 0, -1},
		{core.Vec3{X: 2, Y: 2, Z: 1}, 0, 1},
	}

	for _, tt := range tests {
		x, y := Isometric(tt.in)
		if x != tt.x || y != tt.y {
			t.Errorf("Isometric(%+v) = (%v, %v), want (%v, %v)", tt.in, x, y, tt.x, tt.y)
		}
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultStackConfig(), 12)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(1), "0") {
		t.Errorf("score row = %q", screen.Row(1))
	}
	for y := 0; y < 24; y++ {
		if !screen.GetCell(0, y).HasBG {
			t.Fatalf("row %d has no background", y)
		}
	}
	bg := g.cfg.Background
	rows := Ramp(g.Background().Current(), 24, RampStyle{Lightening: bg.Lightening, Desaturation: bg.Desaturation, GroupSize: 1})
	for y := 3; y < 24; y++ {
		if got := screen.GetCell(0, y).BG; got != rows[y] {
			t.Fatalf("row %d background = %v, want its own band %v", y, got, rows[y])
		}
	}

	// The tower top sits at the screen center.
	center := screen.GetCell(40, 13)
	want := g.Tower().Top().Colors()
	matched := false
	for _, c := range want {
		if center.BG == c {
			matched = true
		}
	}
	if !matched {
		t.Errorf("center cell background %v is not a tower face color %v", center.BG, want)
	}

	g.AttemptPlacement()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay not drawn")
	}
}
