package stack

import (
	"testing"

	"github.com/vovakirdan/tui-stack/internal/core"
)

func TestTransition(t *testing.T) {
	from := ColorPair{Start: core.NewRGB(0, 0, 0), End: core.NewRGB(100, 100, 100)}
	to := ColorPair{Start: core.NewRGB(200, 100, 0), End: core.NewRGB(0, 0, 200)}
	tr := NewTransition(from, 2)

	if tr.Running() || tr.Current() != from {
		t.Fatalf("new transition running=%v current=%v", tr.Running(), tr.Current())
	}
	if !tr.Start(to) {
		t.Fatal("Start refused on an idle transition")
	}
	if tr.Start(from) {
		t.Error("Start accepted while running")
	}
	if tr.Target() != to {
		t.Errorf("Target() = %v, want %v after a refused restart", tr.Target(), to)
	}

	tr.Advance(1)
	want := ColorPair{Start: core.Lerp(from.Start, to.Start, 0.5), End: core.Lerp(from.End, to.End, 0.5)}
	if tr.Current() != want {
		t.Errorf("Current() at half way = %v, want %v", tr.Current(), want)
	}

	tr.Advance(0)
	if tr.Current() != want {
		t.Errorf("Advance(0) changed colors to %v", tr.Current())
	}

	tr.Advance(1.5)
	if tr.Running() {
		t.Error("transition still running after its duration")
	}
	if tr.Current() != to || tr.Progress() != 1 {
		t.Errorf("Current() = %v progress %v, want exactly %v and 1", tr.Current(), tr.Progress(), to)
	}
	if !tr.Start(from) {
		t.Error("Start refused after completion")
	}
}

func TestRamp(t *testing.T) {
	pair := ColorPair{Start: core.NewRGB(50, 100, 150), End: core.NewRGB(150, 50, 0)}
	style := RampStyle{Lightening: 1.4, Desaturation: 0.4, GroupSize: 5}

	bands := Ramp(pair, 12, style)
	if len(bands) != 3 {
		t.Fatalf("len = %d, want 3 bands for 12 rows", len(bands))
	}
	for i, row := range []int{0, 5, 10} {
		c := core.GradientColorFrom(pair.Start, pair.End, 12, 12-row-1)
		want := core.Desaturate(core.Lighten(c, 1.4), 0.4)
		if bands[i] != want {
			t.Errorf("band %d = %v, want %v", i, bands[i], want)
		}
	}

	if got := Ramp(pair, 0, style); got != nil {
		t.Errorf("Ramp with no rows = %v, want nil", got)
	}
	if got := Ramp(pair, 4, RampStyle{Lightening: 1, GroupSize: 0}); len(got) != 4 {
		t.Errorf("group size 0 yields %d bands, want one per row", len(got))
	}
}
