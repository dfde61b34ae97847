package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestRestartDuringPlay(t *testing.T) {
	g := stack.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()

	tick := TickMsg(time.Time{})
	for i := 0; i < 5; i++ {
		m = update(t, m, tick)
	}
	if g.Tick() != 5 || g.State().GameOver {
		t.Fatalf("tick=%d game_over=%v, want a running game at tick 5", g.Tick(), g.State().GameOver)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, tick)
	if g.Tick() != 0 {
		t.Errorf("tick after restart = %d, want 0", g.Tick())
	}
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart input not cleared")
	}

	m = update(t, m, tick)
	if g.Tick() != 1 {
		t.Errorf("tick after restart and one step = %d, want 1", g.Tick())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := stack.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2}, nil)
	m.Init()

	// Dropping at the far end of the travel misses the tower.
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Time{}))
	if !m.gameState.GameOver {
		t.Fatal("expected game over after a missed drop")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, TickMsg(time.Time{}))
	if m.gameState.GameOver || g.State().GameOver {
		t.Error("game still over after restart")
	}
	if g.Current() == nil || !g.Current().Moving() {
		t.Error("no moving platform after restart")
	}
}
