package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-timber/internal/core"
	"github.com/vovakirdan/tui-timber/internal/games/timber"
)

func newTestModel() Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(cfg, Options{ChopDuration: 0.1, DeathDuration: 0.5})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func TestModelAnyKeyStartsRun(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, runes("x"))
	if m.Session().State() != timber.StateMenu {
		t.Fatal("input must wait for the next tick")
	}

	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if m.Session().State() != timber.StatePlaying {
		t.Errorf("state = %v, want playing", m.Session().State())
	}
	if m.Session().Score() != 0 {
		t.Error("starting a run must not chop")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.quitting {
		t.Fatal("esc did not quit")
	}
	if m.View() != "" {
		t.Error("view after quit should be empty")
	}
}

func TestModelDebugToggleStaysInPresentation(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, runes("i"))
	if !m.debug {
		t.Fatal("debug not enabled")
	}
	if m.inputFrame.Len() != 0 {
		t.Error("debug toggle reached the session input")
	}

	m, _ = send(t, m, TickMsg(time.Now()))
	if m.Session().State() != timber.StateMenu {
		t.Error("debug toggle started the run")
	}
}

func TestModelClickButton(t *testing.T) {
	m := newTestModel()
	b := ButtonRect(m.screen.Width(), m.screen.Height())

	// Clicking outside the button does nothing.
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg(time.Now()))
	if m.Session().State() != timber.StateMenu {
		t.Fatal("click outside the button started the run")
	}

	cx, cy := b.Center()
	m, _ = send(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg(time.Now()))
	if m.Session().State() != timber.StatePlaying {
		t.Fatalf("state = %v after clicking play", m.Session().State())
	}
}

func TestModelDeltaIsCapped(t *testing.T) {
	m := newTestModel()
	start := time.Now()
	m, _ = send(t, m, runes("x"))
	m, _ = send(t, m, TickMsg(start))
	if m.lastDelta != m.config.FrameDelta() {
		t.Errorf("first delta = %f, want nominal %f", m.lastDelta, m.config.FrameDelta())
	}

	before := m.Session().Snapshot().Remaining
	m, _ = send(t, m, TickMsg(start.Add(time.Hour)))
	if m.lastDelta != m.config.MaxFrameDelta {
		t.Errorf("delta = %f, want cap %f", m.lastDelta, m.config.MaxFrameDelta)
	}
	after := m.Session().Snapshot().Remaining
	if d := before - after; d < 0.249 || d > 0.251 {
		t.Errorf("timer decayed by %f, want 0.25", d)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, runes("x"))
	m, _ = send(t, m, TickMsg(time.Now()))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Session().State() != timber.StatePlaying {
		t.Error("resize reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelReplayAfterGameOver(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, runes("x"))
	now := time.Now()
	m, _ = send(t, m, TickMsg(now))

	// Let the timer run out.
	for i := 1; i <= 40 && m.Session().State() == timber.StatePlaying; i++ {
		m, _ = send(t, m, TickMsg(now.Add(time.Duration(i)*250*time.Millisecond)))
	}
	if m.Session().State() != timber.StateGameOver {
		t.Fatalf("state = %v, want game over", m.Session().State())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = send(t, m, TickMsg(now.Add(time.Minute)))
	if m.Session().State() != timber.StateMenu {
		t.Errorf("state = %v after replay, want menu", m.Session().State())
	}
}
