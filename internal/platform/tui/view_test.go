package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-timber/internal/core"
	"github.com/vovakirdan/tui-timber/internal/games/timber"
)

func plainSnapshot(state timber.State) timber.Snapshot {
	return timber.Snapshot{
		State:        state,
		LifeFraction: 0.5,
		Remaining:    5,
	}
}

func TestDrawStates(t *testing.T) {
	tests := []struct {
		name  string
		state timber.State
		want  []string
	}{
		{"menu", timber.StateMenu, []string{"T I M B E R", "PLAY"}},
		{"playing", timber.StatePlaying, []string{"SCORE 0", "["}},
		{"game over", timber.StateGameOver, []string{"GAME OVER", "REPLAY", "SCORE 0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(80, 23)
			Draw(s, plainSnapshot(tt.state), DrawOptions{})
			out := s.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("screen does not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestDrawTooSmall(t *testing.T) {
	s := core.NewScreen(MinViewW-1, MinViewH)
	Draw(s, plainSnapshot(timber.StatePlaying), DrawOptions{})
	if !strings.Contains(s.String(), "too small") {
		t.Errorf("expected too-small notice:\n%s", s.String())
	}
}

func TestDrawBranchSides(t *testing.T) {
	const w, h = 80, 23
	l := layoutFor(w, h)

	tests := []struct {
		name string
		kind timber.HazardKind
		x    int
		want rune
	}{
		{"left branch", timber.BranchLeft, l.trunkX - 1, '═'},
		{"right branch", timber.BranchRight, l.trunkX + trunkWidth, '═'},
		{"plain has no left branch", timber.PlainA, l.trunkX - 1, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := plainSnapshot(timber.StatePlaying)
			snap.Trunk[3] = tt.kind
			s := core.NewScreen(w, h)
			Draw(s, snap, DrawOptions{})

			bottom := l.groundY - 1 - 3*l.segH
			mid := bottom - l.segH + 1 + l.segH/2
			if got := s.Get(tt.x, mid); got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", tt.x, mid, got, tt.want)
			}
		})
	}
}

func TestDrawJackSide(t *testing.T) {
	const w, h = 80, 23
	l := layoutFor(w, h)
	head := l.groundY - jackHeight

	for _, side := range []timber.Side{timber.SideLeft, timber.SideRight} {
		snap := plainSnapshot(timber.StatePlaying)
		snap.Direction = side
		s := core.NewScreen(w, h)
		Draw(s, snap, DrawOptions{})

		x := jackX(l, side)
		if got := s.Get(x+1, head); got != 'o' {
			t.Errorf("%v: head at (%d,%d) = %q", side, x+1, head, got)
		}
	}
}

func TestDrawDeadShowsTombstone(t *testing.T) {
	s := core.NewScreen(80, 23)
	snap := plainSnapshot(timber.StateGameOver)
	snap.Dead = true
	snap.Phase = timber.PhaseDead
	Draw(s, snap, DrawOptions{Anim: AnimDead, Progress: 1})
	if !strings.Contains(s.String(), "RIP") {
		t.Error("expected tombstone after the death animation")
	}
}

func TestLifeBarFill(t *testing.T) {
	s := core.NewScreen(80, 23)
	snap := plainSnapshot(timber.StatePlaying)
	snap.LifeFraction = 1
	Draw(s, snap, DrawOptions{})
	if got := strings.Count(s.Row(1), "█"); got != lifeBarW {
		t.Errorf("full life bar has %d cells, want %d", got, lifeBarW)
	}

	snap.LifeFraction = 0
	Draw(s, snap, DrawOptions{})
	if got := strings.Count(s.Row(1), "█"); got != 0 {
		t.Errorf("empty life bar has %d cells", got)
	}
}

func TestButtonInsidePanel(t *testing.T) {
	for _, size := range [][2]int{{MinViewW, MinViewH}, {80, 23}, {200, 60}} {
		b := ButtonRect(size[0], size[1])
		p := panelRect(size[0], size[1])
		if b.X <= p.X || b.Right() >= p.Right() || b.Y <= p.Y || b.Bottom() >= p.Bottom() {
			t.Errorf("%v: button %+v not inside panel %+v", size, b, p)
		}
	}
}

func TestDrawDebugOverlay(t *testing.T) {
	s := core.NewScreen(80, 23)
	Draw(s, plainSnapshot(timber.StatePlaying), DrawOptions{Debug: true, FPS: 60})
	if !strings.Contains(s.String(), "state=playing") {
		t.Errorf("debug overlay missing:\n%s", s.String())
	}
}
