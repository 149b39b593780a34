package timber

import (
	"testing"

	"github.com/vovakirdan/tui-timber/internal/core"
)

func TestSafeBotDecide(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want core.Action
	}{
		{"menu dismisses", Snapshot{State: StateMenu}, core.ActionDismiss},
		{"game over waits", Snapshot{State: StateGameOver}, core.ActionNone},
		{"dodges left branch", Snapshot{State: StatePlaying, Trunk: [TrunkHeight]HazardKind{BranchLeft}}, core.ActionChopRight},
		{"dodges right branch", Snapshot{State: StatePlaying, Trunk: [TrunkHeight]HazardKind{BranchRight}}, core.ActionChopLeft},
		{"stays right on plain", Snapshot{State: StatePlaying, Direction: SideRight}, core.ActionChopRight},
		{"defaults left", Snapshot{State: StatePlaying}, core.ActionChopLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (SafeBot{}).Decide(tt.snap); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSafeBotNeverHitsBranch(t *testing.T) {
	s := NewSession(seeded(11))
	bot := SafeBot{}

	for i := 0; i < 500; i++ {
		s.Handle(bot.Decide(s.Snapshot()))
		s.AnimationComplete()
	}
	if s.State() != StatePlaying {
		t.Fatalf("state = %v, safe bot should still be playing", s.State())
	}
	if s.Score() != 500-1 {
		t.Errorf("Score() = %d, want 499 (first action only starts the run)", s.Score())
	}
}

func TestRandomBotSides(t *testing.T) {
	bot := NewRandomBot(&scriptedRand{vals: []int{0, 1}})
	playing := Snapshot{State: StatePlaying}

	if got := bot.Decide(playing); got != core.ActionChopLeft {
		t.Errorf("first = %v, want chop left", got)
	}
	if got := bot.Decide(playing); got != core.ActionChopRight {
		t.Errorf("second = %v, want chop right", got)
	}
	if got := bot.Decide(Snapshot{State: StateMenu}); got != core.ActionDismiss {
		t.Errorf("menu = %v, want dismiss", got)
	}
}
