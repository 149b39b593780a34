package timber

import "github.com/vovakirdan/tui-timber/internal/core"

// Bot picks one action per frame from the current snapshot. Bots drive
// headless runs and smoke tests.
type Bot interface {
	Decide(snap Snapshot) core.Action
}

// SafeBot always chops on the side without a branch at the chop point, so it
// only ever dies to the timer.
type SafeBot struct{}

// Decide implements Bot.
func (SafeBot) Decide(snap Snapshot) core.Action {
	if snap.State == StateMenu {
		return core.ActionDismiss
	}
	if snap.State != StatePlaying {
		return core.ActionNone
	}

	switch snap.Trunk[0] {
	case BranchLeft:
		return core.ActionChopRight
	case BranchRight:
		return core.ActionChopLeft
	}
	if snap.Direction == SideRight {
		return core.ActionChopRight
	}
	return core.ActionChopLeft
}

// RandomBot mashes a random side every frame.
type RandomBot struct {
	rng RandSource
}

// NewRandomBot creates a bot drawing sides from rng.
func NewRandomBot(rng RandSource) *RandomBot {
	return &RandomBot{rng: rng}
}

// Decide implements Bot.
func (b *RandomBot) Decide(snap Snapshot) core.Action {
	if snap.State == StateMenu {
		return core.ActionDismiss
	}
	if snap.State != StatePlaying {
		return core.ActionNone
	}
	if b.rng.Intn(2) == 0 {
		return core.ActionChopLeft
	}
	return core.ActionChopRight
}
