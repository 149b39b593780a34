package timber

import "github.com/vovakirdan/tui-timber/internal/core"

// Life timer tuning. Runs start below the cap on purpose.
const (
	MaxLifeTime   = 10.0 // seconds; upper clamp of the timer
	StartLifeTime = 5.0  // seconds on the clock at the start of a run
	ChopReward    = 0.2  // seconds added by every surviving chop
)

// LifeTimer is the countdown that ends the run when it reaches zero.
// Remaining time is kept in [0, MaxLifeTime] after every mutation.
type LifeTimer struct {
	remaining float64
}

// NewLifeTimer creates a timer holding StartLifeTime.
func NewLifeTimer() *LifeTimer {
	return &LifeTimer{remaining: StartLifeTime}
}

// Reset puts StartLifeTime back on the clock.
func (t *LifeTimer) Reset() {
	t.remaining = StartLifeTime
}

// Tick decays the timer by dt seconds when active. Negative deltas are ignored.
func (t *LifeTimer) Tick(dt float64, active bool) {
	if active && dt > 0 {
		t.remaining -= dt
	}
	t.clamp()
}

// Reward adds ChopReward, capped at MaxLifeTime.
func (t *LifeTimer) Reward() {
	t.remaining += ChopReward
	t.clamp()
}

// IsExpired reports whether the timer has run out.
func (t *LifeTimer) IsExpired() bool {
	return t.remaining <= 0
}

// Remaining returns the seconds left.
func (t *LifeTimer) Remaining() float64 {
	return t.remaining
}

// Fraction returns remaining/MaxLifeTime in [0, 1], for sizing the life bar.
func (t *LifeTimer) Fraction() float64 {
	return core.ClampF(t.remaining/MaxLifeTime, 0, 1)
}

func (t *LifeTimer) clamp() {
	t.remaining = core.ClampF(t.remaining, 0, MaxLifeTime)
}
