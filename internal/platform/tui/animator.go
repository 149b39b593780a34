package tui

import (
	"github.com/vovakirdan/tui-timber/internal/games/timber"
)

// AnimationKind is the animation the view plays for the lumberjack.
type AnimationKind int

const (
	AnimIdle AnimationKind = iota
	AnimChop
	AnimDead
)

// String returns a human-readable name for the animation.
func (k AnimationKind) String() string {
	switch k {
	case AnimIdle:
		return "idle"
	case AnimChop:
		return "chop"
	case AnimDead:
		return "dead"
	default:
		return "unknown"
	}
}

// CompletionSink receives the end-of-chop signal. *timber.Session implements it.
type CompletionSink interface {
	AnimationComplete()
}

// Animator picks the lumberjack animation from the player's logical phase
// and times it. When a chop animation has played for its full duration the
// animator reports completion to the sink exactly once, which releases the
// player's chop lock.
type Animator struct {
	chopDuration  float64 // seconds
	deathDuration float64 // seconds
	kind          AnimationKind
	elapsed       float64
}

// NewAnimator creates an animator with the given durations in seconds.
// Negative durations are treated as zero.
func NewAnimator(chopDuration, deathDuration float64) *Animator {
	return &Animator{
		chopDuration:  max(chopDuration, 0),
		deathDuration: max(deathDuration, 0),
	}
}

// Update advances the current animation by dt seconds. A phase change starts
// the matching animation from its first frame. It returns true on the frame a
// chop animation completes.
func (a *Animator) Update(dt float64, snap timber.Snapshot, sink CompletionSink) bool {
	want := animationFor(snap)
	if want != a.kind {
		a.kind = want
		a.elapsed = 0
		return false
	}

	a.elapsed += max(dt, 0)
	if a.kind == AnimChop && a.elapsed >= a.chopDuration {
		sink.AnimationComplete()
		a.kind = AnimIdle
		a.elapsed = 0
		return true
	}
	return false
}

// Kind returns the animation currently playing.
func (a *Animator) Kind() AnimationKind {
	return a.kind
}

// Progress returns how far the current animation has played, in [0, 1].
// Idle loops forever and always reports 0.
func (a *Animator) Progress() float64 {
	var d float64
	switch a.kind {
	case AnimChop:
		d = a.chopDuration
	case AnimDead:
		d = a.deathDuration
	default:
		return 0
	}
	if d <= 0 {
		return 1
	}
	return min(a.elapsed/d, 1)
}

func animationFor(snap timber.Snapshot) AnimationKind {
	switch snap.Phase {
	case timber.PhaseDead:
		return AnimDead
	case timber.PhaseChopping:
		return AnimChop
	default:
		return AnimIdle
	}
}
