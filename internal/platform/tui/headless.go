package tui

import (
	"github.com/vovakirdan/tui-timber/internal/core"
	"github.com/vovakirdan/tui-timber/internal/games/timber"
)

// HeadlessOptions configures a run without a terminal.
type HeadlessOptions struct {
	Runtime   core.RuntimeConfig // TickRate fixes dt; Seed must be set for a reproducible run
	Model     Options            // animation timings and logger
	MaxFrames int
	Bot       timber.Bot
}

// HeadlessResult summarizes a headless run.
type HeadlessResult struct {
	Frames   int
	Elapsed  float64 // simulated seconds
	Score    int
	MaxScore int
	GameOver bool
	Events   map[core.Event]int
	Final    timber.Snapshot
	Anim     AnimationKind
	Progress float64
}

// RunHeadless plays one run with a bot at a fixed frame delta, using the same
// frame order as the terminal model. It stops at game over or after
// MaxFrames frames.
func RunHeadless(session *timber.Session, opts HeadlessOptions) HeadlessResult {
	logger := opts.Model.Logger
	animator := NewAnimator(opts.Model.ChopDuration, opts.Model.DeathDuration)
	dt := opts.Runtime.CapDelta(opts.Runtime.FrameDelta())

	res := HeadlessResult{Events: make(map[core.Event]int)}
	in := core.NewInputFrame()

	for res.Frames < opts.MaxFrames {
		in.Clear()
		in.Set(opts.Bot.Decide(session.Snapshot()))

		step := session.Step(in, dt)
		animator.Update(dt, session.Snapshot(), session)
		res.Frames++
		res.Elapsed += dt

		for _, ev := range step.Events {
			res.Events[ev]++
			if logger != nil {
				logger.Debug("event", "frame", res.Frames, "event", ev, "score", step.State.Score)
			}
		}
		if step.State.GameOver {
			break
		}
	}

	// Let the death animation play out so a rendered final frame shows it.
	if session.State() == timber.StateGameOver {
		animator.Update(opts.Model.DeathDuration, session.Snapshot(), session)
	}

	res.Final = session.Snapshot()
	res.Score = res.Final.Score
	res.MaxScore = res.Final.MaxScore
	res.GameOver = res.Final.State == timber.StateGameOver
	res.Anim = animator.Kind()
	res.Progress = animator.Progress()
	return res
}

// DrawOptions returns the options to draw the final frame of the run.
func (r HeadlessResult) DrawOptions() DrawOptions {
	return DrawOptions{Anim: r.Anim, Progress: r.Progress}
}
