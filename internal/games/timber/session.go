package timber

import (
	"github.com/vovakirdan/tui-timber/internal/core"
)

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is one player's game: the trunk, the lumberjack, the life timer,
// the score and the menu/playing/game-over state machine.
//
// A Session is owned by exactly one frame loop and is not safe for concurrent
// use. Per frame the driver calls Handle for each input action, then Update
// with the elapsed time (Step does both), and only then reads Snapshot.
type Session struct {
	state    State
	score    int
	maxScore int // best score since the session was created; survives Reset
	started  bool

	gen    *HazardGenerator
	trunk  *TrunkStack
	player *Player
	timer  *LifeTimer
}

// NewSession creates a session in the menu, drawing hazards from rng.
func NewSession(rng RandSource) *Session {
	gen := NewHazardGenerator(rng)
	return &Session{
		state:  StateMenu,
		gen:    gen,
		trunk:  NewTrunkStack(gen),
		player: NewPlayer(),
		timer:  NewLifeTimer(),
	}
}

// Handle applies one input action and returns the transition it caused.
// Actions that mean nothing in the current state are ignored.
func (s *Session) Handle(a core.Action) core.Event {
	switch s.state {
	case StateMenu:
		switch a {
		case core.ActionChopLeft, core.ActionChopRight, core.ActionDismiss:
			s.state = StatePlaying
			s.started = true
			return core.EventStarted
		}

	case StatePlaying:
		if !a.IsChop() {
			return core.EventNone
		}
		switch s.player.Chop(sideOf(a), s.trunk, s.timer) {
		case ChopSurvived:
			s.score++
			return core.EventChopped
		case ChopKilled:
			return core.EventKilled
		}

	case StateGameOver:
		if a == core.ActionReset {
			s.Reset()
			return core.EventReset
		}
	}

	return core.EventNone
}

// Update advances the session by dt seconds. While playing it decays the life
// timer and moves to game over as soon as the player is dead or the timer is
// empty, within the same call.
func (s *Session) Update(dt float64) []core.Event {
	if s.state != StatePlaying {
		return nil
	}

	if s.player.IsDead() || s.timer.IsExpired() {
		s.player.Kill()
		s.enterGameOver()
		return []core.Event{core.EventGameOver}
	}

	s.timer.Tick(dt, s.started)
	if s.timer.IsExpired() {
		s.player.Kill()
		s.enterGameOver()
		return []core.Event{core.EventKilled, core.EventGameOver}
	}
	return nil
}

// Step applies a frame's input in arrival order, then advances time.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	var events []core.Event
	for _, a := range in.Actions() {
		if ev := s.Handle(a); ev != core.EventNone {
			events = append(events, ev)
		}
	}
	events = append(events, s.Update(dt)...)

	return core.StepResult{
		State:  s.GameState(),
		Events: events,
	}
}

// AnimationComplete is called by the presentation layer when the chop
// animation it chose for the current chop has finished playing.
func (s *Session) AnimationComplete() {
	s.player.AnimationComplete()
}

// Reset starts over from the menu with a fresh trunk, player, timer and a
// zero score. The best score is kept.
func (s *Session) Reset() {
	s.trunk.Initialize()
	s.player.Reset()
	s.timer.Reset()
	s.score = 0
	s.started = false
	s.state = StateMenu
}

func (s *Session) enterGameOver() {
	s.state = StateGameOver
	s.started = false
	if s.score > s.maxScore {
		s.maxScore = s.score
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.score
}

// MaxScore returns the best score since the session was created.
func (s *Session) MaxScore() int {
	return s.maxScore
}

// GameState returns the platform-level summary of the session.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		MaxScore: s.maxScore,
		GameOver: s.state == StateGameOver,
	}
}

func sideOf(a core.Action) Side {
	switch a {
	case core.ActionChopLeft:
		return SideLeft
	case core.ActionChopRight:
		return SideRight
	default:
		return SideUnset
	}
}
