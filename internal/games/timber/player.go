package timber

// Phase is the logical state of the lumberjack.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseChopping
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseChopping:
		return "chopping"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ChopOutcome is the result of a chop command.
type ChopOutcome int

const (
	ChopIgnored  ChopOutcome = iota // player busy chopping or already dead
	ChopSurvived                    // trunk advanced, timer rewarded
	ChopKilled                      // chopped into a branch
)

// Player holds the lumberjack's logical state. Which animation is on screen
// is the presentation layer's business; it reports back through
// AnimationComplete.
type Player struct {
	direction Side
	chopping  bool
	dead      bool
}

// NewPlayer creates an idle, living player with no side chosen yet.
func NewPlayer() *Player {
	return &Player{}
}

// Reset returns the player to the start-of-run state.
func (p *Player) Reset() {
	p.direction = SideUnset
	p.chopping = false
	p.dead = false
}

// Chop attempts a chop from side. It is ignored while a previous chop is still
// animating or after death, so a single input can never score twice.
// Collision is checked exactly once, before the trunk moves: a matching
// branch at the chop point kills the player and leaves trunk and timer alone;
// otherwise the trunk advances and the timer is rewarded.
func (p *Player) Chop(side Side, trunk *TrunkStack, timer *LifeTimer) ChopOutcome {
	if p.dead || p.chopping || side == SideUnset {
		return ChopIgnored
	}

	p.chopping = true
	p.direction = side

	if trunk.HazardAtChopPoint().LethalFor(side) {
		p.dead = true
		return ChopKilled
	}

	trunk.Advance()
	timer.Reward()
	return ChopSurvived
}

// AnimationComplete clears the chopping lock. Calls while not chopping are no-ops.
func (p *Player) AnimationComplete() {
	p.chopping = false
}

// Kill marks the player dead. Used when the life timer runs out.
func (p *Player) Kill() {
	p.dead = true
}

// Phase returns the logical state derived from the flags.
func (p *Player) Phase() Phase {
	switch {
	case p.dead:
		return PhaseDead
	case p.chopping:
		return PhaseChopping
	default:
		return PhaseIdle
	}
}

// Direction returns the side of the last accepted chop.
func (p *Player) Direction() Side {
	return p.direction
}

// IsDead reports whether the player has died this run.
func (p *Player) IsDead() bool {
	return p.dead
}

// IsChopping reports whether a chop animation is still pending completion.
func (p *Player) IsChopping() bool {
	return p.chopping
}
