package timber

// Snapshot is the read-only view of a session used for drawing and the HUD.
// It is a value copy; changing it does not affect the session.
type Snapshot struct {
	State        State
	Score        int
	MaxScore     int
	Started      bool // timer running
	Direction    Side
	Phase        Phase
	Dead         bool
	Chopping     bool
	Trunk        [TrunkHeight]HazardKind // bottom (chop point) first
	Remaining    float64                 // seconds on the life timer
	LifeFraction float64                 // Remaining / MaxLifeTime
}

// Snapshot returns the current read-only state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Score:        s.score,
		MaxScore:     s.maxScore,
		Started:      s.started,
		Direction:    s.player.Direction(),
		Phase:        s.player.Phase(),
		Dead:         s.player.IsDead(),
		Chopping:     s.player.IsChopping(),
		Trunk:        s.trunk.Slots(),
		Remaining:    s.timer.Remaining(),
		LifeFraction: s.timer.Fraction(),
	}
}
