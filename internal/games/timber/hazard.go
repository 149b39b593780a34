// Package timber implements the lumberjack reflex game simulation.
//
// The player stands beside a six-segment trunk and chops it from the left or
// the right. Segments may carry a branch on one side; chopping from that side
// kills the lumberjack. Every surviving chop drops the trunk by one segment,
// scores a point and refills the shrinking life timer a little.
//
// The package is pure: no terminal, no clock, no I/O. Time arrives as a
// per-frame delta and randomness through an injected RandSource, so every
// run is reproducible from its seed.
package timber

// Side is the side of the trunk the lumberjack stands on.
type Side int8

const (
	SideUnset Side = iota // before the first chop of a run
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unset"
	}
}

// HazardKind is what a trunk segment carries.
type HazardKind uint8

const (
	PlainA      HazardKind = iota // plain bark
	PlainB                        // plain bark, alternate look
	BranchLeft                    // lethal when chopped from the left
	BranchRight                   // lethal when chopped from the right
)

// String returns a human-readable name for the hazard kind.
func (k HazardKind) String() string {
	switch k {
	case PlainA:
		return "plain_a"
	case PlainB:
		return "plain_b"
	case BranchLeft:
		return "branch_left"
	case BranchRight:
		return "branch_right"
	default:
		return "unknown"
	}
}

// IsHazard reports whether the segment carries a branch.
func (k HazardKind) IsHazard() bool {
	return k == BranchLeft || k == BranchRight
}

// LethalFor reports whether chopping this segment from side kills the player.
func (k HazardKind) LethalFor(side Side) bool {
	return (k == BranchLeft && side == SideLeft) || (k == BranchRight && side == SideRight)
}

// RandSource is the random source hazard generation draws from.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform value in [0, n). It panics when n <= 0.
	Intn(n int) int
}

var (
	plainKinds = [...]HazardKind{PlainA, PlainB}
	allKinds   = [...]HazardKind{PlainA, PlainB, BranchLeft, BranchRight}
)

// HazardGenerator draws new trunk segments.
// It guarantees that two consecutively generated segments are never both
// branches, as long as callers report the previous outcome honestly.
type HazardGenerator struct {
	rng RandSource
}

// NewHazardGenerator creates a generator drawing from rng.
func NewHazardGenerator(rng RandSource) *HazardGenerator {
	return &HazardGenerator{rng: rng}
}

// Next returns a new segment. After a branch only plain segments are drawn;
// otherwise all four kinds are equally likely.
func (g *HazardGenerator) Next(previousWasHazard bool) HazardKind {
	if previousWasHazard {
		return plainKinds[g.rng.Intn(len(plainKinds))]
	}
	return allKinds[g.rng.Intn(len(allKinds))]
}
