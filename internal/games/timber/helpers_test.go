package timber

import (
	"math"
	"math/rand"
)

// scriptedRand replays fixed values (reduced modulo n) and records the n of
// every call, so tests can see which distribution the generator used.
type scriptedRand struct {
	vals  []int
	next  int
	calls []int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.next%len(r.vals)]
	r.next++
	return v % n
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestSession returns a session whose trunk is forced to slots and whose
// future segments come from rng.
func newTestSession(rng RandSource, slots [TrunkHeight]HazardKind) *Session {
	s := NewSession(rng)
	s.trunk.slots = slots
	return s
}

func plainTrunk() [TrunkHeight]HazardKind {
	return [TrunkHeight]HazardKind{PlainA, PlainB, PlainA, PlainB, PlainA, PlainB}
}
