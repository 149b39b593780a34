package timber

// TrunkHeight is the number of segments in the trunk stack.
const TrunkHeight = 6

// TrunkStack is the column of segments above the stump.
// Slot 0 sits at the chop point; slot TrunkHeight-1 is the newest, topmost
// segment. Only slot 0 is ever tested for collision.
type TrunkStack struct {
	slots [TrunkHeight]HazardKind
	gen   *HazardGenerator
}

// NewTrunkStack creates a stack and fills it from gen.
func NewTrunkStack(gen *HazardGenerator) *TrunkStack {
	t := &TrunkStack{gen: gen}
	t.Initialize()
	return t
}

// Initialize refills every slot bottom-up. Each segment is drawn knowing
// whether the one below it is a branch; slot 0 has no predecessor.
func (t *TrunkStack) Initialize() {
	prev := false
	for i := range t.slots {
		t.slots[i] = t.gen.Next(prev)
		prev = t.slots[i].IsHazard()
	}
}

// HazardAtChopPoint returns the segment at slot 0.
func (t *TrunkStack) HazardAtChopPoint() HazardKind {
	return t.slots[0]
}

// Advance drops every segment by one slot and grows a new top segment.
// The new segment is drawn against the one that just moved into the slot
// below it, so a branch is never followed directly by another branch.
func (t *TrunkStack) Advance() {
	copy(t.slots[:TrunkHeight-1], t.slots[1:])
	below := t.slots[TrunkHeight-2]
	t.slots[TrunkHeight-1] = t.gen.Next(below.IsHazard())
}

// Slot returns the segment at index i (0 = chop point).
// It panics if i is out of range.
func (t *TrunkStack) Slot(i int) HazardKind {
	return t.slots[i]
}

// Slots returns a copy of all segments, bottom first.
func (t *TrunkStack) Slots() [TrunkHeight]HazardKind {
	return t.slots
}

// Len always returns TrunkHeight.
func (t *TrunkStack) Len() int {
	return len(t.slots)
}
