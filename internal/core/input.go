package core

// Action is a semantic input command, abstracted from physical keys and clicks.
// The input-mapping layer produces these; the simulation consumes them.
type Action int

const (
	ActionNone        Action = iota
	ActionChopLeft           // Left, A, H - chop the left side of the trunk
	ActionChopRight          // Right, D, L - chop the right side of the trunk
	ActionDismiss            // any other key or the start button - leave the menu
	ActionReset              // Space or the replay button - back to menu after game over
	ActionToggleDebug        // I - presentation-only debug overlay
	ActionQuit               // Esc, Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionChopLeft:
		return "ChopLeft"
	case ActionChopRight:
		return "ChopRight"
	case ActionDismiss:
		return "Dismiss"
	case ActionReset:
		return "Reset"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsChop reports whether the action is one of the two chop commands.
func (a Action) IsChop() bool {
	return a == ActionChopLeft || a == ActionChopRight
}

// InputFrame holds the actions received during one frame, in arrival order.
// Order matters: two chops in one frame must be applied in the order pressed.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in arrival order.
// The returned slice must not be modified.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear empties the frame for reuse, keeping its capacity.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
