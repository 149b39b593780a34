package core

// Event names a simulation transition the presentation layer may react to
// (log line, sound cue, flash). Events carry no payload; read the snapshot.
type Event int

const (
	EventNone     Event = iota
	EventStarted        // Menu -> Playing
	EventChopped        // surviving chop: stack advanced, score and timer rewarded
	EventKilled         // chop into a branch, or the timer ran out
	EventGameOver       // Playing -> GameOver
	EventReset          // GameOver -> Menu
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventChopped:
		return "chopped"
	case EventKilled:
		return "killed"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}
