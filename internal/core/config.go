package core

// RuntimeConfig contains the driver-side settings a session runs with.
type RuntimeConfig struct {
	ScreenW       int     // Screen width in characters
	ScreenH       int     // Screen height in characters
	TickRate      int     // Frames per second driven by the platform (default 60)
	Seed          int64   // RNG seed for hazard generation; 0 means time-based
	MaxFrameDelta float64 // Upper bound in seconds applied to each frame's dt
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		Seed:          0, // 0 means use current time in platform layer
		MaxFrameDelta: 0.25,
	}
}

// FrameDelta returns the nominal seconds per frame for the tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// CapDelta clamps a measured frame delta to [0, MaxFrameDelta].
// A zero MaxFrameDelta disables the upper bound.
func (c RuntimeConfig) CapDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if c.MaxFrameDelta > 0 && dt > c.MaxFrameDelta {
		return c.MaxFrameDelta
	}
	return dt
}

// GameState is the summary a session reports to the platform after each step.
type GameState struct {
	Score    int  // Current run score
	MaxScore int  // Best score since process start
	GameOver bool // Whether the run has ended
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State  GameState
	Events []Event // Transitions that happened this frame, in order
}
