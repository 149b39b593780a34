package core

import "testing"

func TestCapDelta(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal frame", 1.0 / 60.0, 1.0 / 60.0},
		{"negative", -0.5, 0},
		{"long stall", 3.0, cfg.MaxFrameDelta},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cfg.CapDelta(tc.dt); got != tc.expected {
				t.Errorf("CapDelta(%f) = %f, expected %f", tc.dt, got, tc.expected)
			}
		})
	}

	cfg.MaxFrameDelta = 0
	if got := cfg.CapDelta(3.0); got != 3.0 {
		t.Errorf("zero MaxFrameDelta should disable the cap, got %f", got)
	}
}

func TestFrameDelta(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}
	if got := cfg.FrameDelta(); got != 1.0/30.0 {
		t.Errorf("FrameDelta() = %f, expected %f", got, 1.0/30.0)
	}

	cfg.TickRate = 0
	if got := cfg.FrameDelta(); got != 1.0/60.0 {
		t.Errorf("FrameDelta() with zero tick rate = %f, expected 60fps default", got)
	}
}
