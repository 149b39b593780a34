package timber

import "testing"

func TestLifeTimerStartsBelowMax(t *testing.T) {
	timer := NewLifeTimer()
	if timer.Remaining() != StartLifeTime {
		t.Errorf("Remaining() = %f, expected %f", timer.Remaining(), StartLifeTime)
	}
	if !approxEqual(timer.Fraction(), 0.5) {
		t.Errorf("Fraction() = %f, expected 0.5", timer.Fraction())
	}
}

func TestLifeTimerTick(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		active   bool
		expected float64
	}{
		{"active decay", 1.5, true, 3.5},
		{"inactive holds", 1.5, false, 5.0},
		{"negative delta ignored", -2.0, true, 5.0},
		{"overshoot clamps to zero", 7.0, true, 0.0},
		{"exact drain", 5.0, true, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timer := NewLifeTimer()
			timer.Tick(tc.dt, tc.active)
			if !approxEqual(timer.Remaining(), tc.expected) {
				t.Errorf("Remaining() = %f, expected %f", timer.Remaining(), tc.expected)
			}
		})
	}
}

func TestLifeTimerRewardCaps(t *testing.T) {
	timer := NewLifeTimer()
	timer.Reward()
	if !approxEqual(timer.Remaining(), 5.2) {
		t.Errorf("after one reward Remaining() = %f, expected 5.2", timer.Remaining())
	}

	for i := 0; i < 100; i++ {
		timer.Reward()
	}
	if timer.Remaining() != MaxLifeTime {
		t.Errorf("rewards should cap at %f, got %f", MaxLifeTime, timer.Remaining())
	}
	if timer.Fraction() != 1 {
		t.Errorf("Fraction() at cap = %f, expected 1", timer.Fraction())
	}
}

func TestLifeTimerExpired(t *testing.T) {
	timer := NewLifeTimer()
	if timer.IsExpired() {
		t.Fatal("fresh timer should not be expired")
	}
	timer.Tick(StartLifeTime, true)
	if !timer.IsExpired() {
		t.Error("timer drained to zero should be expired")
	}
	if timer.Fraction() != 0 {
		t.Errorf("Fraction() when expired = %f, expected 0", timer.Fraction())
	}

	timer.Reset()
	if timer.IsExpired() || timer.Remaining() != StartLifeTime {
		t.Error("Reset should restore the start value")
	}
}

func TestLifeTimerStaysInBounds(t *testing.T) {
	rng := seeded(3)
	timer := NewLifeTimer()
	for i := 0; i < 5000; i++ {
		if rng.Intn(3) == 0 {
			timer.Reward()
		} else {
			timer.Tick(rng.Float64()*0.3, rng.Intn(4) != 0)
		}
		if r := timer.Remaining(); r < 0 || r > MaxLifeTime {
			t.Fatalf("step %d: Remaining() = %f out of [0, %f]", i, r, MaxLifeTime)
		}
		if f := timer.Fraction(); f < 0 || f > 1 {
			t.Fatalf("step %d: Fraction() = %f out of [0, 1]", i, f)
		}
	}
}
