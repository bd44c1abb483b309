package isoviz

import (
	"math"
	"testing"
)

func TestEase_Endpoints(t *testing.T) {
	eases := map[string]EaseFunc{
		"smooth":    Smooth,
		"linear":    Linear,
		"rush-into": RushInto,
		"rush-from": RushFrom,
	}
	for name, ease := range eases {
		t.Run(name, func(t *testing.T) {
			if got := ease(0); math.Abs(got) > 1e-9 {
				t.Errorf("ease(0) = %g, want 0", got)
			}
			if got := ease(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("ease(1) = %g, want 1", got)
			}
			// Out-of-range inputs clamp rather than extrapolate.
			if got := ease(-0.5); got != 0 {
				t.Errorf("ease(-0.5) = %g, want 0", got)
			}
			if got := ease(1.5); math.Abs(got-1) > 1e-9 {
				t.Errorf("ease(1.5) = %g, want 1", got)
			}
		})
	}
}

func TestEase_Monotonic(t *testing.T) {
	eases := map[string]EaseFunc{
		"smooth":    Smooth,
		"linear":    Linear,
		"rush-into": RushInto,
		"rush-from": RushFrom,
	}
	for name, ease := range eases {
		t.Run(name, func(t *testing.T) {
			prev := ease(0)
			for i := 1; i <= 100; i++ {
				cur := ease(float64(i) / 100)
				if cur < prev {
					t.Fatalf("not monotonic at t=%g: %g < %g", float64(i)/100, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestSmooth_Midpoint(t *testing.T) {
	if got := Smooth(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Smooth(0.5) = %g, want 0.5", got)
	}
}
