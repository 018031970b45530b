package ui

import "testing"

func TestPulseAlphaRange(t *testing.T) {
	lo, hi := float32(1), float32(0)
	for tick := 0; tick < 600; tick++ {
		a := PulseAlpha(tick)
		if a < 0.35-1e-6 || a > 1+1e-6 {
			t.Fatalf("tick %d: alpha %f out of [0.35, 1]", tick, a)
		}
		lo = min(lo, a)
		hi = max(hi, a)
	}
	if hi-lo < 0.6 {
		t.Errorf("pulse too shallow: %f..%f", lo, hi)
	}
}
