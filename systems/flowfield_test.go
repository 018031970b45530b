package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/quietmice/config"
)

func TestFlowFieldDeterministicPerSeed(t *testing.T) {
	cfg := config.Defaults().Flow
	a := NewFlowField(7, cfg)
	b := NewFlowField(7, cfg)
	c := NewFlowField(8, cfg)

	same, differ := true, false
	for i := 0; i < 20; i++ {
		x, y := float64(i*53), float64(i*31)
		if a.Angle(x, y) != b.Angle(x, y) {
			same = false
		}
		if a.Angle(x, y) != c.Angle(x, y) {
			differ = true
		}
	}
	if !same {
		t.Error("same seed should give the same field")
	}
	if !differ {
		t.Error("different seeds should give different fields")
	}
}

func TestFlowFieldIsSmooth(t *testing.T) {
	cfg := config.Defaults().Flow
	f := NewFlowField(3, cfg)

	// One pixel apart is a tiny step in noise space
	for i := 0; i < 50; i++ {
		x, y := float64(i*20), float64(i*17)
		if d := math.Abs(f.Angle(x, y) - f.Angle(x+1, y)); d > 0.5 {
			t.Errorf("angle jumped by %.3f rad between neighbors at (%v, %v)", d, x, y)
		}
	}
}

func TestFlowFieldPushMagnitude(t *testing.T) {
	cfg := config.Defaults().Flow
	f := NewFlowField(1, cfg)
	want := cfg.Strength * cfg.Push

	for i := 0; i < 10; i++ {
		dx, dy := f.Push(float64(i*100), float64(i*70))
		if got := math.Hypot(dx, dy); math.Abs(got-want) > 1e-9 {
			t.Errorf("push magnitude = %v, want %v", got, want)
		}
	}
}

func TestFlowFieldAdvance(t *testing.T) {
	cfg := config.Defaults().Flow
	f := NewFlowField(1, cfg)
	f.Advance()
	f.Advance()
	if math.Abs(f.Time()-2*cfg.TimeStep) > 1e-12 {
		t.Errorf("time = %v, want %v", f.Time(), 2*cfg.TimeStep)
	}
}
