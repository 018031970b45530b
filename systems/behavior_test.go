package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/quietmice/components"
	"github.com/pthm-cable/quietmice/config"
)

func testMotion(seed int64) *Motion {
	cfg := config.Defaults()
	flow := NewFlowField(seed, cfg.Flow)
	return NewMotion(cfg.Behavior, flow, Bounds{Width: 1080, Height: 1350}, rand.New(rand.NewSource(seed)))
}

func TestBehaviorString(t *testing.T) {
	tests := []struct {
		b    Behavior
		want string
	}{
		{BehaviorRelax, "relax"},
		{BehaviorWander, "wander"},
		{BehaviorSeek, "seek"},
		{BehaviorJitter, "jitter"},
		{BehaviorChaotic, "chaotic"},
		{Behavior(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Behavior(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestWanderMovesAndStaysInBounds(t *testing.T) {
	m := testMotion(1)
	p := components.NewGridParticle(0, 0, 500, 600, 1.5)

	moved := false
	for i := 0; i < 2000; i++ {
		m.Apply(BehaviorWander, &p)
		m.flow.Advance()
		if p.X != 500 || p.Y != 600 {
			moved = true
		}
		if p.X < 0 || p.X > 1080 || p.Y < 0 || p.Y > 1350 {
			t.Fatalf("tick %d: particle escaped to (%v, %v)", i, p.X, p.Y)
		}
	}
	if !moved {
		t.Error("wander never moved the particle")
	}
	// Damping bounds the steady-state speed: |v| <= push/(1-damping)
	maxV := 0.6 * 0.12 / (1 - 0.96)
	if p.Speed() > maxV+1e-9 {
		t.Errorf("speed %v exceeds damped ceiling %v", p.Speed(), maxV)
	}
}

func TestSeekConvergesActiveOnly(t *testing.T) {
	m := testMotion(2)

	active := components.NewGridParticle(0, 0, 100, 100, 1.0)
	active.SetTarget(700, 900)

	inactive := components.NewGridParticle(1, 0, 100, 100, 1.0)
	inactive.SetTarget(700, 900)
	inactive.Active = false

	start := math.Hypot(600, 800)
	for i := 0; i < 600; i++ {
		m.Apply(BehaviorSeek, &active)
		m.Apply(BehaviorSeek, &inactive)
		m.flow.Advance()
	}

	if d := math.Hypot(active.TX-active.X, active.TY-active.Y); d > start/10 {
		t.Errorf("active particle still %v from target (started %v)", d, start)
	}
	if inactive.X != 100 || inactive.Y != 100 || inactive.VX != 0 || inactive.VY != 0 {
		t.Errorf("inactive particle was moved: %+v", inactive)
	}
}

func TestJitterHoldsNearTarget(t *testing.T) {
	m := testMotion(3)
	p := components.NewGridParticle(0, 0, 0, 0, 1.0)
	p.X, p.Y = 400, 400
	p.SetTarget(400, 400)

	for i := 0; i < 500; i++ {
		m.Apply(BehaviorJitter, &p)
		if d := math.Hypot(p.X-400, p.Y-400); d > 2 {
			t.Fatalf("tick %d: jitter drifted %v from target", i, d)
		}
	}

	off := components.NewGridParticle(0, 0, 0, 0, 1.0)
	off.Active = false
	off.X, off.Y = 10, 10
	m.Apply(BehaviorJitter, &off)
	if off.X != 10 || off.Y != 10 {
		t.Error("inactive particle jittered")
	}
}

func TestChaoticClampsSpeedAndBounces(t *testing.T) {
	m := testMotion(4)
	p := components.NewGridParticle(0, 0, 540, 675, 1.0)

	for i := 0; i < 1000; i++ {
		m.Apply(BehaviorChaotic, &p)
		if math.Abs(p.VX) > 15 || math.Abs(p.VY) > 15 {
			t.Fatalf("tick %d: velocity (%v, %v) exceeds ceiling", i, p.VX, p.VY)
		}
		if p.X < 0 || p.X > 1080 || p.Y < 0 || p.Y > 1350 {
			t.Fatalf("tick %d: grid particle left canvas at (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestChaoticStepUnclampedFlipsOutside(t *testing.T) {
	cfg := config.Defaults()
	cfg.Behavior.ChaosDelta = 0
	m := NewMotion(cfg.Behavior, NewFlowField(1, cfg.Flow), Bounds{Width: 100, Height: 100}, rand.New(rand.NewSource(1)))

	x, y, vx, vy := 99.0, 50.0, 5.0, 0.0
	m.ChaoticStep(&x, &y, &vx, &vy, 1, false)
	if x != 104 {
		t.Errorf("x = %v, want 104 (no clamp)", x)
	}
	if vx != -4 {
		t.Errorf("vx = %v, want -4 after restitution flip", vx)
	}
}

func TestReflect(t *testing.T) {
	m := testMotion(5)
	tests := []struct {
		name             string
		x, y, vx, vy     float64
		wx, wy, wvx, wvy float64
	}{
		{"left", -5, 10, -10, 1, 0, 10, 8, 1},
		{"right", 1100, 10, 10, 1, 1080, 10, -8, 1},
		{"top", 10, -1, 1, -5, 10, 0, 1, 4},
		{"bottom", 10, 1400, 1, 5, 10, 1350, 1, -4},
		{"inside", 10, 10, 3, 3, 10, 10, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.GridParticle{X: tt.x, Y: tt.y, VX: tt.vx, VY: tt.vy}
			m.Reflect(&p)
			if p.X != tt.wx || p.Y != tt.wy || p.VX != tt.wvx || p.VY != tt.wvy {
				t.Errorf("got (%v,%v,%v,%v), want (%v,%v,%v,%v)",
					p.X, p.Y, p.VX, p.VY, tt.wx, tt.wy, tt.wvx, tt.wvy)
			}
		})
	}
}

func TestRelaxReturnsHome(t *testing.T) {
	m := testMotion(6)
	p := components.NewGridParticle(3, 4, 63, 81, 1.0)
	p.X, p.Y = 900, 20
	p.VX, p.VY = 10, -10

	for i := 0; i < 200; i++ {
		m.Apply(BehaviorRelax, &p)
	}
	if math.Abs(p.X-63) > 0.01 || math.Abs(p.Y-81) > 0.01 {
		t.Errorf("particle at (%v, %v), want home (63, 81)", p.X, p.Y)
	}
	if p.Speed() > 0.001 {
		t.Errorf("velocity did not decay: %v", p.Speed())
	}
}

func TestImpulseChangesVelocity(t *testing.T) {
	m := testMotion(7)
	ps := make([]components.GridParticle, 20)
	for i := range ps {
		m.Impulse(&ps[i], 0.5)
	}
	changed := 0
	for _, p := range ps {
		if math.Abs(p.VX) > 0.5 || math.Abs(p.VY) > 0.5 {
			t.Errorf("impulse out of range: (%v, %v)", p.VX, p.VY)
		}
		if p.VX != 0 || p.VY != 0 {
			changed++
		}
	}
	if changed == 0 {
		t.Error("no particle velocity changed")
	}
}

func TestFlowFieldContinuity(t *testing.T) {
	cfg := config.Defaults()
	f := NewFlowField(42, cfg.Flow)

	a := f.Angle(300, 300)
	b := f.Angle(301, 300)
	if math.Abs(a-b) > 0.2 {
		t.Errorf("angle jumped %v over 1px", math.Abs(a-b))
	}

	f.Advance()
	c := f.Angle(300, 300)
	if math.Abs(a-c) > 0.2 {
		t.Errorf("angle jumped %v over one tick", math.Abs(a-c))
	}

	g := NewFlowField(42, cfg.Flow)
	if g.Angle(300, 300) != a {
		t.Error("same seed should sample the same field")
	}
}
