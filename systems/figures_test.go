package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/quietmice/components"
	"github.com/pthm-cable/quietmice/config"
	"github.com/pthm-cable/quietmice/pointfield"
)

func testAnimator(frames [][]pointfield.Point) *FigureAnimator {
	return NewFigureAnimator(config.Defaults().Figures, frames, Bounds{Width: 1080, Height: 1350})
}

func TestFigureSpawn(t *testing.T) {
	frames := [][]pointfield.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}},
		{{X: 5, Y: 5}},
		{},
	}
	a := testAnimator(frames)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		pos, f := a.Spawn(rng, 300)
		if pos.X != -500 {
			t.Errorf("spawn x = %v, want -500", pos.X)
		}
		if f.BaseY < 135 || f.BaseY >= 1215 {
			t.Errorf("baseY %v outside 10%%-90%% band", f.BaseY)
		}
		if f.Scale < 0.3 || f.Scale >= 0.5 {
			t.Errorf("scale %v out of range", f.Scale)
		}
		if len(f.Body) != len(frames[f.Frame]) {
			t.Errorf("body has %d points, frame %d has %d", len(f.Body), f.Frame, len(frames[f.Frame]))
		}
		if a.Visible(pos) {
			t.Error("freshly spawned figure should not be visible")
		}
	}
}

func TestFigureStepMonotonicAndCyclic(t *testing.T) {
	frames := [][]pointfield.Point{{{X: 1, Y: 1}}, {{X: 2, Y: 2}, {X: 3, Y: 3}}, {}, {{X: 4, Y: 4}}}
	a := testAnimator(frames)
	rng := rand.New(rand.NewSource(2))
	pos, f := a.Spawn(rng, 0)

	startFrame := f.Frame
	lastX := pos.X
	for i := 1; i <= 24; i++ {
		a.Step(&pos, &f)
		if pos.X <= lastX {
			t.Fatalf("step %d: x went from %v to %v", i, lastX, pos.X)
		}
		lastX = pos.X
		if pos.Y < f.BaseY-12 || pos.Y > f.BaseY+12 {
			t.Errorf("step %d: bob %v outside ±12 of %v", i, pos.Y-f.BaseY, f.BaseY)
		}
	}
	// 24 ticks at 3 ticks per frame = 8 frames = two full cycles
	if f.Frame != startFrame {
		t.Errorf("frame = %d, want %d after two cycles", f.Frame, startFrame)
	}
	if len(f.Body) != len(frames[f.Frame]) {
		t.Errorf("body not refreshed for frame %d", f.Frame)
	}
}

func TestFigureExitAndExplode(t *testing.T) {
	a := testAnimator([][]pointfield.Point{{{X: 10, Y: 20}, {X: 30, Y: 40}}})
	f := components.Figure{Scale: 0.5}
	f.Body = a.Body(0, f.Scale)

	pos := components.Position{X: 100, Y: 200}
	got := a.Explode(pos, &f)
	want := []components.Position{{X: 105, Y: 210}, {X: 115, Y: 220}}
	if len(got) != len(want) {
		t.Fatalf("explode returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if a.Exited(components.Position{X: 1680}) {
		t.Error("x=1680 is not past width+margin")
	}
	if !a.Exited(components.Position{X: 1681}) {
		t.Error("x=1681 should have exited")
	}
}

func TestFigureMissingFrames(t *testing.T) {
	a := testAnimator(nil)
	rng := rand.New(rand.NewSource(3))
	pos, f := a.Spawn(rng, 0)
	if len(f.Body) != 0 {
		t.Errorf("missing frames should yield empty body, got %d", len(f.Body))
	}
	a.Step(&pos, &f)
	if len(a.Explode(pos, &f)) != 0 {
		t.Error("bodiless figure should explode into nothing")
	}
}

func TestDebrisMotion(t *testing.T) {
	cfg := config.Defaults()
	m := testMotion(9)
	d := NewDebrisMotion(cfg.Debris, m)

	pos := components.Position{X: 500, Y: 500}
	vel := components.Velocity{X: 10, Y: 0}
	d.Drift(&pos, &vel)
	if pos.X != 510 || math.Abs(vel.X-9.7) > 1e-9 {
		t.Errorf("drift got pos %v vel %v", pos, vel)
	}

	if d.Escaped(components.Position{X: -100, Y: 0}) {
		t.Error("point on the padded edge has not escaped")
	}
	if !d.Escaped(components.Position{X: -101, Y: 0}) {
		t.Error("point beyond padding should have escaped")
	}
	if !d.Escaped(components.Position{X: 0, Y: 1451}) {
		t.Error("point below padding should have escaped")
	}

	for i := 0; i < 100; i++ {
		v := d.Burst()
		if v.X < -10 || v.X >= 10 || v.Y < -10 || v.Y >= 10 {
			t.Fatalf("burst %v out of range", v)
		}
	}

	for i := 0; i < 200; i++ {
		d.Chaotic(&pos, &vel)
		if vel.X > 15 || vel.X < -15 || vel.Y > 15 || vel.Y < -15 {
			t.Fatalf("debris velocity %v exceeds ceiling", vel)
		}
	}
}
