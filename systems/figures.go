package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/quietmice/components"
	"github.com/pthm-cable/quietmice/config"
	"github.com/pthm-cable/quietmice/pointfield"
)

// FigureAnimator builds and advances walking figures from per-frame point fields.
type FigureAnimator struct {
	cfg    config.FiguresConfig
	frames [][]pointfield.Point
	bounds Bounds
}

// NewFigureAnimator creates an animator. frames may contain empty entries for
// frames whose bitmap was unavailable; such frames produce bodiless figures.
func NewFigureAnimator(cfg config.FiguresConfig, frames [][]pointfield.Point, bounds Bounds) *FigureAnimator {
	n := cfg.FrameCount
	if n < 1 {
		n = 1
	}
	fs := make([][]pointfield.Point, n)
	copy(fs, frames)
	return &FigureAnimator{cfg: cfg, frames: fs, bounds: bounds}
}

// FrameCount returns the number of animation frames.
func (a *FigureAnimator) FrameCount() int {
	return len(a.frames)
}

// Spawn creates a figure off the left edge, pushed further left by delayOffset
// so a batch enters staggered.
func (a *FigureAnimator) Spawn(rng *rand.Rand, delayOffset float64) (components.Position, components.Figure) {
	baseY := randRange(rng, a.bounds.Height*a.cfg.BandMin, a.bounds.Height*a.cfg.BandMax)
	f := components.Figure{
		BaseY:     baseY,
		Speed:     randRange(rng, a.cfg.SpeedMin, a.cfg.SpeedMax),
		Scale:     randRange(rng, a.cfg.ScaleMin, a.cfg.ScaleMax),
		Frame:     rng.Intn(len(a.frames)),
		WavePhase: rng.Float64() * 2 * math.Pi,
	}
	f.Body = a.Body(f.Frame, f.Scale)
	pos := components.Position{X: a.cfg.SpawnX - delayOffset, Y: baseY}
	return pos, f
}

// Body returns the frame's points scaled into body offsets.
func (a *FigureAnimator) Body(frame int, scale float64) []components.Offset {
	if frame < 0 || frame >= len(a.frames) {
		return nil
	}
	pts := a.frames[frame]
	body := make([]components.Offset, len(pts))
	for i, p := range pts {
		body[i] = components.Offset{X: p.X * scale, Y: p.Y * scale}
	}
	return body
}

// Step walks the figure right, bobs it vertically and advances its frame.
func (a *FigureAnimator) Step(pos *components.Position, f *components.Figure) {
	pos.X += f.Speed
	f.WavePhase += a.cfg.BobStep
	pos.Y = f.BaseY + math.Sin(f.WavePhase)*a.cfg.BobAmplitude

	f.FrameTimer++
	if f.FrameTimer >= a.cfg.FrameHoldTicks {
		f.Frame = (f.Frame + 1) % len(a.frames)
		f.Body = a.Body(f.Frame, f.Scale)
		f.FrameTimer = 0
	}
}

// Visible reports whether the figure has walked far enough in to be drawn.
func (a *FigureAnimator) Visible(pos components.Position) bool {
	return pos.X > a.cfg.SpawnX
}

// Exited reports whether the figure has walked past the right edge.
func (a *FigureAnimator) Exited(pos components.Position) bool {
	return pos.X > a.bounds.Width+a.cfg.ExitMargin
}

// Explode returns the absolute positions of every body point.
func (a *FigureAnimator) Explode(pos components.Position, f *components.Figure) []components.Position {
	out := make([]components.Position, len(f.Body))
	for i, o := range f.Body {
		out[i] = components.Position{X: pos.X + o.X, Y: pos.Y + o.Y}
	}
	return out
}

// DebrisMotion advances freed body points.
type DebrisMotion struct {
	cfg    config.DebrisConfig
	motion *Motion
}

// NewDebrisMotion creates a debris motion system sharing the grid's Motion.
func NewDebrisMotion(cfg config.DebrisConfig, motion *Motion) *DebrisMotion {
	return &DebrisMotion{cfg: cfg, motion: motion}
}

// Drift coasts with drag. Debris only exists from DISPERSE on and entering
// RATS_WALK clears it, so this matters only if debris is carried into a walk.
func (d *DebrisMotion) Drift(pos *components.Position, vel *components.Velocity) {
	pos.X += vel.X
	pos.Y += vel.Y
	vel.X *= d.cfg.DriftDrag
	vel.Y *= d.cfg.DriftDrag
}

// Chaotic is the dispersal rule: chaotic bounce with light friction.
func (d *DebrisMotion) Chaotic(pos *components.Position, vel *components.Velocity) {
	d.motion.ChaoticStep(&pos.X, &pos.Y, &vel.X, &vel.Y, d.cfg.ChaosFriction, false)
}

// Escaped reports whether the point left the padded canvas.
func (d *DebrisMotion) Escaped(pos components.Position) bool {
	return !d.motion.Bounds().Contains(pos.X, pos.Y, d.cfg.BoundPadding)
}

// Burst returns a fresh outward velocity.
func (d *DebrisMotion) Burst() components.Velocity {
	vx, vy := d.motion.Burst(d.cfg.ExplodeSpeed)
	return components.Velocity{X: vx, Y: vy}
}
