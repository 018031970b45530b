package systems

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/quietmice/config"
)

// FlowField is a smooth pseudo-random angle field over (x, y, time).
// Nearby positions and consecutive times sample nearby angles, which keeps
// wandering particles drifting instead of jittering.
type FlowField struct {
	noise opensimplex.Noise
	cfg   config.FlowConfig
	t     float64
}

// NewFlowField creates a flow field seeded for reproducible runs.
func NewFlowField(seed int64, cfg config.FlowConfig) *FlowField {
	return &FlowField{
		noise: opensimplex.NewNormalized(seed),
		cfg:   cfg,
	}
}

// Advance moves the field forward one tick in time.
func (f *FlowField) Advance() {
	f.t += f.cfg.TimeStep
}

// Time returns the current noise time coordinate.
func (f *FlowField) Time() float64 {
	return f.t
}

// Angle returns the flow direction at (x, y) in radians.
func (f *FlowField) Angle(x, y float64) float64 {
	n := f.noise.Eval3(x*f.cfg.Scale, y*f.cfg.Scale, f.t)
	return n * 2 * math.Pi * f.cfg.AngleTurns
}

// Push returns the velocity increment a particle at (x, y) receives this tick.
func (f *FlowField) Push(x, y float64) (dx, dy float64) {
	a := f.Angle(x, y)
	mag := f.cfg.Strength * f.cfg.Push
	return math.Cos(a) * mag, math.Sin(a) * mag
}
