// Package components defines particle state and the ECS components for
// walking figures and debris.
package components

import "math"

// Position represents an entity's canvas position.
type Position struct {
	X, Y float64
}

// Velocity represents an entity's per-tick velocity.
type Velocity struct {
	X, Y float64
}

// Offset is a body point relative to a figure's position.
type Offset struct {
	X, Y float64
}

// GridParticle is one cell of the source image mosaic.
// Col, Row, HomeX and HomeY never change after creation.
type GridParticle struct {
	Col, Row     int
	HomeX, HomeY float64

	X, Y   float64
	VX, VY float64

	WanderSpeed float64 // drawn once at creation

	// Seek target, only meaningful while a seeking behavior is in effect
	TX, TY float64

	// Active particles take part in formation seeking and formation rendering
	Active bool
}

// NewGridParticle creates a particle resting at its home position.
func NewGridParticle(col, row int, homeX, homeY, wanderSpeed float64) GridParticle {
	return GridParticle{
		Col:         col,
		Row:         row,
		HomeX:       homeX,
		HomeY:       homeY,
		X:           homeX,
		Y:           homeY,
		WanderSpeed: wanderSpeed,
		TX:          homeX,
		TY:          homeY,
		Active:      true,
	}
}

// SetTarget sets the seek target.
func (p *GridParticle) SetTarget(x, y float64) {
	p.TX = x
	p.TY = y
}

// Speed returns the velocity magnitude.
func (p *GridParticle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// Figure is an animated walking agent. Paired with Position in the ECS world.
// X only ever increases while the figure is alive.
type Figure struct {
	BaseY      float64
	Speed      float64 // px per tick
	Scale      float64
	Frame      int
	FrameTimer int
	WavePhase  float64

	// Body holds the current frame's points scaled by Scale
	Body []Offset
}

// Debris marks a freed body point. Paired with Position and Velocity.
type Debris struct {
	Age int // ticks since it was freed
}
