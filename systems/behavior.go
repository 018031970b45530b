// Package systems holds the per-tick motion rules: grid behaviors, the flow
// field, figure animation, batch spawning and debris physics.
package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/quietmice/components"
	"github.com/pthm-cable/quietmice/config"
)

// Behavior selects the motion rule applied to every grid particle in a tick.
type Behavior uint8

const (
	BehaviorRelax   Behavior = iota // lerp back to the mosaic home position
	BehaviorWander                  // flow field drift
	BehaviorSeek                    // flow field drift plus pull toward target
	BehaviorJitter                  // hold near target with faint noise
	BehaviorChaotic                 // explosive random walk with wall bounces
)

func (b Behavior) String() string {
	switch b {
	case BehaviorRelax:
		return "relax"
	case BehaviorWander:
		return "wander"
	case BehaviorSeek:
		return "seek"
	case BehaviorJitter:
		return "jitter"
	case BehaviorChaotic:
		return "chaotic"
	default:
		return "unknown"
	}
}

// Motion applies behaviors to particles. It holds no per-particle state.
type Motion struct {
	cfg    config.BehaviorConfig
	flow   *FlowField
	bounds Bounds
	rng    *rand.Rand
}

// NewMotion creates a motion system over the given canvas bounds.
func NewMotion(cfg config.BehaviorConfig, flow *FlowField, bounds Bounds, rng *rand.Rand) *Motion {
	return &Motion{cfg: cfg, flow: flow, bounds: bounds, rng: rng}
}

// Bounds returns the canvas rectangle.
func (m *Motion) Bounds() Bounds {
	return m.bounds
}

// Apply advances one particle by one tick using behavior b.
func (m *Motion) Apply(b Behavior, p *components.GridParticle) {
	switch b {
	case BehaviorWander:
		m.Wander(p)
		m.Reflect(p)
	case BehaviorSeek:
		m.Seek(p, m.cfg.SeekPull)
		m.Reflect(p)
	case BehaviorJitter:
		m.Jitter(p)
	case BehaviorChaotic:
		m.Chaotic(p)
	default:
		m.Relax(p)
	}
}

// ApplyAll advances every particle with the same behavior.
func (m *Motion) ApplyAll(b Behavior, particles []components.GridParticle) {
	for i := range particles {
		m.Apply(b, &particles[i])
	}
}

// Wander pushes the particle along the flow field, damps, then integrates
// scaled by the particle's own wander speed.
func (m *Motion) Wander(p *components.GridParticle) {
	dx, dy := m.flow.Push(p.X, p.Y)
	p.VX += dx
	p.VY += dy
	m.integrateWander(p)
}

// Seek is Wander plus a unit pull toward the target scaled by pull.
// Inactive particles are left untouched.
func (m *Motion) Seek(p *components.GridParticle, pull float64) {
	if !p.Active {
		return
	}
	dx, dy := m.flow.Push(p.X, p.Y)
	p.VX += dx
	p.VY += dy

	tx, ty := p.TX-p.X, p.TY-p.Y
	if dist := math.Hypot(tx, ty); dist > 1 {
		p.VX += tx / dist * pull
		p.VY += ty / dist * pull
	}
	m.integrateWander(p)
}

func (m *Motion) integrateWander(p *components.GridParticle) {
	p.VX *= m.cfg.WanderDamping
	p.VY *= m.cfg.WanderDamping
	p.X += p.VX * p.WanderSpeed
	p.Y += p.VY * p.WanderSpeed
}

// Jitter nudges velocity toward the target delta plus noise, then damps hard.
// Inactive particles are left untouched.
func (m *Motion) Jitter(p *components.GridParticle) {
	if !p.Active {
		return
	}
	n := m.cfg.JitterNoise
	p.VX += (p.TX-p.X)*m.cfg.JitterGain + randRange(m.rng, -n, n)
	p.VY += (p.TY-p.Y)*m.cfg.JitterGain + randRange(m.rng, -n, n)
	p.VX *= m.cfg.JitterDamping
	p.VY *= m.cfg.JitterDamping
	p.X += p.VX
	p.Y += p.VY
}

// Chaotic adds large random deltas, clamps speed, integrates without damping
// and bounces off the canvas edges.
func (m *Motion) Chaotic(p *components.GridParticle) {
	m.ChaoticStep(&p.X, &p.Y, &p.VX, &p.VY, 1, true)
}

// ChaoticStep is the shared chaotic-bounce rule. friction of 1 means no damping.
// With clamp false, points outside the canvas only have their velocity flipped,
// so they can still escape.
func (m *Motion) ChaoticStep(x, y, vx, vy *float64, friction float64, clamp bool) {
	d := m.cfg.ChaosDelta
	maxV := m.cfg.ChaosMaxSpeed

	*vx = clampFloat(*vx+randRange(m.rng, -d, d), -maxV, maxV)
	*vy = clampFloat(*vy+randRange(m.rng, -d, d), -maxV, maxV)
	*vx *= friction
	*vy *= friction

	*x += *vx
	*y += *vy
	if clamp {
		m.reflect(x, y, vx, vy)
		return
	}
	r := m.cfg.Restitution
	if *x < 0 || *x > m.bounds.Width {
		*vx *= -r
	}
	if *y < 0 || *y > m.bounds.Height {
		*vy *= -r
	}
}

// Relax lerps position toward home and decays velocity.
func (m *Motion) Relax(p *components.GridParticle) {
	p.X = Lerp(p.X, p.HomeX, m.cfg.RelaxRate)
	p.Y = Lerp(p.Y, p.HomeY, m.cfg.RelaxRate)
	p.VX *= m.cfg.RelaxDamping
	p.VY *= m.cfg.RelaxDamping
}

// Reflect clamps the particle to the canvas and reverses the offending
// velocity component with restitution.
func (m *Motion) Reflect(p *components.GridParticle) {
	m.reflect(&p.X, &p.Y, &p.VX, &p.VY)
}

func (m *Motion) reflect(x, y, vx, vy *float64) {
	r := m.cfg.Restitution
	if *x < 0 {
		*x = 0
		*vx *= -r
	} else if *x > m.bounds.Width {
		*x = m.bounds.Width
		*vx *= -r
	}
	if *y < 0 {
		*y = 0
		*vy *= -r
	} else if *y > m.bounds.Height {
		*y = m.bounds.Height
		*vy *= -r
	}
}

// Impulse adds a uniform random velocity in [-mag, mag) on both axes.
func (m *Motion) Impulse(p *components.GridParticle, mag float64) {
	p.VX += randRange(m.rng, -mag, mag)
	p.VY += randRange(m.rng, -mag, mag)
}

// Burst replaces the velocity with a uniform random one in [-mag, mag).
func (m *Motion) Burst(mag float64) (vx, vy float64) {
	return randRange(m.rng, -mag, mag), randRange(m.rng, -mag, mag)
}
