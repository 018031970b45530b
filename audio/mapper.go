// Package audio maps scene state to parameters for a five-tone drone and
// plays them through a tone bank.
package audio

import (
	"math"

	"github.com/pthm-cable/quietmice/config"
)

// Tone indexes the fixed voices of the drone.
type Tone int

const (
	ToneC4 Tone = iota
	ToneE4
	ToneG4
	ToneB4
	ToneD5
	ToneCount
)

// Frequencies holds the base pitch of every tone in Hz.
var Frequencies = [ToneCount]float64{261.63, 329.63, 392.00, 493.88, 587.33}

func (t Tone) String() string {
	switch t {
	case ToneC4:
		return "C4"
	case ToneE4:
		return "E4"
	case ToneG4:
		return "G4"
	case ToneB4:
		return "B4"
	case ToneD5:
		return "D5"
	default:
		return "unknown"
	}
}

// Scene is the subset of scene state the mapper reacts to.
type Scene uint8

const (
	SceneGrid Scene = iota
	SceneFloat
	SceneCatFormation
	SceneRatsWalk
	SceneDisperse
)

// Per-scene gain tables, indexed by Tone.
var (
	floatGains  = [ToneCount]float64{0.15, 0, 0, 0, 0}
	formGains   = [ToneCount]float64{0.2, 0.22, 0.2, 0, 0}
	formRamps   = [ToneCount]float64{1.0, 1.5, 2.0, 0.5, 0.5}
	walkGains   = [ToneCount]float64{0.2, 0.22, 0.2, 0.25, 0.23}
	climaxGains = [ToneCount]float64{0.5, 0.45, 0.42, 0.48, 0.4}
)

const (
	settleRamp = 0.5
	pulseRamp  = 0.05
	climaxRamp = 0.1

	// Tension above which D5 joins the walk.
	d5Gate = 0.05
)

// Input is everything the mapper reads on one tick.
type Input struct {
	Scene           Scene
	TransitionTicks int     // ticks since entering the current scene
	Spawned         int     // figures admitted this walk
	Budget          int     // figures per walk
	Frame           int     // global tick counter, drives the wobble
	MS              float64 // simulation clock in milliseconds, drives the pulse
	ClimaxFired     bool    // the disperse attack has already been issued
}

// Target is one tone's update. Freq of zero leaves the pitch unchanged.
type Target struct {
	Freq float64
	Gain float64
	Ramp float64 // seconds
}

// Plan is the mapper's output for one tick.
type Plan struct {
	Targets [ToneCount]Target
	// Skip is set when the tick issues no audio action at all.
	Skip bool
	// Climax is set on the disperse attack; the caller schedules the fade.
	Climax bool
}

// Mapper computes tone targets from scene state. It holds no mutable state.
type Mapper struct {
	cfg         config.AudioConfig
	wanderTicks int
}

// NewMapper creates a mapper. wanderTicks is the formation length the
// harmony fade-in is stretched over.
func NewMapper(cfg config.AudioConfig, wanderTicks int) *Mapper {
	return &Mapper{cfg: cfg, wanderTicks: wanderTicks}
}

// Map computes the plan for one tick.
func (m *Mapper) Map(in Input) Plan {
	var p Plan
	switch in.Scene {
	case SceneFloat:
		for i := range p.Targets {
			p.Targets[i] = Target{Gain: floatGains[i], Ramp: settleRamp}
		}
	case SceneCatFormation:
		prog := progress(in.TransitionTicks, m.wanderTicks)
		for i := range p.Targets {
			g := formGains[i]
			if Tone(i) == ToneE4 || Tone(i) == ToneG4 {
				g *= prog
			}
			p.Targets[i] = Target{Gain: g, Ramp: formRamps[i]}
		}
	case SceneRatsWalk:
		t := progress(in.Spawned, in.Budget)
		cres := Crescendo(t)
		pulse := Pulse(in.MS, PulseSpeed(t))
		for i := range p.Targets {
			g := walkGains[i] * cres
			switch Tone(i) {
			case ToneB4:
				if t <= 0 {
					g = 0
				}
				g *= pulse
			case ToneD5:
				if t <= d5Gate {
					g = 0
				}
				g *= pulse
			default:
				g *= 0.7 + 0.3*pulse
			}
			p.Targets[i] = Target{Gain: g, Ramp: pulseRamp}
		}
	case SceneDisperse:
		if in.ClimaxFired {
			return Plan{Skip: true}
		}
		for i := range p.Targets {
			p.Targets[i] = Target{Gain: climaxGains[i], Ramp: climaxRamp}
		}
		p.Climax = true
		return p
	default:
		for i := range p.Targets {
			p.Targets[i] = Target{Freq: Frequencies[i], Ramp: settleRamp}
		}
		return p
	}

	p.Targets[ToneC4].Freq = Frequencies[ToneC4] + m.Wobble(in.Frame)
	return p
}

// Fade returns a plan that ramps every tone to silence over sec seconds.
func (m *Mapper) Fade(sec float64) Plan {
	var p Plan
	for i := range p.Targets {
		p.Targets[i] = Target{Ramp: sec}
	}
	return p
}

// Wobble is the slow breathing offset applied to the root pitch.
func (m *Mapper) Wobble(frame int) float64 {
	return math.Sin(float64(frame)*m.cfg.WobbleRate) * m.cfg.WobbleDepth
}

// Crescendo maps tension in [0, 1] to a gain multiplier in [1.2, 2.2].
func Crescendo(t float64) float64 {
	return 1.2 + shape(t)
}

// PulseSpeed maps tension in [0, 1] to the pulse rate in radians per ms.
func PulseSpeed(t float64) float64 {
	return 0.02 + 0.15*shape(t)
}

// Pulse is the rhythmic gain modulator in [0, 1] at time ms.
func Pulse(ms, speed float64) float64 {
	return math.Pow(math.Sin(ms*speed)*0.5+0.5, 0.6)
}

func shape(t float64) float64 {
	return math.Pow(clamp01(t), 1.5)
}

func progress(n, of int) float64 {
	if of <= 0 {
		return 1
	}
	return clamp01(float64(n) / float64(of))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Apply issues a plan to the bank through smoothed calls only.
func Apply(bank ToneBank, p Plan) {
	if p.Skip {
		return
	}
	for i, t := range p.Targets {
		if t.Freq > 0 {
			bank.SetFrequency(Tone(i), t.Freq)
		}
		bank.RampGainTo(Tone(i), t.Gain, t.Ramp)
	}
}
