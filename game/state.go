package game

import (
	"github.com/pthm-cable/quietmice/audio"
	"github.com/pthm-cable/quietmice/systems"
)

// State is the scene the animation is in. Exactly one is active at a time.
type State uint8

const (
	StateGrid State = iota
	StateFloat
	StateCatFormation
	StateRatsWalk
	StateDisperse
)

// States lists every state in sequence order.
var States = []State{StateGrid, StateFloat, StateCatFormation, StateRatsWalk, StateDisperse}

func (s State) String() string {
	switch s {
	case StateGrid:
		return "GRID"
	case StateFloat:
		return "FLOAT"
	case StateCatFormation:
		return "CAT_FORMATION"
	case StateRatsWalk:
		return "RATS_WALK"
	case StateDisperse:
		return "DISPERSE"
	default:
		return "UNKNOWN"
	}
}

// audioScene maps a state to the mapper's scene.
func (s State) audioScene() audio.Scene {
	switch s {
	case StateFloat:
		return audio.SceneFloat
	case StateCatFormation:
		return audio.SceneCatFormation
	case StateRatsWalk:
		return audio.SceneRatsWalk
	case StateDisperse:
		return audio.SceneDisperse
	default:
		return audio.SceneGrid
	}
}

// BehaviorFor returns the motion rule grid particles follow in state s after
// transitionTicks ticks in it. This is the only place the mapping lives.
func BehaviorFor(s State, transitionTicks, wanderTicks int) systems.Behavior {
	switch s {
	case StateFloat:
		return systems.BehaviorWander
	case StateCatFormation:
		if transitionTicks < wanderTicks {
			return systems.BehaviorWander
		}
		return systems.BehaviorSeek
	case StateRatsWalk:
		return systems.BehaviorJitter
	case StateDisperse:
		return systems.BehaviorChaotic
	default:
		return systems.BehaviorRelax
	}
}

// hidesInactive reports whether inactive grid particles are left undrawn.
func (s State) hidesInactive() bool {
	return s == StateCatFormation || s == StateRatsWalk
}

// Trigger is a discrete input event.
type Trigger uint8

const (
	TriggerAdvance Trigger = iota
	TriggerFormCat
	TriggerWalkRats
	TriggerScatter
	TriggerReset
)

// Triggers lists every trigger.
var Triggers = []Trigger{TriggerAdvance, TriggerFormCat, TriggerWalkRats, TriggerScatter, TriggerReset}

func (t Trigger) String() string {
	switch t {
	case TriggerAdvance:
		return "advance"
	case TriggerFormCat:
		return "cat"
	case TriggerWalkRats:
		return "rats"
	case TriggerScatter:
		return "scatter"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseTrigger resolves a trigger name as written by String.
func ParseTrigger(name string) (Trigger, bool) {
	for _, t := range Triggers {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Next returns the state trigger t leads to from s, and false when t is not
// valid in s.
func Next(s State, t Trigger) (State, bool) {
	switch t {
	case TriggerAdvance:
		switch s {
		case StateGrid:
			return StateFloat, true
		case StateDisperse:
			return StateGrid, true
		}
	case TriggerFormCat:
		if s == StateFloat {
			return StateCatFormation, true
		}
	case TriggerWalkRats:
		if s == StateCatFormation {
			return StateRatsWalk, true
		}
	case TriggerScatter:
		return StateDisperse, true
	case TriggerReset:
		return StateGrid, true
	}
	return s, false
}
