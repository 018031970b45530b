package game

import (
	"log/slog"

	"github.com/pthm-cable/quietmice/audio"
	"github.com/pthm-cable/quietmice/components"
	"github.com/pthm-cable/quietmice/telemetry"
)

const climaxFadeTask = "climax-fade"

// Fire applies trigger t. It returns false, changing nothing, when t is not
// valid in the current state.
func (g *Game) Fire(t Trigger) bool {
	to, ok := Next(g.state, t)
	if !ok {
		slog.Debug("trigger ignored", "trigger", t.String(), "state", g.state.String())
		return false
	}
	g.transition(to)
	return true
}

// Advance moves GRID to FLOAT or DISPERSE to GRID.
func (g *Game) Advance() bool { return g.Fire(TriggerAdvance) }

// FormCat moves FLOAT to CAT_FORMATION.
func (g *Game) FormCat() bool { return g.Fire(TriggerFormCat) }

// WalkRats moves CAT_FORMATION to RATS_WALK.
func (g *Game) WalkRats() bool { return g.Fire(TriggerWalkRats) }

// Scatter forces DISPERSE from any state.
func (g *Game) Scatter() bool { return g.Fire(TriggerScatter) }

// Reset forces GRID from any state.
func (g *Game) Reset() bool { return g.Fire(TriggerReset) }

// transition runs the entry action of to and records the change.
func (g *Game) transition(to State) {
	from := g.state
	switch to {
	case StateGrid:
		g.enterGrid()
	case StateFloat:
		g.enterFloat()
	case StateCatFormation:
		g.enterCatFormation()
	case StateRatsWalk:
		g.enterRatsWalk()
	case StateDisperse:
		g.enterDisperse()
	}

	slog.Info("transition", "from", from.String(), "to", to.String(), "tick", g.tick)
	g.collector.RecordTransition()
	g.writeEvent(telemetry.NewTransitionEvent(g.tick, from.String(), to.String()))
}

// enterGrid restores the mosaic and clears everything the other scenes built.
func (g *Game) enterGrid() {
	g.state = StateGrid
	g.transitionTicks = 0
	g.climaxFired = false
	g.clearFigures()
	g.clearDebris()
	g.spawner.Reset(g.simMS())

	for i := range g.particles {
		p := &g.particles[i]
		p.Active = true
		p.VX, p.VY = 0, 0
		p.SetTarget(p.HomeX, p.HomeY)
	}
}

// enterFloat nudges every particle off its cell.
func (g *Game) enterFloat() {
	g.state = StateFloat
	g.transitionTicks = 0
	for i := range g.particles {
		g.motion.Impulse(&g.particles[i], g.cfg.Formation.FloatImpulse)
	}
}

// enterCatFormation hands the silhouette points to a random permutation of
// particles. Particles left over become inactive and target where they are.
func (g *Game) enterCatFormation() {
	g.state = StateCatFormation
	g.transitionTicks = 0

	order := make([]int, len(g.particles))
	for i := range order {
		order[i] = i
	}
	// Fisher-Yates
	for i := len(order) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	for i, idx := range order {
		p := &g.particles[idx]
		if i < len(g.catPoints) {
			p.SetTarget(g.catPoints[i].X, g.catPoints[i].Y)
			p.Active = true
		} else {
			p.Active = false
			p.SetTarget(p.X, p.Y)
		}
	}
}

// enterRatsWalk freezes the silhouette and arms the spawner.
func (g *Game) enterRatsWalk() {
	g.state = StateRatsWalk
	g.transitionTicks = 0
	g.clearFigures()
	g.clearDebris()
	g.spawner.Reset(g.simMS())

	for i := range g.particles {
		p := &g.particles[i]
		if !p.Active {
			continue
		}
		p.VX, p.VY = 0, 0
		p.X, p.Y = p.TX, p.TY
	}
}

// enterDisperse explodes the grid, every live figure and existing debris.
func (g *Game) enterDisperse() {
	g.state = StateDisperse
	g.transitionTicks = 0
	g.climaxFired = false

	for i := range g.particles {
		p := &g.particles[i]
		p.Active = true
		p.VX, p.VY = g.motion.Burst(g.cfg.Formation.ScatterImpulse)
	}

	// Existing debris gets a fresh burst before new debris joins it
	query := g.debrisFilter.Query()
	for query.Next() {
		_, vel, _ := query.Get()
		*vel = g.debrisMotion.Burst()
	}

	figures, freed := g.explodeFigures()
	if figures > 0 {
		g.collector.RecordDebrisFreed(freed)
		g.writeEvent(telemetry.NewExplodeEvent(g.tick, figures, freed))
	}
}

// explodeFigures turns every figure's body into debris and removes the
// figures. It returns the number of figures and debris points involved.
func (g *Game) explodeFigures() (figures, freed int) {
	var points []components.Position
	query := g.figureFilter.Query()
	for query.Next() {
		pos, fig := query.Get()
		points = append(points, g.animator.Explode(*pos, fig)...)
		figures++
	}
	g.clearFigures()

	for _, p := range points {
		pos := p
		vel := g.debrisMotion.Burst()
		g.debrisMap.NewEntity(&pos, &vel, &components.Debris{})
	}
	g.numDebris += len(points)
	return figures, len(points)
}

// startClimax issues the disperse attack and schedules the fade-out.
func (g *Game) startClimax() {
	g.climaxFired = true
	hold := g.cfg.Audio.ClimaxHoldSec
	// A fade left over from an earlier disperse would cut this hold short
	g.scheduler.Cancel(climaxFadeTask)
	g.scheduler.Schedule(g.simTime()+hold, climaxFadeTask, g.fadeOut)
	g.writeEvent(telemetry.Event{Tick: g.tick, Type: telemetry.EventClimax, Count: int(audio.ToneCount)})
}

// fadeOut silences every tone. It does nothing once the scene has left
// DISPERSE, since the new state already owns the gains.
func (g *Game) fadeOut() {
	if g.state != StateDisperse {
		slog.Debug("climax fade skipped", "state", g.state.String())
		return
	}
	g.applyPlan(g.mapper.Fade(g.cfg.Audio.ClimaxFadeSec))
	g.writeEvent(telemetry.Event{Tick: g.tick, Type: telemetry.EventFade})
}
