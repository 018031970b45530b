package game

import (
	"log/slog"

	"github.com/pthm-cable/quietmice/audio"
	"github.com/pthm-cable/quietmice/telemetry"
)

// simulationStep advances the scene by one tick.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseScheduler)
	g.runScript()
	g.scheduler.Run(g.simTime())
	g.flow.Advance()

	g.perfCollector.StartPhase(telemetry.PhaseAudio)
	g.updateAudio()

	g.transitionTicks++

	g.perfCollector.StartPhase(telemetry.PhaseGrid)
	behavior := BehaviorFor(g.state, g.transitionTicks, g.cfg.Formation.WanderTicks)
	g.motion.ApplyAll(behavior, g.particles)

	if g.state == StateRatsWalk {
		g.perfCollector.StartPhase(telemetry.PhaseSpawn)
		g.spawnFigures()

		g.perfCollector.StartPhase(telemetry.PhaseFigures)
		g.updateFigures()
		if g.drained() {
			g.transition(StateDisperse)
		}
	}

	if g.state == StateRatsWalk || g.state == StateDisperse {
		g.perfCollector.StartPhase(telemetry.PhaseDebris)
		g.updateDebris()
	}

	if g.state == StateDisperse {
		g.perfCollector.StartPhase(telemetry.PhaseFigures)
		g.updateFigures()
	}

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// runScript fires the headless cues due before this tick.
func (g *Game) runScript() {
	if len(g.script) == 0 {
		return
	}
	due, rest := g.script.Due(g.tick)
	g.script = rest
	for _, c := range due {
		if !g.Fire(c.Trigger) {
			slog.Info("scripted trigger ignored", "tick", g.tick, "trigger", c.Trigger.String(), "state", g.state.String())
		}
	}
}

// updateAudio maps the scene to tone targets and sends them to the bank.
func (g *Game) updateAudio() {
	plan := g.mapper.Map(audio.Input{
		Scene:           g.state.audioScene(),
		TransitionTicks: g.transitionTicks,
		Spawned:         g.spawner.Spawned(),
		Budget:          g.spawner.Budget(),
		Frame:           g.tick,
		MS:              g.simMS(),
		ClimaxFired:     g.climaxFired,
	})
	g.applyPlan(plan)
	if plan.Climax {
		g.startClimax()
	}
}

// applyPlan sends a plan to the bank and remembers the gains it targeted.
func (g *Game) applyPlan(plan audio.Plan) {
	if plan.Skip {
		return
	}
	audio.Apply(g.bank, plan)
	for i, t := range plan.Targets {
		g.gains[i] = t.Gain
	}
}
