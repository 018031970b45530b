package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/quietmice/telemetry"
)

// spawnFigures admits a batch of figures if the spawner allows one now.
func (g *Game) spawnFigures() {
	n := g.spawner.Plan(g.simMS(), g.numFigures, g.rng)
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		pos, fig := g.animator.Spawn(g.rng, g.spawner.Offset(i))
		g.figureMap.NewEntity(&pos, &fig)
	}
	g.numFigures += n

	g.collector.RecordBatch()
	slog.Debug("batch admitted", "size", n, "spawned", g.spawner.Spawned(), "next_ms", g.spawner.NextAt())
	g.writeEvent(telemetry.NewBatchEvent(g.tick, n, g.spawner.Spawned()))
}

// updateFigures walks every figure and removes those past the right edge.
func (g *Game) updateFigures() {
	var exited []ecs.Entity

	query := g.figureFilter.Query()
	for query.Next() {
		pos, fig := query.Get()
		g.animator.Step(pos, fig)
		if g.animator.Exited(*pos) {
			exited = append(exited, query.Entity())
		}
	}

	// Remove after the query closes
	for _, e := range exited {
		g.world.RemoveEntity(e)
		g.collector.RecordFigureExit()
	}
	g.numFigures -= len(exited)
}

// updateDebris moves debris with the rule for the current state and sweeps
// points that left the padded canvas.
func (g *Game) updateDebris() {
	var swept []ecs.Entity
	var ages []int
	chaotic := g.state == StateDisperse

	query := g.debrisFilter.Query()
	for query.Next() {
		pos, vel, d := query.Get()
		if chaotic {
			g.debrisMotion.Chaotic(pos, vel)
		} else {
			// Only reachable if debris outlives DISPERSE; entering RATS_WALK clears it
			g.debrisMotion.Drift(pos, vel)
		}
		d.Age++
		if g.debrisMotion.Escaped(*pos) {
			swept = append(swept, query.Entity())
			ages = append(ages, d.Age)
		}
	}

	for i, e := range swept {
		g.world.RemoveEntity(e)
		g.collector.RecordDebrisSwept(ages[i])
	}
	g.numDebris -= len(swept)
}

// clearFigures removes every walking figure.
func (g *Game) clearFigures() {
	var all []ecs.Entity
	query := g.figureFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		g.world.RemoveEntity(e)
	}
	g.numFigures = 0
}

// clearDebris removes every debris point.
func (g *Game) clearDebris() {
	var all []ecs.Entity
	query := g.debrisFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		g.world.RemoveEntity(e)
	}
	g.numDebris = 0
}

// WalkDrained reports whether a walk has fully played out: the whole budget
// admitted and nothing left on screen, debris included.
func WalkDrained(spawned, budget, figures, debris int) bool {
	return spawned >= budget && figures == 0 && debris == 0
}

func (g *Game) drained() bool {
	return WalkDrained(g.spawner.Spawned(), g.spawner.Budget(), g.numFigures, g.numDebris)
}
