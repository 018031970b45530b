package game

import (
	"log/slog"

	"github.com/pthm-cable/quietmice/telemetry"
)

// writeEvent stamps the run ID on e and sends it to the event log.
func (g *Game) writeEvent(e telemetry.Event) {
	e.RunID = g.runID
	if g.logStats {
		e.LogEvent()
	}
	if g.outputManager != nil {
		if err := g.outputManager.WriteEvent(e); err != nil {
			slog.Error("failed to write event", "error", err)
		}
	}
}

// flushTelemetry closes the stats window once it has run its length.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.snapshot())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// snapshot samples the scene for the window that is closing.
func (g *Game) snapshot() telemetry.Snapshot {
	s := telemetry.Snapshot{
		Tick:            g.tick,
		State:           g.state.String(),
		TransitionTicks: g.transitionTicks,
		Tension:         g.spawner.Progress(),
		Spawned:         g.spawner.Spawned(),
		LiveFigures:     g.numFigures,
		Debris:          g.numDebris,
		Speeds:          make([]float64, 0, len(g.particles)),
	}
	for i := range g.particles {
		p := &g.particles[i]
		if p.Active {
			s.ActiveGrid++
		} else {
			s.InactiveGrid++
		}
		s.Speeds = append(s.Speeds, p.Speed())
	}
	copy(s.Gains[:], g.gains[:])
	return s
}
