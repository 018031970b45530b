package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Scene at window end
	State           string  `csv:"state"`
	TransitionTicks int     `csv:"transition_ticks"`
	Tension         float64 `csv:"tension"`

	// Populations at window end
	Spawned      int `csv:"spawned"`
	LiveFigures  int `csv:"figures"`
	Debris       int `csv:"debris"`
	ActiveGrid   int `csv:"active_grid"`
	InactiveGrid int `csv:"inactive_grid"`

	// Events during window
	Transitions   int `csv:"transitions"`
	Batches       int `csv:"batches"`
	FiguresExited int `csv:"figures_exited"`
	DebrisFreed   int `csv:"debris_freed"`
	DebrisSwept   int `csv:"debris_swept"`

	// Mean ticks in flight of debris swept during the window
	DebrisSweptAge float64 `csv:"debris_swept_age"`

	// Grid particle speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`

	// Tone gains last issued, C4 E4 G4 B4 D5
	GainC4 float64 `csv:"gain_c4"`
	GainE4 float64 `csv:"gain_e4"`
	GainG4 float64 `csv:"gain_g4"`
	GainB4 float64 `csv:"gain_b4"`
	GainD5 float64 `csv:"gain_d5"`
}

// Percentile returns the empirical p-th quantile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeSpeedStats calculates mean, std, median, p90 and max of values.
func ComputeSpeedStats(values []float64) (mean, std, p50, p90, peak float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	peak = floats.Max(sorted)

	return mean, std, p50, p90, peak
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("state", s.State),
		slog.Float64("tension", s.Tension),
		slog.Int("spawned", s.Spawned),
		slog.Int("figures", s.LiveFigures),
		slog.Int("debris", s.Debris),
		slog.Int("active_grid", s.ActiveGrid),
		slog.Int("transitions", s.Transitions),
		slog.Int("batches", s.Batches),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"state", s.State,
		"transition_ticks", s.TransitionTicks,
		"tension", s.Tension,
		"spawned", s.Spawned,
		"figures", s.LiveFigures,
		"debris", s.Debris,
		"active_grid", s.ActiveGrid,
		"transitions", s.Transitions,
		"batches", s.Batches,
		"figures_exited", s.FiguresExited,
		"debris_freed", s.DebrisFreed,
		"debris_swept", s.DebrisSwept,
		"debris_swept_age", s.DebrisSweptAge,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"speed_max", s.SpeedMax,
		"gain_c4", s.GainC4,
		"gain_e4", s.GainE4,
		"gain_g4", s.GainG4,
		"gain_b4", s.GainB4,
		"gain_d5", s.GainD5,
	)
}
