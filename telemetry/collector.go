package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	runID               string
	windowDurationSec   float64
	windowDurationTicks int
	dt                  float64

	// Current window tracking
	windowStartTick int

	// Event counters for current window
	transitions   int
	batches       int
	figuresExited int
	debrisFreed   int
	debrisSwept   int
	sweptAgeSum   int
}

// Snapshot is the scene state sampled at window end.
type Snapshot struct {
	Tick            int
	State           string
	TransitionTicks int
	Tension         float64
	Spawned         int
	LiveFigures     int
	Debris          int
	ActiveGrid      int
	InactiveGrid    int
	Speeds          []float64 // grid particle speeds
	Gains           [5]float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(runID string, windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		runID:               runID,
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTransition records a scene change.
func (c *Collector) RecordTransition() {
	c.transitions++
}

// RecordBatch records a spawner admission.
func (c *Collector) RecordBatch() {
	c.batches++
}

// RecordFigureExit records a figure walking off the right edge.
func (c *Collector) RecordFigureExit() {
	c.figuresExited++
}

// RecordDebrisFreed records n body points freed by an explosion.
func (c *Collector) RecordDebrisFreed(n int) {
	c.debrisFreed += n
}

// RecordDebrisSwept records a debris point leaving the padded canvas after
// age ticks in flight.
func (c *Collector) RecordDebrisSwept(age int) {
	c.debrisSwept++
	c.sweptAgeSum += age
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(s Snapshot) WindowStats {
	mean, std, p50, p90, peak := ComputeSpeedStats(s.Speeds)

	var sweptAge float64
	if c.debrisSwept > 0 {
		sweptAge = float64(c.sweptAgeSum) / float64(c.debrisSwept)
	}

	stats := WindowStats{
		RunID:           c.runID,
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   s.Tick,
		SimTimeSec:      float64(s.Tick) * c.dt,

		State:           s.State,
		TransitionTicks: s.TransitionTicks,
		Tension:         s.Tension,

		Spawned:      s.Spawned,
		LiveFigures:  s.LiveFigures,
		Debris:       s.Debris,
		ActiveGrid:   s.ActiveGrid,
		InactiveGrid: s.InactiveGrid,

		Transitions:   c.transitions,
		Batches:       c.batches,
		FiguresExited: c.figuresExited,
		DebrisFreed:   c.debrisFreed,
		DebrisSwept:   c.debrisSwept,

		DebrisSweptAge: sweptAge,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP50:  p50,
		SpeedP90:  p90,
		SpeedMax:  peak,

		GainC4: s.Gains[0],
		GainE4: s.Gains[1],
		GainG4: s.Gains[2],
		GainB4: s.Gains[3],
		GainD5: s.Gains[4],
	}

	// Reset for next window
	c.windowStartTick = s.Tick
	c.transitions = 0
	c.batches = 0
	c.figuresExited = 0
	c.debrisFreed = 0
	c.debrisSwept = 0
	c.sweptAgeSum = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int {
	return c.windowDurationTicks
}

// RunID returns the identifier stamped on every record.
func (c *Collector) RunID() string {
	return c.runID
}
