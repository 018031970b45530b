package systems

import (
	"math/rand"

	"github.com/pthm-cable/quietmice/config"
)

// Spawner decides when walking figures enter the scene.
//
// A batch is considered only while the live count leaves headroom below
// capacity and the scheduled batch time has passed. The delay before the next
// batch shrinks linearly as the budget is consumed, so admissions accelerate.
type Spawner struct {
	cfg config.SpawnerConfig

	spawned int     // figures admitted since the last Reset
	nextAt  float64 // sim ms when the next batch may be considered
}

// NewSpawner creates a spawner with nothing admitted.
func NewSpawner(cfg config.SpawnerConfig) *Spawner {
	return &Spawner{cfg: cfg}
}

// Reset clears admission history and allows a batch immediately at now.
func (s *Spawner) Reset(now float64) {
	s.spawned = 0
	s.nextAt = now
}

// Plan returns how many figures to admit this tick given the live count.
// A positive result is recorded as spawned and reschedules the next batch.
func (s *Spawner) Plan(now float64, live int, rng *rand.Rand) int {
	if s.Done() {
		return 0
	}
	if live > s.cfg.Capacity-s.cfg.Headroom || now <= s.nextAt {
		return 0
	}

	n := s.cfg.BatchMin + rng.Intn(s.cfg.BatchMax-s.cfg.BatchMin)
	if slots := s.cfg.Capacity - live; n > slots {
		n = slots
	}
	if remaining := s.Remaining(); n > remaining {
		n = remaining
	}
	if n <= 0 {
		return 0
	}

	s.spawned += n
	s.nextAt = now + s.Delay()
	return n
}

// Offset returns the horizontal stagger for the i-th figure of a batch.
func (s *Spawner) Offset(i int) float64 {
	return float64(i) * s.cfg.Spacing
}

// Delay is the wait before the next batch at the current progress.
func (s *Spawner) Delay() float64 {
	return MapRange(float64(s.spawned), 0, float64(s.cfg.Budget), s.cfg.DelayStartMS, s.cfg.DelayEndMS)
}

// Spawned returns the number of figures admitted since Reset.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Budget returns the total number of figures per walk.
func (s *Spawner) Budget() int {
	return s.cfg.Budget
}

// Remaining returns how many figures may still be admitted.
func (s *Spawner) Remaining() int {
	return s.cfg.Budget - s.spawned
}

// Done reports whether the whole budget has been admitted.
func (s *Spawner) Done() bool {
	return s.spawned >= s.cfg.Budget
}

// Progress is spawned/budget clamped to [0, 1]. This is the tension metric.
func (s *Spawner) Progress() float64 {
	if s.cfg.Budget <= 0 {
		return 1
	}
	return Clamp01(float64(s.spawned) / float64(s.cfg.Budget))
}

// NextAt returns the sim time in ms after which the next batch may be admitted.
func (s *Spawner) NextAt() float64 {
	return s.nextAt
}
