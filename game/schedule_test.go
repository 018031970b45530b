package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsDueTasksOnce(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.Schedule(2, "b", func() { fired = append(fired, "b") })
	s.Schedule(1, "a", func() { fired = append(fired, "a") })
	s.Schedule(5, "c", func() { fired = append(fired, "c") })

	assert.Equal(t, 0, s.Run(0.5))
	assert.Equal(t, 2, s.Run(2))
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 0, s.Run(3))
	assert.Equal(t, []string{"c"}, s.Pending())

	s.Run(10)
	s.Run(10)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Empty(t, s.Pending())
}

func TestSchedulerSameTimeKeepsOrder(t *testing.T) {
	s := NewScheduler()
	var fired []int
	for i := 0; i < 5; i++ {
		s.Schedule(1, "t", func() { fired = append(fired, i) })
	}
	s.Run(1)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

func TestSchedulerTaskSchedulesTask(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.Schedule(1, "outer", func() {
		ran++
		s.Schedule(1, "inner", func() { ran++ })
	})

	s.Run(1)
	assert.Equal(t, 1, ran, "tasks added while running wait for the next Run")
	s.Run(1)
	assert.Equal(t, 2, ran)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.Schedule(1, "fade", func() { ran = true })
	s.Schedule(2, "other", func() {})
	s.Schedule(3, "fade", func() { ran = true })

	assert.Equal(t, 2, s.Cancel("fade"))
	assert.Equal(t, []string{"other"}, s.Pending())
	s.Run(5)
	assert.False(t, ran)
}
