package game

import "sort"

// Task is a deferred action run by the tick loop once the simulation clock
// reaches At (seconds).
type Task struct {
	At   float64
	Name string
	Fn   func()
}

// Scheduler is a queue of deferred tasks. It is only touched from the tick,
// so tasks run on the simulation goroutine.
type Scheduler struct {
	tasks []Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues fn to run at the given simulation time.
func (s *Scheduler) Schedule(at float64, name string, fn func()) {
	s.tasks = append(s.tasks, Task{At: at, Name: name, Fn: fn})
	// Stable so tasks due at the same time keep scheduling order
	sort.SliceStable(s.tasks, func(i, j int) bool { return s.tasks[i].At < s.tasks[j].At })
}

// Run fires every task due at now, in due order, and returns how many ran.
// Each task fires once.
func (s *Scheduler) Run(now float64) int {
	n := 0
	for n < len(s.tasks) && s.tasks[n].At <= now {
		n++
	}
	if n == 0 {
		return 0
	}
	due := make([]Task, n)
	copy(due, s.tasks[:n])
	s.tasks = s.tasks[n:]

	// Tasks may schedule more tasks, so the queue is settled before running
	for _, t := range due {
		if t.Fn != nil {
			t.Fn()
		}
	}
	return n
}

// Pending returns the names of queued tasks in due order.
func (s *Scheduler) Pending() []string {
	names := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		names[i] = t.Name
	}
	return names
}

// Cancel drops every queued task with the given name and returns how many.
func (s *Scheduler) Cancel(name string) int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	n := len(s.tasks) - len(kept)
	s.tasks = kept
	return n
}
