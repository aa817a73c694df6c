// Package manual provides a clock and scheduler that only move when told to.
// Headless runs and tests use them to drive a session deterministically.
package manual

import (
	"sort"
	"time"

	"github.com/bnema/memory-match-cli/internal/ports"
)

type Clock struct {
	now time.Time
}

var _ ports.Clock = (*Clock)(nil)

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}

type task struct {
	due       time.Time
	seq       int
	fn        func()
	cancelled bool
	fired     bool
}

type Scheduler struct {
	clock *Clock
	seq   int
	tasks []*task
}

var _ ports.Scheduler = (*Scheduler)(nil)

func NewScheduler(clock *Clock) *Scheduler {
	if clock == nil {
		clock = NewClock(time.Time{})
	}

	return &Scheduler{clock: clock}
}

func (s *Scheduler) Clock() *Clock {
	return s.clock
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) ports.Cancel {
	s.seq++
	t := &task{due: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)

	return func() bool {
		if t.fired || t.cancelled {
			return false
		}
		t.cancelled = true
		return true
	}
}

// Advance moves the clock forward by d, running every action that falls due
// at its due time. It returns how many actions ran.
func (s *Scheduler) Advance(d time.Duration) int {
	target := s.clock.Now().Add(d)
	fired := 0

	for {
		next := s.nextDue()
		if next == nil || next.due.After(target) {
			break
		}
		if next.due.After(s.clock.Now()) {
			s.clock.now = next.due
		}
		next.fired = true
		next.fn()
		fired++
	}

	if target.After(s.clock.Now()) {
		s.clock.now = target
	}
	s.compact()

	return fired
}

// Flush runs every pending action, moving the clock to the last due time.
func (s *Scheduler) Flush() int {
	fired := 0
	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		if next.due.After(s.clock.Now()) {
			s.clock.now = next.due
		}
		next.fired = true
		next.fn()
		fired++
	}
	s.compact()

	return fired
}

func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDue() *task {
	live := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}

	sort.Slice(live, func(i, j int) bool {
		if live[i].due.Equal(live[j].due) {
			return live[i].seq < live[j].seq
		}
		return live[i].due.Before(live[j].due)
	})
	return live[0]
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
}
