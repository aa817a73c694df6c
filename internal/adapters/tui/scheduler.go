package tui

import (
	"time"

	"github.com/bnema/memory-match-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

type deferredMsg struct {
	id uint64
}

type task struct {
	id    uint64
	delay time.Duration
	fn    func()
}

// Scheduler queues deferred actions until the model turns them into
// tea.Tick commands, so every action runs inside Update.
type Scheduler struct {
	nextID  uint64
	queued  []*task
	pending map[uint64]*task
}

var _ ports.Scheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uint64]*task)}
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) ports.Cancel {
	s.nextID++
	t := &task{id: s.nextID, delay: d, fn: fn}
	s.queued = append(s.queued, t)
	s.pending[t.id] = t

	id := t.id
	return func() bool {
		if _, ok := s.pending[id]; !ok {
			return false
		}
		delete(s.pending, id)
		return true
	}
}

// Commands drains the queue. Canceled tasks still produce a tick; Run drops
// them when it fires.
func (s *Scheduler) Commands() []tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, t := range s.queued {
		id := t.id
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return deferredMsg{id: id}
		}))
	}
	s.queued = nil

	return cmds
}

// Run executes the action for id unless it was canceled or already ran.
func (s *Scheduler) Run(id uint64) bool {
	t, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	t.fn()
	return true
}

func (s *Scheduler) Pending() int {
	return len(s.pending)
}
