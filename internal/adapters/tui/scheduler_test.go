package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsQueuedActionOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.AfterFunc(time.Millisecond, func() { calls++ })

	cmds := s.Commands()
	require.Len(t, cmds, 1)
	assert.Empty(t, s.Commands())

	msg, ok := cmds[0]().(deferredMsg)
	require.True(t, ok)

	assert.True(t, s.Run(msg.id))
	assert.False(t, s.Run(msg.id))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCancelDropsAction(t *testing.T) {
	s := NewScheduler()
	calls := 0
	cancel := s.AfterFunc(time.Millisecond, func() { calls++ })

	assert.True(t, cancel())
	assert.False(t, cancel())

	cmds := s.Commands()
	require.Len(t, cmds, 1)
	msg := cmds[0]().(deferredMsg)

	assert.False(t, s.Run(msg.id))
	assert.Equal(t, 0, calls)
}
