package application

import (
	"testing"
	"time"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFormatsTruncatedHundredths(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()

	var readouts []string
	timer := NewTimer(clock, func(formatted string) { readouts = append(readouts, formatted) })
	timer.Start()
	timer.Tick(start.Add(12345 * time.Millisecond))

	assert.Equal(t, "00:12:34", timer.Format())
	assert.Equal(t, []string{"00:12:34"}, readouts)
	assert.Equal(t, domain.TimeSnapshot{Seconds: 12, Hundredths: 34}, timer.Snapshot())
}

func TestTimerCarriesHundredthsAndSeconds(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()

	timer := NewTimer(clock, nil)
	timer.Start()

	timer.Tick(start.Add(990 * time.Millisecond))
	assert.Equal(t, domain.TimeSnapshot{Hundredths: 99}, timer.Snapshot())

	timer.Tick(start.Add(time.Second))
	assert.Equal(t, domain.TimeSnapshot{Seconds: 1}, timer.Snapshot())

	timer.Tick(start.Add(60 * time.Second))
	assert.Equal(t, domain.TimeSnapshot{Minutes: 1}, timer.Snapshot())

	timer.Tick(start.Add(61*time.Minute + 5*time.Millisecond))
	assert.Equal(t, "61:00:00", timer.Format())
}

func TestTimerKeepsSubHundredthRemainder(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()

	timer := NewTimer(clock, nil)
	timer.Start()

	now := start
	for i := 0; i < 6; i++ {
		now = now.Add(16*time.Millisecond + 666*time.Microsecond)
		timer.Tick(now)
	}

	assert.Equal(t, domain.TimeSnapshot{Hundredths: 9}, timer.Snapshot())
}

func TestTimerStartIsIdempotent(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()

	timer := NewTimer(clock, nil)
	timer.Start()
	timer.Tick(start.Add(500 * time.Millisecond))
	timer.Start()
	timer.Tick(start.Add(time.Second))

	assert.True(t, timer.Running())
	assert.Equal(t, "00:01:00", timer.Format())
}

func TestTimerStopClearsAnchor(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	resume := start.Add(time.Hour)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(resume).Once()

	timer := NewTimer(clock, nil)
	timer.Start()
	timer.Tick(start.Add(2 * time.Second))
	timer.Stop()

	timer.Tick(start.Add(30 * time.Minute))
	assert.Equal(t, "00:02:00", timer.Format())

	timer.Start()
	timer.Tick(resume.Add(time.Second))
	assert.Equal(t, "00:03:00", timer.Format())
}

func TestTimerResetDoesNotStop(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()

	timer := NewTimer(clock, nil)
	timer.Start()
	timer.Tick(start.Add(3 * time.Second))
	timer.Reset()

	require.True(t, timer.Running())
	assert.Equal(t, "00:00:00", timer.Format())

	timer.Tick(start.Add(4 * time.Second))
	assert.Equal(t, "00:01:00", timer.Format())
}

func TestTimerIgnoresBackwardsClock(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()

	timer := NewTimer(clock, nil)
	timer.Start()
	timer.Tick(start.Add(-time.Second))
	timer.Tick(start)

	assert.Equal(t, "00:01:00", timer.Format())
}
