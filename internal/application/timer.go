package application

import (
	"fmt"
	"time"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports"
)

const hundredth = 10 * time.Millisecond

// Timer is a stopwatch driven by frame ticks. It measures the real delta
// between ticks instead of assuming a fixed frame rate.
type Timer struct {
	clock  ports.Clock
	onTick func(formatted string)

	running  bool
	anchor   time.Time
	anchored bool

	minutes    int
	seconds    int
	hundredths int
	remainder  time.Duration
}

func NewTimer(clock ports.Clock, onTick func(formatted string)) *Timer {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Timer{clock: clock, onTick: onTick}
}

func (t *Timer) Start() {
	if t.running {
		return
	}

	t.anchor = t.clock.Now()
	t.anchored = true
	t.running = true
}

// Stop clears the anchor so the next Start does not count the paused span.
func (t *Timer) Stop() {
	t.running = false
	t.anchored = false
	t.anchor = time.Time{}
}

func (t *Timer) Reset() {
	t.minutes = 0
	t.seconds = 0
	t.hundredths = 0
	t.remainder = 0
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) Tick(now time.Time) {
	if !t.running {
		return
	}
	if !t.anchored {
		t.anchor = now
		t.anchored = true
		return
	}

	delta := now.Sub(t.anchor)
	if delta < 0 {
		delta = 0
	}
	t.add(delta)
	t.anchor = now

	if t.onTick != nil {
		t.onTick(t.Format())
	}
}

func (t *Timer) add(delta time.Duration) {
	total := t.remainder + delta
	t.remainder = total % hundredth
	t.hundredths += int(total / hundredth)

	t.seconds += t.hundredths / 100
	t.hundredths %= 100

	t.minutes += t.seconds / 60
	t.seconds %= 60
}

func (t *Timer) Format() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.minutes, t.seconds, t.hundredths)
}

func (t *Timer) Snapshot() domain.TimeSnapshot {
	return domain.TimeSnapshot{Minutes: t.minutes, Seconds: t.seconds, Hundredths: t.hundredths}
}
