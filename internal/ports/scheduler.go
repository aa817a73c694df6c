package ports

import "time"

// Cancel stops a scheduled action. It reports whether the action was still
// pending.
type Cancel func() bool

// Scheduler defers actions onto the caller's event loop. Actions must run on
// the same logical thread that drives the session.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}
