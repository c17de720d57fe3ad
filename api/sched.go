// Package api
// Author: momentics
//
// Scheduler contract for timed and next-turn callback execution. The
// callback cell does not depend on any concrete loop; any timer or
// reactor-backed scheduler satisfying this contract can drive deferred
// work composed with it.

package api

import "time"

// Scheduler abstracts deferred callback execution for event-driven loops.
// All callbacks run synchronously on the scheduler's logical thread of
// control, in scheduling order.
type Scheduler interface {
	// Schedule registers fn to run once delay has elapsed.
	Schedule(delay time.Duration, fn func()) (Cancelable, error)

	// NextTick registers fn to run on the next scheduling turn,
	// before any timed callback due at the same moment.
	NextTick(fn func()) (Cancelable, error)

	// Now returns the scheduler's monotonic time in nanoseconds.
	Now() int64
}

// Cancelable is any scheduled operation that may be aborted.
type Cancelable interface {
	// Cancel attempts to abort the operation.
	Cancel() error
	// Done signals completion or cancellation.
	Done() <-chan struct{}
	// Err returns nil after normal completion, ErrCanceled after Cancel.
	Err() error
}
