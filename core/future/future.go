// File: core/future/future.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package future

import (
	"github.com/momentics/hioload-futures/api"
)

// Future is a rebindable callback cell. A producer calls Trigger/Error
// zero or more times and optionally Close; a consumer attaches handlers
// with Bind and may Unbind and rebind for reuse. Values and errors
// produced while no handler is attached are buffered FIFO and drained the
// moment a handler becomes available.
//
// Lifecycle: StateUnbound -> StateBound (Bind), any -> StateUnbound
// (Unbind), StateUnbound/StateBound -> StateClosed (Close). Bind on a
// closed cell flushes the backlog but does not reopen live delivery.
//
// The cell never catches anything raised by a handler; such failures
// propagate to the caller of Bind, Trigger or Error.
type Future struct {
	state State

	callback api.Callback
	errback  api.Errback

	pendingValues *pendingQueue
	pendingErrors *pendingQueue

	sink api.Sink
}

// New creates a cell in StateUnbound with empty backlogs.
func New(opts ...Option) *Future {
	f := &Future{
		state:         StateUnbound,
		pendingValues: newPendingQueue(),
		pendingErrors: newPendingQueue(),
		sink:          api.NopSink{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Bind attaches cb and eb to the cell and immediately drains any backlog
// into them: pending values first, front-to-back, then pending errors.
// A nil eb selects the default errback, which reports to the cell's
// diagnostic sink instead of dropping the error.
//
// Binding while already StateBound fails with an invalid-state error:
// double bind is prohibited by design. Binding a StateClosed cell only
// flushes the backlog; the handlers are not retained and the state stays
// StateClosed, so live delivery is not reopened.
func (f *Future) Bind(cb api.Callback, eb api.Errback) error {
	if f.state == StateBound {
		return api.NewInvalidStateError("bind", f.state.String())
	}
	if eb == nil {
		eb = f.defaultErrback
	}

	f.pendingValues.drain(func(v any) { cb(v) })
	f.pendingErrors.drain(func(v any) { eb(v.(error)) })

	if f.state == StateUnbound {
		f.callback = cb
		f.errback = eb
		f.state = StateBound
	}
	return nil
}

// Unbind drops any attached handlers and moves the cell to StateUnbound.
// The pending backlogs are untouched. Unbind is valid in every state,
// including StateClosed: unbinding a closed cell resets it, after which it
// accepts production and live rebinding again.
func (f *Future) Unbind() {
	f.callback = nil
	f.errback = nil
	f.state = StateUnbound
}

// Close ends the stream and moves the cell to StateClosed. Unless silent,
// a ChokeEvent is routed through the error path first — to the live
// errback if one is attached, otherwise into the pending error backlog —
// so a consumer learns that no further values will arrive. Closing an
// already closed cell is a no-op.
func (f *Future) Close(silent bool) {
	if f.state == StateClosed {
		return
	}
	if !silent {
		if f.errback != nil {
			f.errback(api.ChokeEvent{})
		} else {
			f.pendingErrors.push(api.ChokeEvent{})
		}
	}
	f.callback = nil
	f.errback = nil
	f.state = StateClosed
}

// Trigger delivers value to the live callback synchronously, or appends it
// to the pending backlog when no callback is attached. Triggering a
// StateClosed cell fails with an invalid-state error.
func (f *Future) Trigger(value any) error {
	if f.state == StateClosed {
		return api.NewInvalidStateError("trigger", f.state.String())
	}
	if f.callback == nil {
		f.pendingValues.push(value)
		return nil
	}
	f.callback(value)
	return nil
}

// Error delivers err through the error path, symmetric to Trigger: the
// live errback if attached, the pending error backlog otherwise. Erroring
// a StateClosed cell fails with an invalid-state error.
func (f *Future) Error(err error) error {
	if f.state == StateClosed {
		return api.NewInvalidStateError("error", f.state.String())
	}
	if f.errback == nil {
		f.pendingErrors.push(err)
		return nil
	}
	f.errback(err)
	return nil
}

// State returns the current lifecycle phase.
func (f *Future) State() State {
	return f.state
}

// PendingValues returns the number of buffered values awaiting a callback.
func (f *Future) PendingValues() int {
	return f.pendingValues.len()
}

// PendingErrors returns the number of buffered errors awaiting an errback.
func (f *Future) PendingErrors() int {
	return f.pendingErrors.len()
}

// defaultErrback is installed when Bind receives a nil errback. It reports
// through the configured sink so errors are never silently lost.
func (f *Future) defaultErrback(err error) {
	f.sink.Unhandled(err)
}
