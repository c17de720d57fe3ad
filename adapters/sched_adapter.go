// File: adapters/sched_adapter.go
// Package adapters provides glue between api contracts and core implementations.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deferred adapts any api.Scheduler into the bind contract exposed by the
// Sleep and NextTick placeholders: attach a callback, have it invoked
// after a period or on the next scheduling turn. This is the substitution
// path the placeholders reserve — a timer or reactor-backed scheduler
// plugged in behind the same Bind call.

package adapters

import (
	"time"

	"github.com/momentics/hioload-futures/api"
)

// Deferred is a one-shot binder driven by a scheduler. Like the callback
// cell, it prohibits double bind; unlike the cell it has no backlog, since
// the value it delivers does not exist before the deadline.
type Deferred struct {
	sched    api.Scheduler
	delay    time.Duration
	nextTick bool

	bound  bool
	handle api.Cancelable
}

// NewDeferred creates a binder whose callback fires once delay has elapsed
// on sched's clock.
func NewDeferred(sched api.Scheduler, delay time.Duration) *Deferred {
	return &Deferred{sched: sched, delay: delay}
}

// NewNextTick creates a binder whose callback fires on sched's next turn.
func NewNextTick(sched api.Scheduler) *Deferred {
	return &Deferred{sched: sched, nextTick: true}
}

// Bind schedules cb for deferred invocation. The callback receives a nil
// value: a deferred turn carries no payload, only timing. Binding twice
// fails with an invalid-state error, mirroring the cell's double-bind
// rule. A nil eb is accepted; eb is reserved for delivery-path failures
// and is not invoked by the built-in schedulers.
func (d *Deferred) Bind(cb api.Callback, eb api.Errback) error {
	if d.bound {
		return api.NewInvalidStateError("bind", "bound")
	}
	if cb == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "bind: nil callback")
	}

	fire := func() { cb(nil) }

	var (
		handle api.Cancelable
		err    error
	)
	if d.nextTick {
		handle, err = d.sched.NextTick(fire)
	} else {
		handle, err = d.sched.Schedule(d.delay, fire)
	}
	if err != nil {
		if eb != nil {
			eb(err)
		}
		return err
	}

	d.bound = true
	d.handle = handle
	return nil
}

// Cancel aborts the scheduled invocation. Canceling before Bind fails with
// an invalid-state error.
func (d *Deferred) Cancel() error {
	if d.handle == nil {
		return api.NewInvalidStateError("cancel", "unbound")
	}
	return d.handle.Cancel()
}

var _ api.Binder = (*Deferred)(nil)
