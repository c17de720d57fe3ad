// File: core/sched/ticker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ticker is a deterministic, single-threaded api.Scheduler. Time is
// virtual and only moves when the owner calls Advance or Tick; due
// callbacks run synchronously on the caller's thread of control, in
// scheduling order. No goroutines, no wall clock, no locking — the same
// single-thread discipline the callback cell requires.

package sched

import (
	"sort"
	"time"

	"github.com/momentics/hioload-futures/api"
)

// Ticker implements api.Scheduler over a virtual monotonic clock.
type Ticker struct {
	now int64
	seq uint64

	turns  []*job // next-turn jobs, FIFO
	timers []*job // timed jobs, sorted by (at, seq)
}

// NewTicker creates a Ticker with its clock at zero.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Schedule registers fn to run once delay has elapsed on the virtual
// clock. A negative delay is treated as zero.
func (t *Ticker) Schedule(delay time.Duration, fn func()) (api.Cancelable, error) {
	if fn == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "schedule: nil fn")
	}
	if delay < 0 {
		delay = 0
	}
	j := t.newJob(t.now+delay.Nanoseconds(), fn)
	t.timers = append(t.timers, j)
	sort.SliceStable(t.timers, func(a, b int) bool {
		if t.timers[a].at != t.timers[b].at {
			return t.timers[a].at < t.timers[b].at
		}
		return t.timers[a].seq < t.timers[b].seq
	})
	return j, nil
}

// NextTick registers fn to run on the next turn, before any timed job due
// at the same moment.
func (t *Ticker) NextTick(fn func()) (api.Cancelable, error) {
	if fn == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "nexttick: nil fn")
	}
	j := t.newJob(t.now, fn)
	t.turns = append(t.turns, j)
	return j, nil
}

// Now returns the virtual monotonic time in nanoseconds.
func (t *Ticker) Now() int64 {
	return t.now
}

// Pending returns the number of registered jobs not yet fired or canceled.
func (t *Ticker) Pending() int {
	n := 0
	for _, j := range t.turns {
		if !j.settled {
			n++
		}
	}
	for _, j := range t.timers {
		if !j.settled {
			n++
		}
	}
	return n
}

// Tick runs one scheduling turn at the current virtual time: first every
// next-turn job registered before this call, then every timed job that has
// come due. Jobs registered by a running callback wait for the next turn.
func (t *Ticker) Tick() {
	t.Advance(0)
}

// Advance moves the virtual clock forward by d and runs one turn.
func (t *Ticker) Advance(d time.Duration) {
	if d > 0 {
		t.now += d.Nanoseconds()
	}

	turns := t.turns
	t.turns = nil

	var due []*job
	remaining := t.timers[:0]
	for _, j := range t.timers {
		if j.at <= t.now {
			due = append(due, j)
		} else {
			remaining = append(remaining, j)
		}
	}
	t.timers = remaining

	for _, j := range turns {
		j.fire()
	}
	for _, j := range due {
		j.fire()
	}
}

func (t *Ticker) newJob(at int64, fn func()) *job {
	t.seq++
	return &job{
		at:   at,
		seq:  t.seq,
		fn:   fn,
		done: make(chan struct{}),
	}
}

// job is a scheduled callback and its api.Cancelable handle.
type job struct {
	at  int64
	seq uint64
	fn  func()

	done    chan struct{}
	settled bool
	err     error
}

func (j *job) fire() {
	if j.settled {
		return
	}
	j.settled = true
	close(j.done)
	j.fn()
}

// Cancel aborts the job. Canceling twice is a no-op; canceling a job that
// already fired fails with an invalid-state error.
func (j *job) Cancel() error {
	if j.settled {
		if j.err != nil {
			return nil
		}
		return api.NewInvalidStateError("cancel", "fired")
	}
	j.settled = true
	j.err = api.ErrCanceled
	close(j.done)
	return nil
}

// Done signals completion or cancellation.
func (j *job) Done() <-chan struct{} {
	return j.done
}

// Err returns nil after normal completion, api.ErrCanceled after Cancel.
func (j *job) Err() error {
	return j.err
}

var _ api.Scheduler = (*Ticker)(nil)
