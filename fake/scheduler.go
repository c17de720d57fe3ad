// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"time"

	"github.com/momentics/hioload-futures/api"
)

// Job is one callback registered with a Scheduler fake.
type Job struct {
	Delay    time.Duration
	NextTick bool
	Fn       func()

	done     chan struct{}
	settled  bool
	canceled bool
}

// Cancel implements api.Cancelable.
func (j *Job) Cancel() error {
	if j.settled {
		return nil
	}
	j.settled = true
	j.canceled = true
	close(j.done)
	return nil
}

// Done implements api.Cancelable.
func (j *Job) Done() <-chan struct{} { return j.done }

// Err implements api.Cancelable.
func (j *Job) Err() error {
	if j.canceled {
		return api.ErrCanceled
	}
	return nil
}

// Scheduler is a recording api.Scheduler: it never fires on its own, the
// test inspects Jobs and calls Fire explicitly.
type Scheduler struct {
	Jobs []*Job

	// ScheduleErr, when set, is returned by Schedule/NextTick instead of
	// registering the job.
	ScheduleErr error

	now int64
}

// Schedule implements api.Scheduler.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) (api.Cancelable, error) {
	return s.register(&Job{Delay: delay, Fn: fn, done: make(chan struct{})})
}

// NextTick implements api.Scheduler.
func (s *Scheduler) NextTick(fn func()) (api.Cancelable, error) {
	return s.register(&Job{NextTick: true, Fn: fn, done: make(chan struct{})})
}

// Now implements api.Scheduler.
func (s *Scheduler) Now() int64 { return s.now }

// AdvanceNow moves the fake clock without firing anything.
func (s *Scheduler) AdvanceNow(d time.Duration) { s.now += d.Nanoseconds() }

// Fire runs the i-th registered job unless it was canceled.
func (s *Scheduler) Fire(i int) {
	j := s.Jobs[i]
	if j.settled {
		return
	}
	j.settled = true
	close(j.done)
	j.Fn()
}

// FireAll runs every registered, not yet settled job in order.
func (s *Scheduler) FireAll() {
	for i := range s.Jobs {
		s.Fire(i)
	}
}

func (s *Scheduler) register(j *Job) (api.Cancelable, error) {
	if s.ScheduleErr != nil {
		return nil, s.ScheduleErr
	}
	s.Jobs = append(s.Jobs, j)
	return j, nil
}

var _ api.Scheduler = (*Scheduler)(nil)
