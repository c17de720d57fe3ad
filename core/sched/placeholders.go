// File: core/sched/placeholders.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Placeholder deferred-execution sources. Both expose the same bind
// contract as the callback cell but carry no implementation: binding
// always fails with a not-implemented error. Any timer or reactor-backed
// scheduler satisfying api.Scheduler can stand in for them via
// adapters.Deferred.

package sched

import (
	"time"

	"github.com/momentics/hioload-futures/api"
)

// Sleep would invoke its callback once the configured period has elapsed
// (in fact, not earlier).
type Sleep struct {
	timeout time.Duration
}

// NewSleep creates a Sleep placeholder for the given period.
func NewSleep(timeout time.Duration) *Sleep {
	return &Sleep{timeout: timeout}
}

// Timeout returns the configured period.
func (s *Sleep) Timeout() time.Duration {
	return s.timeout
}

// Bind fails unconditionally: Sleep is a contract placeholder.
func (s *Sleep) Bind(api.Callback, api.Errback) error {
	return api.NewNotImplementedError("sleep.bind")
}

// NextTick would invoke its callback on the next scheduling turn. Useful
// for pushing heavy work off the current turn to keep a loop responsive.
type NextTick struct{}

// NewNextTick creates a NextTick placeholder.
func NewNextTick() *NextTick {
	return &NextTick{}
}

// Bind fails unconditionally: NextTick is a contract placeholder.
func (n *NextTick) Bind(api.Callback, api.Errback) error {
	return api.NewNotImplementedError("nexttick.bind")
}

var (
	_ api.Binder = (*Sleep)(nil)
	_ api.Binder = (*NextTick)(nil)
)
