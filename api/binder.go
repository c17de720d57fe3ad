// File: api/binder.go
// Package api defines the bind contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Callback consumes a produced value.
type Callback func(value any)

// Errback consumes a produced error.
type Errback func(err error)

// Binder is the attach contract shared by the callback cell and by
// deferred-execution sources (Sleep, NextTick, scheduler adapters).
// Bind attaches handlers for subsequent (and, for buffering
// implementations, already pending) deliveries. A nil errback selects the
// implementation's default error route.
type Binder interface {
	Bind(cb Callback, eb Errback) error
}
