// File: core/future/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package future

// State is the lifecycle phase of a cell.
type State int

const (
	// StateUnbound is the initial state: no live handlers, production
	// accumulates in the pending backlogs.
	StateUnbound State = iota
	// StateBound means live handlers are attached and production is
	// delivered synchronously.
	StateBound
	// StateClosed means the producer has ended the stream. Production is
	// rejected; a later Bind may still flush the backlog.
	StateClosed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBound:
		return "bound"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
