// File: api/choke.go
// Author: momentics <momentics@gmail.com>
//
// End-of-stream sentinel delivered through the error channel on a
// non-silent close. A ChokeEvent is a payload, not a defect: it tells the
// consumer that no further values will arrive on this cell.

package api

import "errors"

// ChokeEvent signals that the producer has ended the stream.
type ChokeEvent struct{}

// Error implements the error interface.
func (ChokeEvent) Error() string {
	return "choke event: no further values will arrive"
}

// IsChoke reports whether err is (or wraps) a ChokeEvent.
func IsChoke(err error) bool {
	var choke ChokeEvent
	return errors.As(err, &choke)
}
