// Package api
// Author: momentics <momentics@gmail.com>
//
// Injectable diagnostic sink for errors delivered without an errback.
// Keeps the cell free of hidden I/O: the default route is a no-op, and
// anything louder is configured explicitly at construction time.

package api

import "log"

// Sink receives errors that reached a cell whose consumer supplied no
// explicit errback. Implementations must not panic and must not call back
// into the reporting cell.
type Sink interface {
	// Unhandled records an error that had no errback to go to.
	Unhandled(err error)
}

// NopSink discards unhandled errors. It is the default sink.
type NopSink struct{}

// Unhandled implements Sink.
func (NopSink) Unhandled(error) {}

// LogSink writes unhandled errors to the standard logger.
type LogSink struct{}

// Unhandled implements Sink.
func (LogSink) Unhandled(err error) {
	log.Printf("error delivered with no errback attached: %v", err)
}
