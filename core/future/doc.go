// File: core/future/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package future implements the rebindable callback cell at the heart of
// hioload-futures: a single-assignment delivery primitive that bridges a
// producer emitting values and errors at arbitrary times with a consumer
// that attaches handlers at arbitrary times, with FIFO buffering of
// anything produced before a handler exists.
//
// The cell is strictly single-threaded: no internal locking, no blocking
// operations. All calls into one cell must happen on the same logical
// thread of control, typically an event loop turn.
package future
