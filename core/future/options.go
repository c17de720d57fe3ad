// File: core/future/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package future

import "github.com/momentics/hioload-futures/api"

// Option configures a cell at construction time.
type Option func(*Future)

// WithSink routes errors that arrive without an errback to sink instead of
// the default no-op route. A nil sink is ignored.
func WithSink(sink api.Sink) Option {
	return func(f *Future) {
		if sink != nil {
			f.sink = sink
		}
	}
}
