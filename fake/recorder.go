// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-futures/api"

// Recorder captures every delivery made through its handler pair, in
// order, as api.Result values.
type Recorder struct {
	Results []api.Result[any]
}

// Callback returns an api.Callback recording delivered values.
func (r *Recorder) Callback() api.Callback {
	return func(value any) {
		r.Results = append(r.Results, api.Result[any]{Value: value})
	}
}

// Errback returns an api.Errback recording delivered errors.
func (r *Recorder) Errback() api.Errback {
	return func(err error) {
		r.Results = append(r.Results, api.Result[any]{Err: err})
	}
}

// Values returns the recorded values, delivery order preserved.
func (r *Recorder) Values() []any {
	var out []any
	for _, res := range r.Results {
		if res.Err == nil {
			out = append(out, res.Value)
		}
	}
	return out
}

// Errors returns the recorded errors, delivery order preserved.
func (r *Recorder) Errors() []error {
	var out []error
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res.Err)
		}
	}
	return out
}
