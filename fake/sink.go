// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

// RecordingSink is a test api.Sink capturing unhandled errors.
type RecordingSink struct {
	Errors []error
}

// Unhandled implements api.Sink.
func (s *RecordingSink) Unhandled(err error) {
	s.Errors = append(s.Errors, err)
}
