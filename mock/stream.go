package mock

import "github.com/fwojciec/chirp"

// Interface compliance check.
var _ chirp.Stream = (*Stream)(nil)

// Stream is a test double for chirp.Stream.
// Set the function fields for the methods you need. NextFn panics when nil
// to catch missing setup. CloseFn and StateFn are nil-safe (no-op and zero
// value) because test code commonly calls defer stream.Close() and these
// methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (chirp.Message, error)
	StateFn func() chirp.StreamState
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (chirp.Message, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() chirp.StreamState {
	if s.StateFn == nil {
		return chirp.StreamStateNew
	}
	return s.StateFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
