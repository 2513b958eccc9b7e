package mock

import "github.com/fwojciec/chirp"

// Interface compliance check.
var _ chirp.Observer = (*Observer)(nil)

// Observer is a test double for chirp.Observer. Every function field panics
// when nil, so a test fails loudly on a callback it did not expect.
type Observer struct {
	OnNextFn      func(chirp.Message)
	OnErrorFn     func(error)
	OnCompletedFn func()
}

// OnNext delegates to OnNextFn.
func (o *Observer) OnNext(msg chirp.Message) {
	o.OnNextFn(msg)
}

// OnError delegates to OnErrorFn.
func (o *Observer) OnError(err error) {
	o.OnErrorFn(err)
}

// OnCompleted delegates to OnCompletedFn.
func (o *Observer) OnCompleted() {
	o.OnCompletedFn()
}
