package chirp

// Observer receives the output of a Subscription. Calls for one subscription
// are made sequentially from a single goroutine and never overlap. After
// OnError or OnCompleted no further calls are made. A cancelled subscription
// ends without calling either.
type Observer interface {
	OnNext(Message)
	OnError(error)
	OnCompleted()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	NextFn      func(Message)
	ErrorFn     func(error)
	CompletedFn func()
}

// Interface compliance check.
var _ Observer = ObserverFuncs{}

// OnNext calls NextFn.
func (o ObserverFuncs) OnNext(msg Message) {
	if o.NextFn != nil {
		o.NextFn(msg)
	}
}

// OnError calls ErrorFn.
func (o ObserverFuncs) OnError(err error) {
	if o.ErrorFn != nil {
		o.ErrorFn(err)
	}
}

// OnCompleted calls CompletedFn.
func (o ObserverFuncs) OnCompleted() {
	if o.CompletedFn != nil {
		o.CompletedFn()
	}
}
