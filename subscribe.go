package chirp

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
)

// SubscriptionState indicates the lifecycle stage of a Subscription.
type SubscriptionState int32

const (
	SubscriptionCreated   SubscriptionState = iota // Before Start().
	SubscriptionRunning                            // Read loop active.
	SubscriptionCompleted                          // Stream ended cleanly; OnCompleted called.
	SubscriptionErrored                            // Transport failure; OnError called.
	SubscriptionCancelled                          // Cancelled; observer not notified.
)

func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionCreated:
		return "created"
	case SubscriptionRunning:
		return "running"
	case SubscriptionCompleted:
		return "completed"
	case SubscriptionErrored:
		return "errored"
	case SubscriptionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrAlreadyStarted is returned by Start on a subscription that was started before.
var ErrAlreadyStarted = errors.New("subscription already started")

// Subscription pushes the messages of one stream connection to an Observer
// from a background goroutine.
//
// Cancellation is cooperative. It is checked before the connection is
// opened, before every read and immediately before every delivery, so a
// message read after cancellation is dropped. A cancelled subscription
// releases its connection and notifies the observer of nothing.
type Subscription struct {
	streamer Streamer
	req      Request

	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
	state  atomic.Int32
	err    error // set before done is closed
}

// NewSubscription creates a Subscription in the SubscriptionCreated state.
// Nothing is opened until Start is called.
func NewSubscription(streamer Streamer, req Request) *Subscription {
	return &Subscription{
		streamer: streamer,
		req:      req,
		cancel:   func() {},
		done:     make(chan struct{}),
	}
}

// Subscribe creates and starts a Subscription.
func Subscribe(ctx context.Context, streamer Streamer, req Request, obs Observer) *Subscription {
	s := NewSubscription(streamer, req)
	_ = s.Start(ctx, obs)
	return s
}

// Start launches the read loop. Cancelling ctx has the same effect as
// Unsubscribe.
func (s *Subscription) Start(ctx context.Context, obs Observer) error {
	err := ErrAlreadyStarted
	s.once.Do(func() {
		ctx, s.cancel = context.WithCancel(ctx)
		s.state.Store(int32(SubscriptionRunning))
		go s.run(ctx, obs)
		err = nil
	})
	return err
}

// Unsubscribe requests cancellation. It does not wait for the read loop to
// exit; use Wait or Done for that.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.state.Store(int32(SubscriptionCancelled))
		close(s.done)
	})
	s.cancel()
}

// Done returns a channel that is closed once the read loop has exited, the
// connection is released and the final observer call has returned.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Wait blocks until Done is closed and returns Err.
func (s *Subscription) Wait() error {
	<-s.done
	return s.err
}

// State returns the current state.
func (s *Subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// Err returns the transport error for an errored subscription. It is nil in
// every other state.
func (s *Subscription) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *Subscription) run(ctx context.Context, obs Observer) {
	defer close(s.done)
	defer s.cancel()

	state, err := s.loop(ctx, obs)
	s.err = err
	s.state.Store(int32(state))

	switch state {
	case SubscriptionCompleted:
		obs.OnCompleted()
	case SubscriptionErrored:
		obs.OnError(err)
	}
}

// loop drains the stream into obs and reports how it ended. The stream is
// closed before loop returns.
func (s *Subscription) loop(ctx context.Context, obs Observer) (SubscriptionState, error) {
	if ctx.Err() != nil {
		return SubscriptionCancelled, nil
	}

	stream, err := s.streamer.Stream(ctx, s.req)
	if err != nil {
		if ctx.Err() != nil {
			return SubscriptionCancelled, nil
		}
		return SubscriptionErrored, err
	}
	defer stream.Close()

	for {
		if ctx.Err() != nil {
			return SubscriptionCancelled, nil
		}

		msg, err := stream.Next()
		if err != nil {
			// A read aborted by cancellation is not a transport failure.
			if ctx.Err() != nil {
				return SubscriptionCancelled, nil
			}
			if errors.Is(err, io.EOF) {
				return SubscriptionCompleted, nil
			}
			return SubscriptionErrored, err
		}

		if ctx.Err() != nil {
			return SubscriptionCancelled, nil
		}
		obs.OnNext(msg)
	}
}
