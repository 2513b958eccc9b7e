// Package mock provides test doubles for chirp interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/chirp"
)

// Interface compliance check.
var _ chirp.Streamer = (*Streamer)(nil)

// Streamer is a test double for chirp.Streamer.
// Set StreamFn before calling Stream.
type Streamer struct {
	StreamFn func(ctx context.Context, req chirp.Request) (chirp.Stream, error)
}

// Stream delegates to StreamFn.
func (s *Streamer) Stream(ctx context.Context, req chirp.Request) (chirp.Stream, error) {
	return s.StreamFn(ctx, req)
}
