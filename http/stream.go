package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fwojciec/chirp"
	"github.com/fwojciec/chirp/json"
)

// stream implements [chirp.Stream] by decoding the lines of one connection.
// Next must not be called concurrently, but Close may be called from any
// goroutine to abandon a pending Next.
type stream struct {
	lines  *Lines
	kind   chirp.StreamKind
	logger *slog.Logger

	mu    sync.Mutex
	state chirp.StreamState
	err   error // terminal error, if any
}

// Interface compliance check.
var _ chirp.Stream = (*stream)(nil)

func newStream(lines *Lines, kind chirp.StreamKind, logger *slog.Logger) *stream {
	return &stream{
		lines:  lines,
		kind:   kind,
		state:  chirp.StreamStateNew,
		logger: logger,
	}
}

// Next reads and decodes the next message. A line that fails to decode is
// returned as a chirp.RawMessage so one bad line never ends the stream.
// Returns io.EOF when the server closes the stream cleanly.
func (s *stream) Next() (chirp.Message, error) {
	s.mu.Lock()
	state, err := s.state, s.err
	s.mu.Unlock()
	switch state {
	case chirp.StreamStateComplete:
		return nil, io.EOF
	case chirp.StreamStateError:
		return nil, err
	case chirp.StreamStateClosed:
		return nil, chirp.ErrStreamClosed
	}

	line, err := s.lines.Next()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == chirp.StreamStateClosed {
		return nil, chirp.ErrStreamClosed
	}

	switch {
	case errors.Is(err, ErrLineTooLong):
		s.state = chirp.StreamStateStreaming
		s.logger.Warn("oversized message", "kind", s.kind, "bytes", len(line))
		perr := &chirp.ParseError{Line: line, Err: fmt.Errorf("%w: %w", chirp.ErrMalformedMessage, err)}
		return chirp.RawMessage{RawJSON: line, Err: perr}, nil
	case errors.Is(err, io.EOF):
		s.state = chirp.StreamStateComplete
		s.logger.Debug("stream ended", "kind", s.kind)
		return nil, io.EOF
	case err != nil:
		s.state = chirp.StreamStateError
		s.err = err
		return nil, err
	}
	s.state = chirp.StreamStateStreaming

	msg, err := json.Decode(line)
	if err != nil {
		s.logger.Debug("unparsed message", "kind", s.kind, "error", err, "bytes", len(line))
		return chirp.RawMessage{RawJSON: line, Err: err}, nil
	}
	return msg, nil
}

// State returns the current stream state.
func (s *stream) State() chirp.StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close releases the connection. It is safe to call while Next is blocked;
// that Next then returns chirp.ErrStreamClosed.
func (s *stream) Close() error {
	s.mu.Lock()
	if s.state != chirp.StreamStateComplete && s.state != chirp.StreamStateError {
		s.state = chirp.StreamStateClosed
	}
	s.mu.Unlock()
	return s.lines.Close()
}
