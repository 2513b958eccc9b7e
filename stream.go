package chirp

import "context"

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Connected, delivering messages.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Next() returned non-EOF error.
	StreamStateClosed                       // Close() called before terminal state.
)

// Stream uses a pull-based iterator pattern over one live connection.
// Cancellation flows through the context passed to Streamer.Stream().
//
// Next returns messages in arrival order. A line that cannot be classified
// is returned as a RawMessage, never as an error. Errors from Next are
// transport failures and end the stream; io.EOF marks a clean end of the
// response body, which usually follows a Disconnect message.
//
// Close releases the connection. It is safe to call more than once and must
// be called even after Next returned an error or io.EOF.
type Stream interface {
	Next() (Message, error)
	State() StreamState
	Close() error
}

// Streamer opens streaming connections. Every call opens an independent
// connection; connection failures are returned before any message is read.
type Streamer interface {
	Stream(ctx context.Context, req Request) (Stream, error)
}
