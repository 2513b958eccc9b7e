package chirp

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMalformedMessage indicates a line is not valid JSON, or a recognized
	// message shape carries a payload that cannot be decoded.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrUnsupportedMessage indicates a well-formed JSON object that matches
	// no known message shape.
	ErrUnsupportedMessage = errors.New("unsupported message shape")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)

// ParseError records a line that could not be classified. It unwraps to
// ErrMalformedMessage or ErrUnsupportedMessage.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse message: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
