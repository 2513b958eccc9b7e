// Package http implements [chirp.Streamer] over the streaming HTTP endpoints.
//
// A connection is a long-lived HTTP response whose body carries one JSON
// message per line, interleaved with blank keep-alive lines. [Lines] turns
// the body into a sequence of non-blank lines; the pull-based [chirp.Stream]
// returned by [Client.Stream] classifies each line with the json package.
package http

import (
	"fmt"
	"net/http"
)

const (
	defaultUserAgent = "chirp/1.0"

	// maxLineSize bounds a single message. Statuses with extended entities
	// run to tens of kilobytes.
	maxLineSize = 1 << 20

	// maxErrorBody bounds how much of a non-200 body is read into StatusError.
	maxErrorBody = 4 << 10
)

// StatusError is returned by Open and Stream when the server rejects the
// connection with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}
