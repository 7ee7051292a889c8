// Package client implements the HTTP clients for the three external
// backends: rooms, bookings and forecast.  Every call is stateless, runs
// without retries or local timeouts, and reports failure immediately.
package client

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ErrAuthRequired is returned when an operation needs a bearer token and
// none is available.  It is raised locally, before any network I/O.
var ErrAuthRequired = errors.New("authentication required")

// UpstreamError reports a failed backend call.  Status is the backend's
// HTTP status for a rejection, or 502 when the backend was unreachable or
// produced a malformed response.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// reject converts a non-2xx backend response into an UpstreamError.  The
// backends emit plain-text error bodies, so the priority is: raw body,
// then the HTTP status text, then the operation's fallback message.
func reject(res *http.Response, fallback string) error {
	msg := ""
	if body, err := io.ReadAll(res.Body); err == nil {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(res.StatusCode)
	}
	if msg == "" {
		msg = fallback
	}
	return &UpstreamError{Status: res.StatusCode, Message: msg}
}

// unreachable wraps a transport-level failure.  The distinct 502 status
// lets callers tell "could not reach service" apart from "service said no".
func unreachable(err error, fallback string) error {
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &UpstreamError{Status: http.StatusBadGateway, Message: msg}
}
