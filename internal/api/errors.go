package api

import (
	"errors"
	"fmt"
)

// ErrNetwork indicates the backend could not be reached at all
// (DNS, connection refused, timeout). Status is unknown.
var ErrNetwork = errors.New("network error: cannot reach backend")

// ErrPaywall indicates the server rejected the request with the paywall
// signal: HTTP 402 or an explicit paywall flag in the body. It is kept
// separate from HTTPError because it drives a dedicated UI state, not a
// failure banner.
var ErrPaywall = errors.New("free preview limit reached")

// HTTPError is a non-2xx response with the server-provided message.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == 401
}
