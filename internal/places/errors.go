package places

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport failures (DNS, connect, timeout).
	ErrNetwork = errors.New("network error")
	// ErrDecode is returned when the response body is not the expected JSON.
	ErrDecode = errors.New("JSON decode error")
	// ErrMissingAPIKey is returned without issuing a request when no key is configured.
	ErrMissingAPIKey = errors.New("places API key not configured")
)

// APIError is a non-success answer from the places API, either an HTTP status
// outside 2xx or a body status other than OK.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s (%s)", e.Status, e.Message)
	}
	if e.Status != "" {
		return fmt.Sprintf("API error: %s", e.Status)
	}
	return fmt.Sprintf("API error: status %d", e.StatusCode)
}
