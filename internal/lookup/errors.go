package lookup

import "fmt"

// APIError reports a non-2xx response from the lookup API.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Reason)
}

// TransportError reports a network-level failure, including timeouts and
// cancelled requests.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a malformed response body.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed API response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
