package ghostadmin

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// APIError describes a failed Admin API request. Body holds the JSON error
// document returned by the server, when there was one.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("ghostadmin: %s %s: %v", e.Method, e.URL, e.Err)
	case len(e.Body) > 0:
		return fmt.Sprintf("ghostadmin: %s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("ghostadmin: %s %s returned %d", e.Method, e.URL, e.StatusCode)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Structured reports whether the server supplied a JSON error body.
func (e *APIError) Structured() bool {
	return e != nil && len(e.Body) > 0
}

// responseError builds an APIError for a non-2xx response. Non-JSON bodies
// are folded into Err so callers print them as a raw message.
func responseError(method, url string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, URL: url, StatusCode: status}
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
	case json.Valid(trimmed):
		apiErr.Body = json.RawMessage(trimmed)
	default:
		apiErr.Err = fmt.Errorf("status %d: %s", status, trimmed)
	}
	return apiErr
}
