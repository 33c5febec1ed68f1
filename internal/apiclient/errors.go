package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorPayload is the error body shape the backend answers with.
type ErrorPayload struct {
	Message string `json:"message,omitempty"`
	Err     string `json:"error,omitempty"`
}

// HTTPError is returned when the backend answers with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	// Payload is nil when the body was not a JSON error object.
	Payload *ErrorPayload
}

func newHTTPError(method, url string, status int, body []byte) *HTTPError {
	e := &HTTPError{Method: method, URL: url, StatusCode: status, Body: body}
	var p ErrorPayload
	if len(body) > 0 && json.Unmarshal(body, &p) == nil {
		e.Payload = &p
	}
	return e
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: backend returned status %d: %s", e.Method, e.URL, e.StatusCode, string(e.Body))
}

// TransportError covers network failures, timeouts and cancelled contexts.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MessageFrom extracts a user-facing message from a backend error: the payload's
// message, then its error field, then fallback. Errors that never reached the
// backend always yield fallback.
func MessageFrom(err error, fallback string) string {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Payload == nil {
		return fallback
	}
	if httpErr.Payload.Message != "" {
		return httpErr.Payload.Message
	}
	if httpErr.Payload.Err != "" {
		return httpErr.Payload.Err
	}
	return fallback
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err is a backend answer with one of the given statuses.
func IsStatus(err error, codes ...int) bool {
	status := StatusCode(err)
	if status == 0 {
		return false
	}
	for _, code := range codes {
		if status == code {
			return true
		}
	}
	return false
}
