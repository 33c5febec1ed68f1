package apiclient

import (
	"net/http"

	"github.com/founder-match/founder-match-web/internal/logging"
)

// RequestInterceptor may inspect or modify an outgoing request. Returning an
// error aborts the call.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor sees every completed call. resp is nil when the request
// never got an answer. The returned error replaces err for the caller.
type ResponseInterceptor func(resp *http.Response, err error) error

// PassThroughRequest is the default request hook, reserved for auth-token injection.
func PassThroughRequest(req *http.Request) error {
	return nil
}

// PassThroughResponse is the default response hook, reserved for centralized
// error reporting.
func PassThroughResponse(resp *http.Response, err error) error {
	return err
}

// RequestIDHeader forwards the inbound request ID to the backend.
func RequestIDHeader(req *http.Request) error {
	if rid := logging.RequestID(req.Context()); rid != "" && req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", rid)
	}
	return nil
}

// UseRequest appends request interceptors; they run in registration order.
func (c *Client) UseRequest(interceptors ...RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestInterceptors = append(c.requestInterceptors, interceptors...)
}

// UseResponse appends response interceptors; they run in registration order.
func (c *Client) UseResponse(interceptors ...ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responseInterceptors = append(c.responseInterceptors, interceptors...)
}

func (c *Client) requestChain() []RequestInterceptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]RequestInterceptor(nil), c.requestInterceptors...)
}

func (c *Client) responseChain() []ResponseInterceptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]ResponseInterceptor(nil), c.responseInterceptors...)
}
