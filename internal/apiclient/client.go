package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/founder-match/founder-match-web/internal/logging"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is used when no backend address is configured.
	DefaultBaseURL = "http://localhost:8080/api"

	// DefaultTimeout bounds a single backend call.
	DefaultTimeout = 10 * time.Second
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outbound requests per second. Zero means unlimited.
	RateLimit float64
	Burst     int
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client is the single request-issuing object shared by every resource API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics

	mu                   sync.RWMutex
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// New creates a new backend client
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		baseURL:              baseURL,
		httpClient:           httpClient,
		limiter:              limiter,
		metrics:              &metrics{},
		requestInterceptors:  []RequestInterceptor{PassThroughRequest},
		responseInterceptors: []ResponseInterceptor{PassThroughResponse},
	}
}

// BaseURL returns the backend address every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET with optional query parameters and decodes the body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE. out may be nil when the backend answers 204.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do performs one backend call. Transport failures come back as *TransportError,
// non-2xx answers as *HTTPError. Nothing is retried.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	logger := logging.New(ctx)
	operation := method + " " + path
	start := time.Now()

	err := c.do(ctx, method, path, query, body, out)
	duration := time.Since(start)
	c.metrics.record(duration, err)

	if err != nil {
		logger.LogWarnf(operation, "backend call failed after %s: %v", duration, err)
		return err
	}
	logger.LogDebugf(operation, "backend call ok in %s", duration)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.resolve(path, query)

	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Method: method, URL: reqURL, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, intercept := range c.requestChain() {
		if err := intercept(req); err != nil {
			return fmt.Errorf("request interceptor: %w", err)
		}
	}

	resp, callErr := c.httpClient.Do(req)
	var payload []byte
	if callErr != nil {
		callErr = &TransportError{Method: method, URL: reqURL, Err: callErr}
		resp = nil
	} else {
		defer resp.Body.Close()
		payload, err = io.ReadAll(resp.Body)
		if err != nil {
			callErr = &TransportError{Method: method, URL: reqURL, Err: fmt.Errorf("failed to read response: %w", err)}
		} else if resp.StatusCode < 200 || resp.StatusCode > 299 {
			callErr = newHTTPError(method, reqURL, resp.StatusCode, payload)
		}
		resp.Body = io.NopCloser(bytes.NewReader(payload))
	}

	for _, intercept := range c.responseChain() {
		callErr = intercept(resp, callErr)
	}
	if callErr != nil {
		return callErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Stats returns a snapshot of the client's call counters.
func (c *Client) Stats() Stats {
	return c.metrics.snapshot()
}
