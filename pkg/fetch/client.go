package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Config configures a Client. The zero value is usable; unset fields fall
// back to defaults in NewClient.
type Config struct {
	// Timeout applies to each request end to end. Zero means no timeout,
	// matching the FetchData contract.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Headers are set on every request.
	Headers map[string]string `json:"headers,omitempty"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `json:"user_agent,omitempty"`

	// RequestsPerSecond caps the outgoing request rate when greater than
	// zero. Requests wait on the limiter before being sent.
	RequestsPerSecond float64 `json:"requests_per_second,omitempty"`

	// TokenSource, when set, supplies a bearer token for each request.
	TokenSource oauth2.TokenSource `json:"-"`
}

// Metrics is a snapshot of a Client's request counters.
type Metrics struct {
	TotalRequests  int64 `json:"total_requests"`
	SuccessfulReqs int64 `json:"successful_requests"`
	FailedReqs     int64 `json:"failed_requests"`
}

// Client is a reusable GET client that decodes JSON bodies. It stamps each
// request with an x-request-id header and is safe for concurrent use.
//
// Like FetchData, it performs no retries, no status-code checks, and no
// error translation.
type Client struct {
	client  *http.Client
	config  Config
	limiter *rate.Limiter

	requestCount int64
	successCount int64
	errorCount   int64
}

// NewClient creates a Client from config, filling in defaults.
func NewClient(config Config) *Client {
	if config.UserAgent == "" {
		config.UserAgent = "utilkit/1.0"
	}
	if config.Headers == nil {
		config.Headers = make(map[string]string)
	}
	if _, ok := config.Headers["Accept"]; !ok {
		config.Headers["Accept"] = "application/json"
	}
	config.Headers["User-Agent"] = config.UserAgent

	c := &Client{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
	}
	if config.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}
	return c
}

// Get issues a GET to url and returns the JSON-decoded body.
func (c *Client) Get(ctx context.Context, url string) (interface{}, error) {
	var data interface{}
	if err := c.GetJSON(ctx, url, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// GetJSON issues a GET to url and decodes the response body into out.
// Failure semantics match FetchData: transport and decode errors surface
// unmodified. The only errors the Client itself can add come from the rate
// limiter (context cancellation while waiting) and the token source.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	atomic.AddInt64(&c.requestCount, 1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		atomic.AddInt64(&c.errorCount, 1)
		return err
	}

	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("x-request-id", uuid.New().String())

	if c.config.TokenSource != nil {
		token, err := c.config.TokenSource.Token()
		if err != nil {
			atomic.AddInt64(&c.errorCount, 1)
			return err
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		atomic.AddInt64(&c.errorCount, 1)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		atomic.AddInt64(&c.errorCount, 1)
		return err
	}

	atomic.AddInt64(&c.successCount, 1)
	return nil
}

// GetMetrics returns a snapshot of the request counters.
func (c *Client) GetMetrics() Metrics {
	return Metrics{
		TotalRequests:  atomic.LoadInt64(&c.requestCount),
		SuccessfulReqs: atomic.LoadInt64(&c.successCount),
		FailedReqs:     atomic.LoadInt64(&c.errorCount),
	}
}

// Client returns the underlying http.Client.
func (c *Client) Client() *http.Client {
	return c.client
}

// ClientBuilder provides a builder pattern for Client
type ClientBuilder struct {
	config Config
}

// NewClientBuilder creates a new builder
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		config: Config{},
	}
}

// WithTimeout sets the per-request timeout
func (b *ClientBuilder) WithTimeout(timeout time.Duration) *ClientBuilder {
	b.config.Timeout = timeout
	return b
}

// WithHeaders sets default headers
func (b *ClientBuilder) WithHeaders(headers map[string]string) *ClientBuilder {
	if b.config.Headers == nil {
		b.config.Headers = make(map[string]string)
	}
	for k, v := range headers {
		b.config.Headers[k] = v
	}
	return b
}

// WithUserAgent sets the user agent
func (b *ClientBuilder) WithUserAgent(userAgent string) *ClientBuilder {
	b.config.UserAgent = userAgent
	return b
}

// WithRateLimit caps the outgoing request rate
func (b *ClientBuilder) WithRateLimit(requestsPerSecond float64) *ClientBuilder {
	b.config.RequestsPerSecond = requestsPerSecond
	return b
}

// WithTokenSource sets the bearer token source
func (b *ClientBuilder) WithTokenSource(source oauth2.TokenSource) *ClientBuilder {
	b.config.TokenSource = source
	return b
}

// Build creates the Client
func (b *ClientBuilder) Build() *Client {
	return NewClient(b.config)
}
