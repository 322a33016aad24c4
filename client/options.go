package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Configuration constants
const (
	// defaultBasePath is prefixed to every API path.
	defaultBasePath = "/api/v1"

	// sessionCookieName carries the authentication token issued on sign-in.
	sessionCookieName = "billmate.session"

	// Default configuration values
	defaultTimeout               = 10 * time.Second
	defaultResponseHeaderTimeout = 30 * time.Second
	defaultIdleConnTimeout       = 90 * time.Second
	defaultRetryMax              = 2
	defaultRetryMinBackoff       = 200 * time.Millisecond
	defaultRetryMaxBackoff       = 2 * time.Second
)

// Option configures the Adapter.
type Option func(*options)

// options holds the configuration for the Adapter.
type options struct {
	timeout               time.Duration      // HTTP client timeout (default: 10s)
	responseHeaderTimeout time.Duration      // Timeout for waiting for response headers (default: 30s)
	idleConnTimeout       time.Duration      // How long idle connections stay in pool (default: 90s)
	httpClient            *http.Client       // Custom HTTP client (overrides all timeout options if set)
	basePath              string             // API base path (default: /api/v1)
	logger                *zap.SugaredLogger // Request logger (default: nop)
	retryMax              int                // Retry attempts for idempotent requests (default: 2)
	retryMinBackoff       time.Duration      // Initial retry backoff (default: 200ms)
	retryMaxBackoff       time.Duration      // Backoff ceiling (default: 2s)
	onUnauthorized        func()             // Invoked once per 401 response
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		timeout:               defaultTimeout,
		responseHeaderTimeout: defaultResponseHeaderTimeout,
		idleConnTimeout:       defaultIdleConnTimeout,
		basePath:              defaultBasePath,
		logger:                zap.NewNop().Sugar(),
		retryMax:              defaultRetryMax,
		retryMinBackoff:       defaultRetryMinBackoff,
		retryMaxBackoff:       defaultRetryMaxBackoff,
	}
}

// WithTimeout sets the HTTP client timeout.
// Values <= 0 are ignored (default is used).
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
// When set, this overrides the timeout options; the caller is responsible
// for configuring timeouts and a cookie jar on the custom client.
// Nil values are ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithBasePath overrides the API base path prefix.
func WithBasePath(p string) Option {
	return func(o *options) {
		if p != "" {
			o.basePath = p
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger.Named("billmate")
		}
	}
}

// WithRetry sets the number of attempts for idempotent (GET) requests.
// Mutations are never retried. A value of 1 disables retries.
func WithRetry(attempts int) Option {
	return func(o *options) {
		if attempts > 0 {
			o.retryMax = attempts
		}
	}
}

// WithUnauthorizedHook registers a callback invoked whenever the API
// answers 401. The session store uses it as its single invalidation path;
// the error is still returned to the caller.
func WithUnauthorizedHook(fn func()) Option {
	return func(o *options) {
		o.onUnauthorized = fn
	}
}
