package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jpillora/backoff"
)

// maxResponseSize caps response bodies read into memory.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// requestConfig contains parameters for an HTTP request.
type requestConfig struct {
	method      string     // HTTP method (GET, POST, PATCH, DELETE)
	path        string     // URL path template, e.g. "/accounts/%s/entities"
	pathParams  []string   // Parameters to substitute in path (will be URL-escaped)
	query       url.Values // Query parameters
	body        any        // Request body (will be JSON-encoded)
	expectCodes []int      // Expected HTTP status codes (default: 200)
}

// requestResult contains the full response from an HTTP request.
type requestResult struct {
	Body       []byte
	StatusCode int
	Headers    http.Header
}

// doRequest executes an API request with URL building, retry for
// idempotent methods, request logging and error handling.
func (a *Adapter) doRequest(ctx context.Context, cfg requestConfig) (*requestResult, error) {
	apiURL := a.buildURL(cfg.path, cfg.pathParams, cfg.query)

	var bodyBytes []byte
	if cfg.body != nil {
		var err error
		bodyBytes, err = json.Marshal(cfg.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	// Only idempotent reads retry; a replayed mutation could double-create.
	attempts := 1
	if cfg.method == http.MethodGet {
		attempts = a.opts.retryMax
	}
	bck := &backoff.Backoff{
		Min:    a.opts.retryMinBackoff,
		Max:    a.opts.retryMaxBackoff,
		Jitter: true,
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		result, retryable, err := a.doOnce(ctx, cfg, apiURL, bodyBytes)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable || attempt == attempts-1 {
			return nil, lastErr
		}
		if !sleepCtx(ctx, bck.Duration()) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// doOnce performs a single HTTP exchange. The second return value reports
// whether the failure is worth retrying.
func (a *Adapter) doOnce(ctx context.Context, cfg requestConfig, apiURL string, bodyBytes []byte) (*requestResult, bool, error) {
	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, cfg.method, apiURL, bodyReader)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		// Network failure, no response to classify.
		a.opts.logger.Warnw(cfg.method, "url", apiURL, "error", err)
		return nil, true, fmt.Errorf("%s request to %s failed: %w", cfg.method, apiURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	a.opts.logger.Infow(cfg.method,
		"url", apiURL,
		"status", resp.StatusCode,
		"time", time.Since(start).Seconds())

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}

	if !isExpectedStatus(resp.StatusCode, cfg.expectCodes) {
		if resp.StatusCode == http.StatusUnauthorized && a.opts.onUnauthorized != nil {
			// Clears the cached session; the error still reaches the
			// caller, redirecting is not this layer's job.
			a.opts.onUnauthorized()
		}
		requestID := resp.Header.Get("X-Request-Id")
		return nil, isRetryableStatus(resp.StatusCode),
			newAPIErrorFromResponse(resp.StatusCode, respBody, requestID)
	}

	return &requestResult{
		Body:       respBody,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}, false, nil
}

// doJSON executes an API request and unmarshals the JSON response into
// result. An empty success body leaves result at its zero value.
func (a *Adapter) doJSON(ctx context.Context, cfg requestConfig, result any) error {
	res, err := a.doRequest(ctx, cfg)
	if err != nil {
		return err
	}

	body := bytes.TrimSpace(res.Body)
	if result == nil || len(body) == 0 {
		return nil
	}

	if body[0] != '{' && body[0] != '[' {
		preview := string(body)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return fmt.Errorf("expected JSON response but got: %s", preview)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// doNoContent executes an API request that expects no response body.
func (a *Adapter) doNoContent(ctx context.Context, cfg requestConfig) error {
	_, err := a.doRequest(ctx, cfg)
	return err
}

// buildURL constructs a full URL with the base path prefix, escaped path
// parameters and query string.
func (a *Adapter) buildURL(pathTemplate string, pathParams []string, query url.Values) string {
	var path string
	if len(pathParams) > 0 {
		escapedParams := make([]any, len(pathParams))
		for i, p := range pathParams {
			escapedParams[i] = url.PathEscape(p)
		}
		path = fmt.Sprintf(pathTemplate, escapedParams...)
	} else {
		path = pathTemplate
	}

	result := a.endpoint + a.opts.basePath + path

	if len(query) > 0 {
		result += "?" + query.Encode()
	}

	return result
}

// sleepCtx waits for d respecting context cancellation. Returns false when
// the context was cancelled before the timer fired.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
