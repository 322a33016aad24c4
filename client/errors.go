package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/billmate/billmate-go/models"
)

// Sentinel errors for use with errors.Is()
var (
	// ErrNotFound indicates the requested resource was not found (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates invalid or missing authentication (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates insufficient permissions (HTTP 403).
	ErrForbidden = errors.New("forbidden")

	// ErrBadRequest indicates invalid request parameters (HTTP 400).
	ErrBadRequest = errors.New("bad request")

	// ErrConflict indicates a resource conflict, e.g., duplicate entry (HTTP 409).
	ErrConflict = errors.New("resource conflict")

	// ErrUnprocessableEntity indicates semantic validation failure (HTTP 422).
	ErrUnprocessableEntity = errors.New("unprocessable entity")

	// ErrRateLimited indicates too many requests (HTTP 429).
	ErrRateLimited = errors.New("rate limited")

	// ErrServerError indicates an internal server error (HTTP 5xx).
	ErrServerError = errors.New("server error")
)

// ErrInvalidInput indicates a payload failed client-side validation.
// Defined in the models package next to the Validate methods.
var ErrInvalidInput = models.ErrInvalidInput

// ValidationError is re-exported from models for call sites that only
// import the client package.
type ValidationError = models.ValidationError

// APIError represents an error response from the BillMate API.
type APIError struct {
	StatusCode int    // HTTP status code
	Message    string // Error message from API
	Code       string // Error code from API (if available)
	RequestID  string // Request ID from X-Request-Id header (for debugging)
	Body       []byte // Raw response body (for debugging)
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("billmate api error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("billmate api error (status %d): %s", e.StatusCode, e.Message)
}

// Is implements errors.Is() for comparing with sentinel errors.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 409:
		return target == ErrConflict
	case 422:
		return target == ErrUnprocessableEntity
	case 429:
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 && e.StatusCode < 600 {
		return target == ErrServerError
	}
	return false
}

// newAPIErrorFromResponse creates an APIError with JSON parsing support.
// It attempts to extract structured error info from the response body and
// falls back to a generic "HTTP Error {status}" message.
func newAPIErrorFromResponse(statusCode int, body []byte, requestID string) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP Error %d", statusCode),
		RequestID:  requestID,
		Body:       body,
	}

	var errResp struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		apiErr.Code = errResp.Code
	}

	return apiErr
}

// isExpectedStatus checks if the status code is in the expected list.
// If expected is empty, it defaults to checking for 200 OK.
func isExpectedStatus(code int, expected []int) bool {
	if len(expected) == 0 {
		return code == 200
	}
	for _, e := range expected {
		if code == e {
			return true
		}
	}
	return false
}

// isRetryableStatus reports whether a response status warrants a retry of
// an idempotent request.
func isRetryableStatus(code int) bool {
	switch code {
	case 408, 429, 500, 502, 503, 504:
		return true
	}
	return false
}
