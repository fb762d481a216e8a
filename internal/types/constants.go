package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default HRMS API origin used for local development
	DefaultBaseURL = "http://localhost:5000"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "hrms-go/1.0.0"

	// DefaultMaxRetries is how many times a transport-level failure is retried
	DefaultMaxRetries = 2

	// DefaultRetryWait is the fixed delay between retry attempts
	DefaultRetryWait = 1000 * time.Millisecond

	// PingTimeout bounds the health-check probe
	PingTimeout = 3 * time.Second
)

// Common errors
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginFailed is returned when login fails
	ErrLoginFailed = errors.New("login failed")

	// ErrSessionExpired is returned when the stored token has expired
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden is returned when the caller lacks permission
	ErrForbidden = errors.New("insufficient permissions")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")

	// ErrServerUnavailable is returned when the transport cannot reach the
	// server after exhausting retries
	ErrServerUnavailable = errors.New("server unavailable")
)
