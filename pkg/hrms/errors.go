package hrms

import (
	"errors"

	internalTypes "github.com/hrbuddy/hrms-go/internal/types"
)

// Error is the classified API error returned by every service method.
// Callers distinguish error kinds via the attached flags rather than error
// subclassing.
type Error = internalTypes.Error

var (
	// ErrNotAuthenticated is returned when authentication is required. Any
	// 401 response also evicts the locally stored token.
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrLoginFailed is returned when login fails
	ErrLoginFailed = internalTypes.ErrLoginFailed

	// ErrSessionExpired is returned when the stored token has expired
	ErrSessionExpired = internalTypes.ErrSessionExpired

	// ErrForbidden is returned when the caller lacks permission
	ErrForbidden = internalTypes.ErrForbidden

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError

	// ErrServerUnavailable is returned when the server cannot be reached
	// after the retry budget is exhausted
	ErrServerUnavailable = internalTypes.ErrServerUnavailable
)

// IsValidation reports whether err is an HTTP 400 business-rule rejection.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsValidation
}

// IsExpectedValidation reports whether err carries an allow-listed benign
// validation message (for example a double check-in). Such errors are still
// returned to the caller but kept out of the error logs.
func IsExpectedValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsExpectedValidation
}

// IsServerUnavailable reports whether err is a transport-level failure that
// survived the retry budget.
func IsServerUnavailable(err error) bool {
	if errors.Is(err, ErrServerUnavailable) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsServerUnavailable
}

// IsAuthError reports whether err is authentication related.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrLoginFailed) ||
		errors.Is(err, ErrSessionExpired)
}
