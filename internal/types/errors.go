package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a classified API error. Callers branch on the
// classification flags rather than on error subtypes.
type Error struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	URL        string                 `json:"url,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	RequestID  string                 `json:"requestId,omitempty"`
	RawBody    string                 `json:"-"`
	Err        error                  `json:"-"`

	// IsValidation marks HTTP 400 business-rule rejections. Never retried.
	IsValidation bool `json:"isValidation,omitempty"`

	// IsExpectedValidation marks allow-listed benign 400 messages. These are
	// still returned to the caller but suppressed from error logging.
	IsExpectedValidation bool `json:"isExpectedValidation,omitempty"`

	// IsServerUnavailable marks transport-level failures that survived the
	// retry budget.
	IsServerUnavailable bool `json:"isServerUnavailable,omitempty"`
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("error: %s", e.Code)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

// expectedValidationMessages is the fixed allow-list of benign 400 messages
// the backend emits for routine business-rule rejections. Matching is
// case-insensitive on the exact message.
var expectedValidationMessages = []string{
	"already checked in for today",
	"already checked out for today",
	"no check-in found for today",
	"attendance already regularized for this date",
	"leave request already exists for these dates",
}

// IsExpectedValidationMessage reports whether msg is on the benign allow-list.
func IsExpectedValidationMessage(msg string) bool {
	m := strings.ToLower(strings.TrimSpace(msg))
	for _, known := range expectedValidationMessages {
		if m == known {
			return true
		}
	}
	return false
}
