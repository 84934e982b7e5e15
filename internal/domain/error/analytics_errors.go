// Package error defines domain-specific errors for the ecap backend.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrZeroGrandTotal is returned when a category percentage is requested
	// over a record set whose grand total is zero.
	ErrZeroGrandTotal = errors.New("grand total is zero, cannot compute category percentages")

	// ErrZeroTargetAmount is returned when a saving goal percentage is
	// requested for a goal whose target amount is zero.
	ErrZeroTargetAmount = errors.New("target amount is zero, cannot compute goal percentage")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Invalid computation errors (01XXXX)
	ErrCodeZeroGrandTotal   AnalyticsErrorCode = "ANL-010001"
	ErrCodeZeroTargetAmount AnalyticsErrorCode = "ANL-010002"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
