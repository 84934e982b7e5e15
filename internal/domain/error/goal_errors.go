// Package error defines domain-specific errors for the ecap backend.
package error

import "errors"

// Saving goal domain errors.
var (
	// ErrGoalNotFound is returned when a saving goal is not found in the system.
	ErrGoalNotFound = errors.New("saving goal not found")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to saving goal")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrNegativeCurrentAmount is returned when the current amount is negative.
	ErrNegativeCurrentAmount = errors.New("current amount must not be negative")

	// ErrMissingTargetDate is returned when the target date is not provided.
	ErrMissingTargetDate = errors.New("target date is required")
)

// GoalErrorCode defines error codes for saving goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeNegativeCurrentAmount  GoalErrorCode = "GOL-010004"
	ErrCodeMissingTargetDate      GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010006"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a saving goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
