// Package error defines domain-specific errors for the ecap backend.
package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a record is not found in the system.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnauthorizedRecordAccess is returned when a user attempts to access a record they do not own.
	ErrUnauthorizedRecordAccess = errors.New("unauthorized access to record")

	// ErrInvalidRecordKind is returned when the record kind is not expense or income.
	ErrInvalidRecordKind = errors.New("record kind must be 'expense' or 'income'")

	// ErrNegativeRecordAmount is returned when the record amount is negative.
	ErrNegativeRecordAmount = errors.New("record amount must not be negative")

	// ErrMissingRecordDate is returned when the record date is not provided.
	ErrMissingRecordDate = errors.New("record date is required")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecordNotFound           RecordErrorCode = "REC-010001"
	ErrCodeUnauthorizedRecordAccess RecordErrorCode = "REC-010002"
	ErrCodeInvalidRecordKind        RecordErrorCode = "REC-010003"
	ErrCodeNegativeRecordAmount     RecordErrorCode = "REC-010004"
	ErrCodeMissingRecordDate        RecordErrorCode = "REC-010005"
	ErrCodeMissingRecordFields      RecordErrorCode = "REC-010006"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
