// Package error defines domain-specific errors for the ecap backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportNotFound is returned when a report is not found in the system.
	ErrReportNotFound = errors.New("report not found")

	// ErrUnauthorizedReportAccess is returned when a user attempts to access a report they do not own.
	ErrUnauthorizedReportAccess = errors.New("unauthorized access to report")

	// ErrInvalidReportDateRange is returned when the report end date precedes the start date.
	ErrInvalidReportDateRange = errors.New("end_date must not be before start_date")

	// ErrMissingReportDates is returned when start or end date is not provided.
	ErrMissingReportDates = errors.New("start_date and end_date are required")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeReportNotFound           ReportErrorCode = "RPT-010001"
	ErrCodeUnauthorizedReportAccess ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportDateRange   ReportErrorCode = "RPT-010003"
	ErrCodeMissingReportDates       ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
