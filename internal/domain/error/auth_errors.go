// Package error defines domain-specific errors for the ecap backend.
package error

import "errors"

// Token/authentication domain errors. Token issuance lives in the external
// identity service; only validation failures surface here.
var (
	// ErrMissingToken is returned when no bearer token is supplied.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"

	// Rate limiting errors (03XXXX)
	ErrCodeRateLimitExceeded AuthErrorCode = "AUTH-030001"
)
