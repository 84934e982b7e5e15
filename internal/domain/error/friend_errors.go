// Package error defines domain-specific errors for the ecap backend.
package error

import "errors"

// Friend request domain errors.
var (
	// ErrFriendRequestNotFound is returned when a friend request is not found.
	ErrFriendRequestNotFound = errors.New("friend request not found")

	// ErrNotRequestRecipient is returned when a user other than the recipient
	// attempts to resolve a pending request.
	ErrNotRequestRecipient = errors.New("only the recipient may resolve a friend request")

	// ErrRequestAlreadyResolved is returned when a request in a terminal state
	// is accepted or rejected again.
	ErrRequestAlreadyResolved = errors.New("friend request has already been resolved")

	// ErrSelfFriendRequest is returned when a user sends a friend request to themselves.
	ErrSelfFriendRequest = errors.New("cannot send a friend request to yourself")

	// ErrFriendUserNotFound is returned when the requested friend does not exist.
	ErrFriendUserNotFound = errors.New("user not found")
)

// FriendErrorCode defines error codes for friend request errors.
// Format: FRD-XXYYYY where XX is category and YYYY is specific error.
type FriendErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFriendRequestNotFound  FriendErrorCode = "FRD-010001"
	ErrCodeNotRequestRecipient    FriendErrorCode = "FRD-010002"
	ErrCodeRequestAlreadyResolved FriendErrorCode = "FRD-010003"
	ErrCodeSelfFriendRequest      FriendErrorCode = "FRD-010004"
	ErrCodeFriendUserNotFound     FriendErrorCode = "FRD-010005"

	// Internal errors (99XXXX)
	ErrCodeFriendInternalError FriendErrorCode = "FRD-990001"
)

// FriendError represents a friend request error with code and message.
type FriendError struct {
	Code    FriendErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FriendError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FriendError) Unwrap() error {
	return e.Err
}

// NewFriendError creates a new FriendError with the given code and message.
func NewFriendError(code FriendErrorCode, message string, err error) *FriendError {
	return &FriendError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
