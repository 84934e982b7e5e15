// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus represents the state of a friend request.
type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest represents a friendship request between two users. A request
// is uniquely identified by the ordered (requester, recipient) pair. Only the
// recipient may resolve a pending request, and accepted/rejected are terminal.
type FriendRequest struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	RecipientID uuid.UUID
	Status      FriendRequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFriendRequest creates a new pending FriendRequest entity.
func NewFriendRequest(requesterID, recipientID uuid.UUID) *FriendRequest {
	now := time.Now().UTC()

	return &FriendRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      FriendRequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsResolved reports whether the request has reached a terminal state.
func (fr *FriendRequest) IsResolved() bool {
	return fr.Status == FriendRequestStatusAccepted || fr.Status == FriendRequestStatusRejected
}

// Involves reports whether the given user is either side of the request.
func (fr *FriendRequest) Involves(userID uuid.UUID) bool {
	return fr.RequesterID == userID || fr.RecipientID == userID
}

// OtherParty returns the user on the opposite side of the request.
func (fr *FriendRequest) OtherParty(userID uuid.UUID) uuid.UUID {
	if fr.RequesterID == userID {
		return fr.RecipientID
	}
	return fr.RequesterID
}
