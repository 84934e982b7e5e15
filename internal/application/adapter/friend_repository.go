// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// FriendRepository defines the interface for friend request persistence operations.
type FriendRepository interface {
	// Create creates a new friend request in the database.
	Create(ctx context.Context, request *entity.FriendRequest) error

	// FindByID retrieves a friend request by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FriendRequest, error)

	// FindByPair retrieves the request for the ordered (requester, recipient)
	// pair, or nil when none exists.
	FindByPair(ctx context.Context, requesterID, recipientID uuid.UUID) (*entity.FriendRequest, error)

	// FindByUserAndStatus retrieves all requests with the given status in which
	// the user is either requester or recipient.
	FindByUserAndStatus(
		ctx context.Context,
		userID uuid.UUID,
		status entity.FriendRequestStatus,
	) ([]*entity.FriendRequest, error)

	// UpdateStatus persists a status transition for a friend request.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FriendRequestStatus) error

	// FindAcceptedFriends retrieves the users who share an accepted request
	// with the given user.
	FindAcceptedFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)
}
