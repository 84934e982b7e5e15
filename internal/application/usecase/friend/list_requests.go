// Package friend contains friend-request-related use cases.
package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// ListRequestsInput represents the input for listing friend requests.
type ListRequestsInput struct {
	UserID uuid.UUID
	Status entity.FriendRequestStatus
}

// ListRequestsOutput represents the output of listing friend requests.
type ListRequestsOutput struct {
	Requests []*entity.FriendRequest
}

// ListRequestsUseCase lists the friend requests a user is involved in,
// filtered by status.
type ListRequestsUseCase struct {
	friendRepo adapter.FriendRepository
}

// NewListRequestsUseCase creates a new ListRequestsUseCase instance.
func NewListRequestsUseCase(friendRepo adapter.FriendRepository) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		friendRepo: friendRepo,
	}
}

// Execute performs the friend request listing.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, input ListRequestsInput) (*ListRequestsOutput, error) {
	requests, err := uc.friendRepo.FindByUserAndStatus(ctx, input.UserID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}

	return &ListRequestsOutput{Requests: requests}, nil
}
