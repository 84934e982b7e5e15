// Package friend contains friend-request-related use cases.
package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// RejectRequestInput represents the input for rejecting a friend request.
type RejectRequestInput struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
}

// RejectRequestOutput represents the output of rejecting a friend request.
type RejectRequestOutput struct {
	Request *entity.FriendRequest
}

// RejectRequestUseCase handles rejecting friend requests.
type RejectRequestUseCase struct {
	friendRepo adapter.FriendRepository
}

// NewRejectRequestUseCase creates a new RejectRequestUseCase instance.
func NewRejectRequestUseCase(friendRepo adapter.FriendRepository) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		friendRepo: friendRepo,
	}
}

// Execute transitions a pending request to rejected. Only the recipient may
// reject, and only while the request is pending.
func (uc *RejectRequestUseCase) Execute(ctx context.Context, input RejectRequestInput) (*RejectRequestOutput, error) {
	request, err := findPendingForRecipient(ctx, uc.friendRepo, input.RequestID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.friendRepo.UpdateStatus(ctx, request.ID, entity.FriendRequestStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to reject friend request: %w", err)
	}

	request.Status = entity.FriendRequestStatusRejected
	return &RejectRequestOutput{Request: request}, nil
}
