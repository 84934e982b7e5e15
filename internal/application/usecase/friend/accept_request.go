// Package friend contains friend-request-related use cases.
package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// AcceptRequestInput represents the input for accepting a friend request.
type AcceptRequestInput struct {
	RequestID uuid.UUID
	UserID    uuid.UUID
}

// AcceptRequestOutput represents the output of accepting a friend request.
type AcceptRequestOutput struct {
	Request *entity.FriendRequest
}

// AcceptRequestUseCase handles accepting friend requests.
type AcceptRequestUseCase struct {
	friendRepo adapter.FriendRepository
}

// NewAcceptRequestUseCase creates a new AcceptRequestUseCase instance.
func NewAcceptRequestUseCase(friendRepo adapter.FriendRepository) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{
		friendRepo: friendRepo,
	}
}

// Execute transitions a pending request to accepted. Only the recipient may
// accept, and only while the request is pending.
func (uc *AcceptRequestUseCase) Execute(ctx context.Context, input AcceptRequestInput) (*AcceptRequestOutput, error) {
	request, err := findPendingForRecipient(ctx, uc.friendRepo, input.RequestID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.friendRepo.UpdateStatus(ctx, request.ID, entity.FriendRequestStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to accept friend request: %w", err)
	}

	request.Status = entity.FriendRequestStatusAccepted
	return &AcceptRequestOutput{Request: request}, nil
}
