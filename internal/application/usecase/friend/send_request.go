// Package friend contains friend-request-related use cases.
package friend

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// SendRequestInput represents the input for sending a friend request.
type SendRequestInput struct {
	RequesterID uuid.UUID
	RecipientID uuid.UUID
}

// SendRequestOutput represents the output of sending a friend request.
type SendRequestOutput struct {
	Request *entity.FriendRequest
	// Created is false when an existing request for the pair was returned.
	Created bool
}

// SendRequestUseCase handles sending friend requests. Sending is idempotent
// per ordered (requester, recipient) pair: re-sending returns the existing
// request unchanged, whatever its state.
type SendRequestUseCase struct {
	friendRepo adapter.FriendRepository
	userRepo   adapter.UserRepository
}

// NewSendRequestUseCase creates a new SendRequestUseCase instance.
func NewSendRequestUseCase(friendRepo adapter.FriendRepository, userRepo adapter.UserRepository) *SendRequestUseCase {
	return &SendRequestUseCase{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// Execute performs the friend request creation.
func (uc *SendRequestUseCase) Execute(ctx context.Context, input SendRequestInput) (*SendRequestOutput, error) {
	if input.RequesterID == input.RecipientID {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeSelfFriendRequest,
			"cannot send a friend request to yourself",
			domainerror.ErrSelfFriendRequest,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, domainerror.ErrFriendUserNotFound) {
			return nil, domainerror.NewFriendError(
				domainerror.ErrCodeFriendUserNotFound,
				"recipient user not found",
				domainerror.ErrFriendUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	existing, err := uc.friendRepo.FindByPair(ctx, input.RequesterID, input.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up friend request: %w", err)
	}
	if existing != nil {
		return &SendRequestOutput{Request: existing, Created: false}, nil
	}

	request := entity.NewFriendRequest(input.RequesterID, input.RecipientID)
	if err := uc.friendRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	return &SendRequestOutput{Request: request, Created: true}, nil
}
