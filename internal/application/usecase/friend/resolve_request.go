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

// findPendingForRecipient fetches a request and verifies that the caller is
// its recipient and that it is still pending. Accepted and rejected are
// terminal: resolving a resolved request is an error, not a no-op.
func findPendingForRecipient(
	ctx context.Context,
	friendRepo adapter.FriendRepository,
	requestID, recipientID uuid.UUID,
) (*entity.FriendRequest, error) {
	request, err := friendRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFriendRequestNotFound) {
			return nil, domainerror.NewFriendError(
				domainerror.ErrCodeFriendRequestNotFound,
				"friend request not found",
				domainerror.ErrFriendRequestNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find friend request: %w", err)
	}

	if request.RecipientID != recipientID {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeNotRequestRecipient,
			"only the recipient may resolve a friend request",
			domainerror.ErrNotRequestRecipient,
		)
	}

	if request.IsResolved() {
		return nil, domainerror.NewFriendError(
			domainerror.ErrCodeRequestAlreadyResolved,
			"friend request has already been resolved",
			domainerror.ErrRequestAlreadyResolved,
		)
	}

	return request, nil
}
