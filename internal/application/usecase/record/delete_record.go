// Package record contains record-related use cases.
package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	RecordID uuid.UUID
	UserID   uuid.UUID
}

// DeleteRecordUseCase handles record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record deletion.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"record not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to find record: %w", err)
	}

	if record.UserID != input.UserID {
		return domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.recordRepo.Delete(ctx, input.RecordID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
