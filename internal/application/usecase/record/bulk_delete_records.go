// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// BulkDeleteRecordsInput represents the input for bulk record deletion.
type BulkDeleteRecordsInput struct {
	RecordIDs []uuid.UUID
	UserID    uuid.UUID
}

// BulkDeleteRecordsOutput represents the output of bulk record deletion.
type BulkDeleteRecordsOutput struct {
	DeletedCount int64
}

// BulkDeleteRecordsUseCase handles bulk record deletion logic.
type BulkDeleteRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewBulkDeleteRecordsUseCase creates a new BulkDeleteRecordsUseCase instance.
func NewBulkDeleteRecordsUseCase(recordRepo adapter.RecordRepository) *BulkDeleteRecordsUseCase {
	return &BulkDeleteRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the bulk record deletion. Only records owned by the user
// are deleted; IDs belonging to other users are skipped by the repository.
func (uc *BulkDeleteRecordsUseCase) Execute(ctx context.Context, input BulkDeleteRecordsInput) (*BulkDeleteRecordsOutput, error) {
	if len(input.RecordIDs) == 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			"record IDs list cannot be empty",
			nil,
		)
	}

	deletedCount, err := uc.recordRepo.BulkDelete(ctx, input.RecordIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete records: %w", err)
	}

	return &BulkDeleteRecordsOutput{DeletedCount: deletedCount}, nil
}
