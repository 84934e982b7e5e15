// Package record contains record-related use cases.
package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for record update. Nil fields are
// left unchanged.
type UpdateRecordInput struct {
	RecordID    uuid.UUID
	UserID      uuid.UUID
	Date        *time.Time
	Amount      *decimal.Decimal
	Category    *string
	Description *string
}

// UpdateRecordOutput represents the output of record update.
type UpdateRecordOutput struct {
	Record *entity.Record
}

// UpdateRecordUseCase handles record update logic.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"record not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}

	if record.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Amount != nil {
		record.Amount = *input.Amount
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	if input.Description != nil {
		record.Description = *input.Description
	}

	if err := validateRecordFields(record.Kind, record.Date, record.Amount, record.Category, record.Description); err != nil {
		return nil, err
	}

	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return &UpdateRecordOutput{Record: record}, nil
}
