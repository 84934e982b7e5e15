// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

const (
	// MaxCategoryLength is the maximum allowed length for record categories.
	MaxCategoryLength = 100
	// MaxDescriptionLength is the maximum allowed length for record descriptions.
	MaxDescriptionLength = 1000
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	UserID      uuid.UUID
	Kind        entity.RecordKind
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *entity.Record
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(recordRepo adapter.RecordRepository) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if err := validateRecordFields(input.Kind, input.Date, input.Amount, input.Category, input.Description); err != nil {
		return nil, err
	}

	record := entity.NewRecord(
		input.UserID,
		input.Kind,
		input.Date,
		input.Amount,
		input.Category,
		input.Description,
	)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	return &CreateRecordOutput{Record: record}, nil
}

// validateRecordFields validates the user-supplied record fields.
func validateRecordFields(
	kind entity.RecordKind,
	date time.Time,
	amount decimal.Decimal,
	category string,
	description string,
) error {
	if kind != entity.RecordKindExpense && kind != entity.RecordKindIncome {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordKind,
			"record kind must be 'expense' or 'income'",
			domainerror.ErrInvalidRecordKind,
		)
	}

	if date.IsZero() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordDate,
			"record date is required",
			domainerror.ErrMissingRecordDate,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNegativeRecordAmount,
			"record amount must not be negative",
			domainerror.ErrNegativeRecordAmount,
		)
	}

	if len(category) > MaxCategoryLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			nil,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingRecordFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	return nil
}
