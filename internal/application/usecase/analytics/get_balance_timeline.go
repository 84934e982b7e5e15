// Package analytics contains the financial analytics engine.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// GetBalanceTimelineInput represents the input for getting a balance timeline.
type GetBalanceTimelineInput struct {
	UserID uuid.UUID
}

// GetBalanceTimelineOutput represents the computed balance timeline.
type GetBalanceTimelineOutput struct {
	Timeline []BalancePoint
}

// GetBalanceTimelineUseCase merges a user's expense and income history into a
// daily cumulative balance curve.
type GetBalanceTimelineUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetBalanceTimelineUseCase creates a new GetBalanceTimelineUseCase instance.
func NewGetBalanceTimelineUseCase(recordRepo adapter.RecordRepository) *GetBalanceTimelineUseCase {
	return &GetBalanceTimelineUseCase{
		recordRepo: recordRepo,
	}
}

// Execute computes the balance timeline for the given user.
func (uc *GetBalanceTimelineUseCase) Execute(
	ctx context.Context,
	input GetBalanceTimelineInput,
) (*GetBalanceTimelineOutput, error) {
	incomes, err := uc.recordRepo.FindByUserAndKind(ctx, input.UserID, entity.RecordKindIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income records: %w", err)
	}

	expenses, err := uc.recordRepo.FindByUserAndKind(ctx, input.UserID, entity.RecordKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense records: %w", err)
	}

	return &GetBalanceTimelineOutput{
		Timeline: BalanceTimeline(incomes, expenses),
	}, nil
}
