// Package goal contains saving-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/application/adapter"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// GetGoalSummaryInput represents the input for getting the saving goal summary.
type GetGoalSummaryInput struct {
	UserID uuid.UUID
}

// GoalSummaryItem represents one saving goal in the summary.
type GoalSummaryItem struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Percentage    float64
	DaysRemaining int
}

// GetGoalSummaryOutput represents the output of the saving goal summary.
type GetGoalSummaryOutput struct {
	Goals []GoalSummaryItem
}

// GetGoalSummaryUseCase computes completion percentage and days remaining for
// each of a user's saving goals.
type GetGoalSummaryUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalSummaryUseCase creates a new GetGoalSummaryUseCase instance.
func NewGetGoalSummaryUseCase(goalRepo adapter.GoalRepository) *GetGoalSummaryUseCase {
	return &GetGoalSummaryUseCase{
		goalRepo: goalRepo,
	}
}

// Execute computes the saving goal summary for the given user.
func (uc *GetGoalSummaryUseCase) Execute(ctx context.Context, input GetGoalSummaryInput) (*GetGoalSummaryOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saving goals: %w", err)
	}

	now := time.Now().UTC()
	items := make([]GoalSummaryItem, 0, len(goals))
	for _, g := range goals {
		if g.TargetAmount.IsZero() {
			return nil, domainerror.NewAnalyticsError(
				domainerror.ErrCodeZeroTargetAmount,
				"cannot compute percentage for goal "+g.Name+": target amount is zero",
				domainerror.ErrZeroTargetAmount,
			)
		}

		percentage, _ := g.CurrentAmount.
			Mul(decimal.NewFromInt(100)).
			Div(g.TargetAmount).
			Round(2).
			Float64()

		items = append(items, GoalSummaryItem{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Percentage:    percentage,
			DaysRemaining: g.DaysRemaining(now),
		})
	}

	return &GetGoalSummaryOutput{Goals: items}, nil
}
