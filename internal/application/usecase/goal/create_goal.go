// Package goal contains saving-goal-related use cases.
package goal

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

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// CreateGoalInput represents the input for saving goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
}

// CreateGoalOutput represents the output of saving goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingGoal
}

// CreateGoalUseCase handles saving goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the saving goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalFields(input.Name, input.TargetAmount, input.CurrentAmount, input.TargetDate); err != nil {
		return nil, err
	}

	goal := entity.NewSavingGoal(
		input.UserID,
		input.Name,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create saving goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// validateGoalFields validates the user-supplied saving goal fields.
// A positive target amount is required up front so the goal percentage is
// always computable later.
func validateGoalFields(name string, targetAmount, currentAmount decimal.Decimal, targetDate time.Time) error {
	if name == "" || len(name) > MaxGoalNameLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxGoalNameLength),
			nil,
		)
	}

	if !targetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if currentAmount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}

	if targetDate.IsZero() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingTargetDate,
			"target date is required",
			domainerror.ErrMissingTargetDate,
		)
	}

	return nil
}
