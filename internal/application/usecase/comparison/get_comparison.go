// Package comparison contains the friend comparison use case.
package comparison

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/application/usecase/analytics"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// GetComparisonInput represents the input for building a comparison view.
type GetComparisonInput struct {
	UserID uuid.UUID
}

// FinancialSnapshot aggregates one user's finances for side-by-side display.
type FinancialSnapshot struct {
	UserID                uuid.UUID
	Username              string
	TotalIncome           decimal.Decimal
	TotalExpense          decimal.Decimal
	Balance               decimal.Decimal
	MonthlyIncomeAverage  decimal.Decimal
	MonthlyExpenseAverage decimal.Decimal
	// GoalProgress is the mean completion ratio across the user's saving
	// goals, zero when the user has none.
	GoalProgress float64
}

// GetComparisonOutput represents the output of the comparison use case.
type GetComparisonOutput struct {
	Self    *FinancialSnapshot
	Friends []*FinancialSnapshot
}

// GetComparisonUseCase builds financial snapshots for a user and everyone the
// user shares an accepted friend request with. Friends' data is read-only
// here; no comparison path ever mutates another user's records or goals.
type GetComparisonUseCase struct {
	recordRepo adapter.RecordRepository
	goalRepo   adapter.GoalRepository
	friendRepo adapter.FriendRepository
	userRepo   adapter.UserRepository
}

// NewGetComparisonUseCase creates a new GetComparisonUseCase instance.
func NewGetComparisonUseCase(
	recordRepo adapter.RecordRepository,
	goalRepo adapter.GoalRepository,
	friendRepo adapter.FriendRepository,
	userRepo adapter.UserRepository,
) *GetComparisonUseCase {
	return &GetComparisonUseCase{
		recordRepo: recordRepo,
		goalRepo:   goalRepo,
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// Execute builds the comparison view for the requesting user.
func (uc *GetComparisonUseCase) Execute(ctx context.Context, input GetComparisonInput) (*GetComparisonOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	self, err := uc.snapshot(ctx, user)
	if err != nil {
		return nil, err
	}

	friends, err := uc.friendRepo.FindAcceptedFriends(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	friendSnapshots := make([]*FinancialSnapshot, 0, len(friends))
	for _, friend := range friends {
		snap, err := uc.snapshot(ctx, friend)
		if err != nil {
			return nil, err
		}
		friendSnapshots = append(friendSnapshots, snap)
	}

	return &GetComparisonOutput{Self: self, Friends: friendSnapshots}, nil
}

func (uc *GetComparisonUseCase) snapshot(ctx context.Context, user *entity.User) (*FinancialSnapshot, error) {
	incomes, err := uc.recordRepo.FindByUserAndKind(ctx, user.ID, entity.RecordKindIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incomes for user %s: %w", user.ID, err)
	}

	expenses, err := uc.recordRepo.FindByUserAndKind(ctx, user.ID, entity.RecordKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for user %s: %w", user.ID, err)
	}

	goals, err := uc.goalRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals for user %s: %w", user.ID, err)
	}

	progress := 0.0
	if len(goals) > 0 {
		progress, err = analytics.SavingGoalProgress(goals)
		if err != nil {
			return nil, fmt.Errorf("failed to compute goal progress for user %s: %w", user.ID, err)
		}
	}

	totalIncome := analytics.Total(incomes)
	totalExpense := analytics.Total(expenses)

	return &FinancialSnapshot{
		UserID:                user.ID,
		Username:              user.Username,
		TotalIncome:           totalIncome,
		TotalExpense:          totalExpense,
		Balance:               totalIncome.Sub(totalExpense),
		MonthlyIncomeAverage:  analytics.MonthlyAverage(incomes),
		MonthlyExpenseAverage: analytics.MonthlyAverage(expenses),
		GoalProgress:          progress,
	}, nil
}
