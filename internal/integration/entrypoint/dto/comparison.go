// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ecap-app/backend/internal/application/usecase/comparison"
)

// FinancialSnapshotResponse represents one user's aggregated finances in the
// comparison view.
type FinancialSnapshotResponse struct {
	UserID                string  `json:"user_id"`
	Username              string  `json:"username"`
	TotalIncome           string  `json:"total_income"`
	TotalExpense          string  `json:"total_expense"`
	Balance               string  `json:"balance"`
	MonthlyIncomeAverage  string  `json:"monthly_income_average"`
	MonthlyExpenseAverage string  `json:"monthly_expense_average"`
	GoalProgress          float64 `json:"goal_progress"`
}

// ComparisonResponse represents the comparison view response.
type ComparisonResponse struct {
	Self    FinancialSnapshotResponse   `json:"self"`
	Friends []FinancialSnapshotResponse `json:"friends"`
}

// ToComparisonResponse converts a GetComparisonOutput to a ComparisonResponse DTO.
func ToComparisonResponse(output *comparison.GetComparisonOutput) ComparisonResponse {
	friends := make([]FinancialSnapshotResponse, len(output.Friends))
	for i, snap := range output.Friends {
		friends[i] = toSnapshotResponse(snap)
	}
	return ComparisonResponse{
		Self:    toSnapshotResponse(output.Self),
		Friends: friends,
	}
}

func toSnapshotResponse(snap *comparison.FinancialSnapshot) FinancialSnapshotResponse {
	return FinancialSnapshotResponse{
		UserID:                snap.UserID.String(),
		Username:              snap.Username,
		TotalIncome:           snap.TotalIncome.String(),
		TotalExpense:          snap.TotalExpense.String(),
		Balance:               snap.Balance.String(),
		MonthlyIncomeAverage:  snap.MonthlyIncomeAverage.String(),
		MonthlyExpenseAverage: snap.MonthlyExpenseAverage.String(),
		GoalProgress:          snap.GoalProgress,
	}
}
