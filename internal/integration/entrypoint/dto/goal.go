// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ecap-app/backend/internal/application/usecase/goal"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for saving goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64 `json:"target_amount" binding:"required"`
	CurrentAmount float64 `json:"current_amount,omitempty"`
	TargetDate    string  `json:"target_date" binding:"required"`
}

// UpdateGoalRequest represents the request body for saving goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
	TargetDate    *string  `json:"target_date,omitempty"`
}

// GoalResponse represents a single saving goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	TargetDate    string    `json:"target_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing saving goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalSummaryItemResponse represents one goal in the goal summary response.
type GoalSummaryItemResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  string  `json:"target_amount"`
	CurrentAmount string  `json:"current_amount"`
	Percentage    float64 `json:"percentage"`
	DaysRemaining int     `json:"days_remaining"`
}

// GoalSummaryResponse represents the saving goal summary response.
type GoalSummaryResponse struct {
	Goals []GoalSummaryItemResponse `json:"goals"`
}

// ToGoalResponse converts a domain SavingGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingGoal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		UserID:        g.UserID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		TargetDate:    g.TargetDate.Format("2006-01-02"),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalListResponse converts a slice of SavingGoal entities to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.SavingGoal) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: items}
}

// ToGoalSummaryResponse converts a GetGoalSummaryOutput to a GoalSummaryResponse DTO.
func ToGoalSummaryResponse(output *goal.GetGoalSummaryOutput) GoalSummaryResponse {
	items := make([]GoalSummaryItemResponse, len(output.Goals))
	for i, item := range output.Goals {
		items[i] = GoalSummaryItemResponse{
			ID:            item.ID.String(),
			Name:          item.Name,
			TargetAmount:  item.TargetAmount.String(),
			CurrentAmount: item.CurrentAmount.String(),
			Percentage:    item.Percentage,
			DaysRemaining: item.DaysRemaining,
		}
	}
	return GoalSummaryResponse{Goals: items}
}
