// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingGoal represents a savings target a user is working towards.
type SavingGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewSavingGoal creates a new SavingGoal entity.
func NewSavingGoal(
	userID uuid.UUID,
	name string,
	targetAmount decimal.Decimal,
	currentAmount decimal.Decimal,
	targetDate time.Time,
) *SavingGoal {
	now := time.Now().UTC()

	return &SavingGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DaysRemaining returns the number of whole days until the target date,
// clamped at zero once the date has passed.
func (g *SavingGoal) DaysRemaining(now time.Time) int {
	days := int(g.TargetDate.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
