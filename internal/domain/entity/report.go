// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report represents a persisted snapshot of a user's finances within a date
// range. The referenced records are frozen at creation time and are not
// re-synced when the underlying records change.
type Report struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	TotalExpenses decimal.Decimal
	TotalIncomes  decimal.Decimal
	TotalBalance  decimal.Decimal
	Expenses      []*Record
	Incomes       []*Record
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewReport creates a new Report shell with zero totals for the given range.
func NewReport(userID uuid.UUID, startDate, endDate time.Time) *Report {
	now := time.Now().UTC()

	return &Report{
		ID:            uuid.New(),
		UserID:        userID,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalExpenses: decimal.Zero,
		TotalIncomes:  decimal.Zero,
		TotalBalance:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
