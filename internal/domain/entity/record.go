// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind represents the kind of financial record (expense or income).
type RecordKind string

const (
	RecordKindExpense RecordKind = "expense"
	RecordKindIncome  RecordKind = "income"
)

// Record represents a single financial event (one expense or income entry).
// Amounts are always non-negative; the kind determines the sign of its
// contribution to a balance.
type Record struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        RecordKind
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewRecord creates a new Record entity.
func NewRecord(
	userID uuid.UUID,
	kind RecordKind,
	date time.Time,
	amount decimal.Decimal,
	category string,
	description string,
) *Record {
	now := time.Now().UTC()

	return &Record{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RecordListResult represents the result of listing records.
type RecordListResult struct {
	Records    []*Record
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
