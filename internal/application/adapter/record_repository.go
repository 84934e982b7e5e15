// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// RecordFilter defines filter options for listing records.
type RecordFilter struct {
	UserID    uuid.UUID
	Kind      *entity.RecordKind
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// RecordPagination defines pagination options.
type RecordPagination struct {
	Page  int
	Limit int
}

// RecordRepository defines the interface for record persistence operations.
// All multi-record reads return materialized slices ordered by date ascending
// (ties preserve insertion order), ready for the analytics engine.
type RecordRepository interface {
	// Create creates a new record in the database.
	Create(ctx context.Context, record *entity.Record) error

	// FindByID retrieves a record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)

	// FindByUserAndKind retrieves all records of the given kind for a user,
	// ordered by date ascending.
	FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error)

	// FindByUserKindAndRange retrieves a user's records of the given kind whose
	// date falls within [startDate, endDate] inclusive, ordered by date ascending.
	FindByUserKindAndRange(
		ctx context.Context,
		userID uuid.UUID,
		kind entity.RecordKind,
		startDate, endDate time.Time,
	) ([]*entity.Record, error)

	// FindByFilter retrieves records based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter RecordFilter, pagination RecordPagination) (*entity.RecordListResult, error)

	// Update updates an existing record in the database.
	Update(ctx context.Context, record *entity.Record) error

	// Delete soft-deletes a record from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// BulkDelete soft-deletes multiple records owned by the user.
	// Returns the count of deleted records.
	BulkDelete(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error)
}
