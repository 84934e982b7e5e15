// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report persistence operations.
type ReportRepository interface {
	// Save persists a report together with its snapshot record associations.
	// Any prior associations are replaced, and totals and associations are
	// written within a single database transaction.
	Save(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a report by its ID, including its snapshot records.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// FindByUser retrieves all reports for a given user, newest first,
	// including their snapshot records.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error)
}
