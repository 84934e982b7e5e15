// Package report contains report-related use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// ListReportsInput represents the input for listing reports.
type ListReportsInput struct {
	UserID uuid.UUID
}

// ListReportsOutput represents the output of listing reports.
type ListReportsOutput struct {
	Reports []*entity.Report
}

// ListReportsUseCase handles report listing logic.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute performs the report listing.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	reports, err := uc.reportRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &ListReportsOutput{Reports: reports}, nil
}
