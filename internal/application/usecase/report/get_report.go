// Package report contains report-related use cases.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// GetReportInput represents the input for fetching a report.
type GetReportInput struct {
	ReportID uuid.UUID
	UserID   uuid.UUID
}

// GetReportOutput represents the output of fetching a report.
type GetReportOutput struct {
	Report *entity.Report
}

// GetReportUseCase fetches a single report, enforcing ownership.
type GetReportUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(reportRepo adapter.ReportRepository) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute fetches the report.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	report, err := uc.reportRepo.FindByID(ctx, input.ReportID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotFound) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportNotFound,
				"report not found",
				domainerror.ErrReportNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	if report.UserID != input.UserID {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnauthorizedReportAccess,
			"report does not belong to user",
			domainerror.ErrUnauthorizedReportAccess,
		)
	}

	return &GetReportOutput{Report: report}, nil
}
