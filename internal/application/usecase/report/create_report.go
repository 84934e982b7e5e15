// Package report contains report-related use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/application/usecase/analytics"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// CreateReportInput represents the input for report creation.
type CreateReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CreateReportOutput represents the output of report creation.
type CreateReportOutput struct {
	Report *entity.Report
}

// CreateReportUseCase snapshots a user's records within a date range into a
// persisted report. The snapshot is taken once; later record changes do not
// flow back into the report.
type CreateReportUseCase struct {
	recordRepo adapter.RecordRepository
	reportRepo adapter.ReportRepository
}

// NewCreateReportUseCase creates a new CreateReportUseCase instance.
func NewCreateReportUseCase(
	recordRepo adapter.RecordRepository,
	reportRepo adapter.ReportRepository,
) *CreateReportUseCase {
	return &CreateReportUseCase{
		recordRepo: recordRepo,
		reportRepo: reportRepo,
	}
}

// Execute performs the report creation.
func (uc *CreateReportUseCase) Execute(ctx context.Context, input CreateReportInput) (*CreateReportOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	report := entity.NewReport(input.UserID, input.StartDate, input.EndDate)

	expenses, err := uc.recordRepo.FindByUserKindAndRange(
		ctx, input.UserID, entity.RecordKindExpense, input.StartDate, input.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense records: %w", err)
	}

	incomes, err := uc.recordRepo.FindByUserKindAndRange(
		ctx, input.UserID, entity.RecordKindIncome, input.StartDate, input.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income records: %w", err)
	}

	report.Expenses = expenses
	report.Incomes = incomes
	report.TotalExpenses = analytics.Total(expenses)
	report.TotalIncomes = analytics.Total(incomes)
	report.TotalBalance = report.TotalIncomes.Sub(report.TotalExpenses)

	if err := uc.reportRepo.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	return &CreateReportOutput{Report: report}, nil
}

// validateInput validates the input parameters. An inverted range would only
// ever produce an empty report, so it is rejected up front.
func (uc *CreateReportUseCase) validateInput(input CreateReportInput) error {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingReportDates,
			"start_date and end_date are required",
			domainerror.ErrMissingReportDates,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidReportDateRange,
		)
	}

	return nil
}
