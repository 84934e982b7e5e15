package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

type fakeRecordRepo struct {
	records []*entity.Record
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *entity.Record) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRecordRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

func (f *fakeRecordRepo) FindByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.RecordKind) ([]*entity.Record, error) {
	var out []*entity.Record
	for _, r := range f.records {
		if r.UserID == userID && r.Kind == kind {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) FindByUserKindAndRange(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.RecordKind,
	startDate, endDate time.Time,
) ([]*entity.Record, error) {
	var out []*entity.Record
	for _, r := range f.records {
		if r.UserID != userID || r.Kind != kind {
			continue
		}
		if r.Date.Before(startDate) || r.Date.After(endDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecordRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter, pagination adapter.RecordPagination) (*entity.RecordListResult, error) {
	return &entity.RecordListResult{}, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, record *entity.Record) error { return nil }

func (f *fakeRecordRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeRecordRepo) BulkDelete(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeReportRepo struct {
	reports map[uuid.UUID]*entity.Report
	saveErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*entity.Report)}
}

func (f *fakeReportRepo) Save(ctx context.Context, report *entity.Report) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, domainerror.ErrReportNotFound
	}
	return report, nil
}

func (f *fakeReportRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var out []*entity.Report
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func seedRecord(repo *fakeRecordRepo, userID uuid.UUID, kind entity.RecordKind, day string, amount int64) {
	record := entity.NewRecord(userID, kind, date(day), decimal.NewFromInt(amount), "general", "")
	repo.records = append(repo.records, record)
}

func TestCreateReport(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	recordRepo := &fakeRecordRepo{}
	seedRecord(recordRepo, userID, entity.RecordKindExpense, "2026-01-10", 200)
	seedRecord(recordRepo, userID, entity.RecordKindExpense, "2026-01-20", 100)
	seedRecord(recordRepo, userID, entity.RecordKindIncome, "2026-01-05", 3000)
	seedRecord(recordRepo, userID, entity.RecordKindExpense, "2026-02-10", 400)
	seedRecord(recordRepo, uuid.New(), entity.RecordKindExpense, "2026-01-15", 999)

	reportRepo := newFakeReportRepo()
	uc := NewCreateReportUseCase(recordRepo, reportRepo)

	output, err := uc.Execute(ctx, CreateReportInput{
		UserID:    userID,
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-01-31"),
	})
	require.NoError(t, err)

	report := output.Report
	assert.Equal(t, "300", report.TotalExpenses.String())
	assert.Equal(t, "3000", report.TotalIncomes.String())
	assert.Equal(t, "2700", report.TotalBalance.String())
	assert.Len(t, report.Expenses, 2)
	assert.Len(t, report.Incomes, 1)

	saved, err := reportRepo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.TotalBalance, saved.TotalBalance)
}

func TestCreateReportEmptyPeriod(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc := NewCreateReportUseCase(&fakeRecordRepo{}, newFakeReportRepo())

	output, err := uc.Execute(ctx, CreateReportInput{
		UserID:    userID,
		StartDate: date("2025-01-01"),
		EndDate:   date("2025-01-31"),
	})
	require.NoError(t, err)

	assert.True(t, output.Report.TotalExpenses.IsZero())
	assert.True(t, output.Report.TotalIncomes.IsZero())
	assert.True(t, output.Report.TotalBalance.IsZero())
	assert.Empty(t, output.Report.Expenses)
	assert.Empty(t, output.Report.Incomes)
}

func TestCreateReportValidation(t *testing.T) {
	ctx := context.Background()
	reportRepo := newFakeReportRepo()
	uc := NewCreateReportUseCase(&fakeRecordRepo{}, reportRepo)

	_, err := uc.Execute(ctx, CreateReportInput{
		UserID:    uuid.New(),
		StartDate: date("2026-01-31"),
		EndDate:   date("2026-01-01"),
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidReportDateRange)

	_, err = uc.Execute(ctx, CreateReportInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrMissingReportDates)

	assert.Empty(t, reportRepo.reports)
}

func TestGetReportOwnership(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	reportRepo := newFakeReportRepo()
	report := entity.NewReport(userID, date("2026-01-01"), date("2026-01-31"))
	require.NoError(t, reportRepo.Save(ctx, report))

	uc := NewGetReportUseCase(reportRepo)

	output, err := uc.Execute(ctx, GetReportInput{ReportID: report.ID, UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, report.ID, output.Report.ID)

	_, err = uc.Execute(ctx, GetReportInput{ReportID: report.ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrUnauthorizedReportAccess)

	_, err = uc.Execute(ctx, GetReportInput{ReportID: uuid.New(), UserID: userID})
	assert.ErrorIs(t, err, domainerror.ErrReportNotFound)
}

func TestCreateReportSaveFailure(t *testing.T) {
	ctx := context.Background()

	reportRepo := newFakeReportRepo()
	reportRepo.saveErr = errors.New("connection lost")
	uc := NewCreateReportUseCase(&fakeRecordRepo{}, reportRepo)

	_, err := uc.Execute(ctx, CreateReportInput{
		UserID:    uuid.New(),
		StartDate: date("2026-01-01"),
		EndDate:   date("2026-01-31"),
	})
	assert.ErrorContains(t, err, "failed to save report")
}
