// Package analytics contains the financial analytics engine.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// GetRecordSummaryInput represents the input for getting a record summary.
type GetRecordSummaryInput struct {
	UserID uuid.UUID
	Kind   entity.RecordKind
}

// SeriesPoint is one historical (date, amount) observation.
type SeriesPoint struct {
	Date   time.Time
	Amount decimal.Decimal
}

// GetRecordSummaryOutput represents the computed summary for one record kind.
type GetRecordSummaryOutput struct {
	Total           decimal.Decimal
	MinMaxAvg       MinMaxAvg
	StdDev          float64
	MonthlyAverage  decimal.Decimal
	TrendSlope      float64
	Historical      []SeriesPoint
	ProjectedDates  []string
	ProjectedValues []float64
	Breakdown       map[string]CategoryShare
}

// GetRecordSummaryUseCase aggregates a user's expense or income history into
// summary statistics plus a short projected series.
type GetRecordSummaryUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetRecordSummaryUseCase creates a new GetRecordSummaryUseCase instance.
func NewGetRecordSummaryUseCase(recordRepo adapter.RecordRepository) *GetRecordSummaryUseCase {
	return &GetRecordSummaryUseCase{
		recordRepo: recordRepo,
	}
}

// Execute computes the summary for the given user and record kind.
func (uc *GetRecordSummaryUseCase) Execute(
	ctx context.Context,
	input GetRecordSummaryInput,
) (*GetRecordSummaryOutput, error) {
	records, err := uc.recordRepo.FindByUserAndKind(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s records: %w", input.Kind, err)
	}

	breakdown, err := CategoryBreakdown(records)
	if err != nil {
		return nil, err
	}

	historical := make([]SeriesPoint, len(records))
	for i, r := range records {
		historical[i] = SeriesPoint{Date: r.Date, Amount: r.Amount}
	}

	projectedDates, projectedValues := ForecastFromLatest(records, DefaultForecastDays)

	return &GetRecordSummaryOutput{
		Total:           Total(records),
		MinMaxAvg:       ComputeMinMaxAvg(records, time.Now().UTC()),
		StdDev:          StandardDeviation(records),
		MonthlyAverage:  MonthlyAverage(records),
		TrendSlope:      FitTrend(records).Slope(),
		Historical:      historical,
		ProjectedDates:  projectedDates,
		ProjectedValues: projectedValues,
		Breakdown:       breakdown,
	}, nil
}
