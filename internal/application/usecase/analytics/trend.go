// Package analytics contains the financial analytics engine.
package analytics

import (
	"sort"
	"time"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// DefaultForecastDays is the number of days projected when the caller does not
// ask for a specific horizon.
const DefaultForecastDays = 10

// dateLayout is the wire format for dates crossing the engine boundary.
const dateLayout = "2006-01-02"

// TrendModel holds an ordinary least-squares linear fit of amount on ordinal
// day. A nil model is the degenerate case (fewer than two points, or all
// points on one day) and predicts zero everywhere.
type TrendModel struct {
	slope     float64
	intercept float64
}

// Slope returns the fitted per-day coefficient, or zero for a nil model.
func (m *TrendModel) Slope() float64 {
	if m == nil {
		return 0
	}
	return m.slope
}

// PredictAt evaluates the fitted line at the given date. A nil model predicts
// zero.
func (m *TrendModel) PredictAt(date time.Time) float64 {
	if m == nil {
		return 0
	}
	return m.slope*dayOrdinal(date) + m.intercept
}

// Predict evaluates the fitted line for each date in order.
func (m *TrendModel) Predict(dates []time.Time) []float64 {
	values := make([]float64, len(dates))
	for i, d := range dates {
		values[i] = m.PredictAt(d)
	}
	return values
}

// FitTrend fits a least-squares line of amount on ordinal day over the record
// set. The records are stably sorted by date first, so ties keep their
// original order. Fewer than two points, or points confined to a single day,
// produce a nil model.
func FitTrend(records []*entity.Record) *TrendModel {
	if len(records) < 2 {
		return nil
	}

	sorted := sortedByDate(records)

	n := float64(len(sorted))
	var sumX, sumY, sumXY, sumX2 float64
	for _, r := range sorted {
		x := dayOrdinal(r.Date)
		y := r.Amount.InexactFloat64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return nil
	}

	slope := (n*sumXY - sumX*sumY) / denom
	return &TrendModel{
		slope:     slope,
		intercept: (sumY - slope*sumX) / n,
	}
}

// Forecast fits a trend over the records and projects it for days consecutive
// dates beginning at startDate. Dates are returned as YYYY-MM-DD strings. An
// empty record set yields empty sequences; a degenerate model yields flat zero
// predictions.
func Forecast(records []*entity.Record, startDate time.Time, days int) ([]string, []float64) {
	if len(records) == 0 {
		return []string{}, []float64{}
	}

	model := FitTrend(records)

	dates := make([]time.Time, days)
	dateStrings := make([]string, days)
	for i := 0; i < days; i++ {
		d := startDate.AddDate(0, 0, i)
		dates[i] = d
		dateStrings[i] = d.Format(dateLayout)
	}
	return dateStrings, model.Predict(dates)
}

// ForecastFromLatest projects forward from the most recent date present in the
// records rather than from an externally supplied start date.
func ForecastFromLatest(records []*entity.Record, days int) ([]string, []float64) {
	if len(records) == 0 {
		return []string{}, []float64{}
	}

	latest := records[0].Date
	for _, r := range records[1:] {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return Forecast(records, latest, days)
}

// sortedByDate returns a copy of the records stably sorted by date ascending.
func sortedByDate(records []*entity.Record) []*entity.Record {
	sorted := make([]*entity.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// dayOrdinal converts a date to the regression's independent variable: whole
// days since the Unix epoch.
func dayOrdinal(t time.Time) float64 {
	return float64(t.Unix() / 86400)
}
