// Package analytics contains the financial analytics engine: aggregate
// statistics, trend fitting and forecasting over a user's record history.
// All functions operate on materialized record slices; nothing here touches
// the datastore.
package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// ValueAtDate pairs an amount with the date on which it occurred.
type ValueAtDate struct {
	Value decimal.Decimal
	Date  time.Time
}

// MinMaxAvg holds the minimum, maximum and average amounts of a record set,
// each with a representative date.
type MinMaxAvg struct {
	Min ValueAtDate
	Max ValueAtDate
	Avg ValueAtDate
}

// CategoryShare holds the total amount of one category and its share of the
// grand total, as a fraction in [0, 1].
type CategoryShare struct {
	Total      decimal.Decimal
	Percentage float64
}

// Total returns the exact sum of amounts. An empty record set sums to zero.
func Total(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// ComputeMinMaxAvg returns the minimum, maximum and average amounts of the
// record set. The date attached to each value is the date of the first record
// achieving that amount; when no record matches (the average usually falls
// between records), the date falls back to now. An empty record set yields
// zero values dated now.
func ComputeMinMaxAvg(records []*entity.Record, now time.Time) MinMaxAvg {
	if len(records) == 0 {
		zero := ValueAtDate{Value: decimal.Zero, Date: now}
		return MinMaxAvg{Min: zero, Max: zero, Avg: zero}
	}

	minVal := records[0].Amount
	maxVal := records[0].Amount
	for _, r := range records[1:] {
		if r.Amount.LessThan(minVal) {
			minVal = r.Amount
		}
		if r.Amount.GreaterThan(maxVal) {
			maxVal = r.Amount
		}
	}
	avgVal := Total(records).Div(decimal.NewFromInt(int64(len(records))))

	return MinMaxAvg{
		Min: ValueAtDate{Value: minVal, Date: dateOfAmount(records, minVal, now)},
		Max: ValueAtDate{Value: maxVal, Date: dateOfAmount(records, maxVal, now)},
		Avg: ValueAtDate{Value: avgVal, Date: dateOfAmount(records, avgVal, now)},
	}
}

// dateOfAmount returns the date of the first record whose amount equals value,
// or fallback when none matches.
func dateOfAmount(records []*entity.Record, value decimal.Decimal, fallback time.Time) time.Time {
	for _, r := range records {
		if r.Amount.Equal(value) {
			return r.Date
		}
	}
	return fallback
}

// StandardDeviation returns the population standard deviation of the amounts.
// An empty record set has a deviation of zero.
func StandardDeviation(records []*entity.Record) float64 {
	if len(records) == 0 {
		return 0
	}

	n := float64(len(records))
	var sum float64
	for _, r := range records {
		sum += r.Amount.InexactFloat64()
	}
	mean := sum / n

	var sqDiff float64
	for _, r := range records {
		d := r.Amount.InexactFloat64() - mean
		sqDiff += d * d
	}
	return math.Sqrt(sqDiff / n)
}

// CategoryBreakdown returns per-category totals and their share of the grand
// total. An empty record set yields an empty map; a non-empty set whose grand
// total is zero cannot be broken down into shares and is rejected.
func CategoryBreakdown(records []*entity.Record) (map[string]CategoryShare, error) {
	breakdown := make(map[string]CategoryShare, len(records))
	if len(records) == 0 {
		return breakdown, nil
	}

	grandTotal := Total(records)
	if grandTotal.IsZero() {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeZeroGrandTotal,
			"cannot compute category percentages: grand total is zero",
			domainerror.ErrZeroGrandTotal,
		)
	}

	totals := make(map[string]decimal.Decimal, len(records))
	for _, r := range records {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}

	for category, total := range totals {
		percentage, _ := total.Div(grandTotal).Float64()
		breakdown[category] = CategoryShare{
			Total:      total,
			Percentage: percentage,
		}
	}
	return breakdown, nil
}

// MonthlyAverage groups the records by calendar month, sums each month and
// averages across the months that have at least one record. No months yields
// zero.
func MonthlyAverage(records []*entity.Record) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}

	type month struct {
		year  int
		month time.Month
	}
	monthTotals := make(map[month]decimal.Decimal)
	for _, r := range records {
		key := month{year: r.Date.Year(), month: r.Date.Month()}
		monthTotals[key] = monthTotals[key].Add(r.Amount)
	}

	sum := decimal.Zero
	for _, total := range monthTotals {
		sum = sum.Add(total)
	}
	return sum.Div(decimal.NewFromInt(int64(len(monthTotals))))
}

// SavingGoalProgress returns the mean completion ratio (current/target) across
// the goals, rounded to two decimals. No goals yields zero. A goal with a zero
// target amount has no defined ratio and is rejected.
func SavingGoalProgress(goals []*entity.SavingGoal) (float64, error) {
	if len(goals) == 0 {
		return 0, nil
	}

	sum := decimal.Zero
	for _, g := range goals {
		if g.TargetAmount.IsZero() {
			return 0, domainerror.NewAnalyticsError(
				domainerror.ErrCodeZeroTargetAmount,
				"cannot compute progress for goal "+g.Name+": target amount is zero",
				domainerror.ErrZeroTargetAmount,
			)
		}
		sum = sum.Add(g.CurrentAmount.Div(g.TargetAmount))
	}

	progress, _ := sum.Div(decimal.NewFromInt(int64(len(goals)))).Round(2).Float64()
	return progress, nil
}
