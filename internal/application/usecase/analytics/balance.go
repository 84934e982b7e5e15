// Package analytics contains the financial analytics engine.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// BalancePoint is one day in the cumulative balance timeline.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// BalanceTimeline merges income and expense records into a daily cumulative
// balance curve spanning the inclusive envelope of both series. Days without
// records contribute zero. If either series is empty the timeline is empty.
// Accumulation stays in decimals so long histories do not drift.
func BalanceTimeline(incomes, expenses []*entity.Record) []BalancePoint {
	if len(incomes) == 0 || len(expenses) == 0 {
		return []BalancePoint{}
	}

	incomeByDay := sumByDay(incomes)
	expenseByDay := sumByDay(expenses)

	start, end := envelope(incomes, expenses)

	var timeline []BalancePoint
	cumulativeIncome := decimal.Zero
	cumulativeExpense := decimal.Zero
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cumulativeIncome = cumulativeIncome.Add(incomeByDay[day])
		cumulativeExpense = cumulativeExpense.Add(expenseByDay[day])
		timeline = append(timeline, BalancePoint{
			Date:    day,
			Balance: cumulativeIncome.Sub(cumulativeExpense),
		})
	}
	return timeline
}

// sumByDay groups the records by calendar day and sums amounts per day.
func sumByDay(records []*entity.Record) map[time.Time]decimal.Decimal {
	sums := make(map[time.Time]decimal.Decimal, len(records))
	for _, r := range records {
		day := truncateToDay(r.Date)
		sums[day] = sums[day].Add(r.Amount)
	}
	return sums
}

// envelope returns the earliest and latest calendar day across both series.
func envelope(incomes, expenses []*entity.Record) (start, end time.Time) {
	start = truncateToDay(incomes[0].Date)
	end = start
	for _, r := range incomes {
		day := truncateToDay(r.Date)
		if day.Before(start) {
			start = day
		}
		if day.After(end) {
			end = day
		}
	}
	for _, r := range expenses {
		day := truncateToDay(r.Date)
		if day.Before(start) {
			start = day
		}
		if day.After(end) {
			end = day
		}
	}
	return start, end
}

// truncateToDay normalizes a timestamp to midnight UTC of its calendar day.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
