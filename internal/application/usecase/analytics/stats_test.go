package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
)

// rec builds a test record on the given day with the given amount.
func rec(date, amount, category string) *entity.Record {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &entity.Record{
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
}

func day(date string) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotal(t *testing.T) {
	t.Run("empty record set sums to zero", func(t *testing.T) {
		assert.True(t, Total(nil).IsZero())
	})

	t.Run("sums amounts exactly", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-05", "200", "rent"),
		}
		assert.Equal(t, "300", Total(records).String())
	})

	t.Run("preserves decimal precision", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "0.10", "food"),
			rec("2024-01-02", "0.20", "food"),
			rec("2024-01-03", "0.30", "food"),
		}
		assert.Equal(t, "0.60", Total(records).StringFixed(2))
	})
}

func TestComputeMinMaxAvg(t *testing.T) {
	now := day("2024-06-01")

	t.Run("empty record set defaults to zero values dated now", func(t *testing.T) {
		result := ComputeMinMaxAvg(nil, now)

		assert.True(t, result.Min.Value.IsZero())
		assert.True(t, result.Max.Value.IsZero())
		assert.True(t, result.Avg.Value.IsZero())
		assert.Equal(t, now, result.Min.Date)
		assert.Equal(t, now, result.Max.Date)
		assert.Equal(t, now, result.Avg.Date)
	})

	t.Run("finds min and max with their dates", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-05", "200", "rent"),
		}
		result := ComputeMinMaxAvg(records, now)

		assert.Equal(t, "100", result.Min.Value.String())
		assert.Equal(t, day("2024-01-01"), result.Min.Date)
		assert.Equal(t, "200", result.Max.Value.String())
		assert.Equal(t, day("2024-01-05"), result.Max.Date)
		assert.Equal(t, "150", result.Avg.Value.String())
	})

	t.Run("average date falls back to now when no record matches", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-05", "200", "rent"),
		}
		result := ComputeMinMaxAvg(records, now)

		// 150 matches neither record.
		assert.Equal(t, now, result.Avg.Date)
	})

	t.Run("ties resolve to the first matching record", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-02-01", "50", "food"),
			rec("2024-02-10", "50", "food"),
		}
		result := ComputeMinMaxAvg(records, now)

		assert.Equal(t, day("2024-02-01"), result.Min.Date)
		assert.Equal(t, day("2024-02-01"), result.Max.Date)
		// All amounts equal, so the average matches the first record too.
		assert.Equal(t, day("2024-02-01"), result.Avg.Date)
	})

	t.Run("min <= avg <= max", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-03-01", "12.75", "a"),
			rec("2024-03-02", "99.10", "b"),
			rec("2024-03-03", "43.05", "c"),
			rec("2024-03-04", "7.99", "d"),
		}
		result := ComputeMinMaxAvg(records, now)

		assert.True(t, result.Min.Value.LessThanOrEqual(result.Avg.Value))
		assert.True(t, result.Avg.Value.LessThanOrEqual(result.Max.Value))
	})
}

func TestStandardDeviation(t *testing.T) {
	t.Run("empty record set has zero deviation", func(t *testing.T) {
		assert.Zero(t, StandardDeviation(nil))
	})

	t.Run("identical amounts have zero deviation", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "75", "food"),
			rec("2024-01-02", "75", "food"),
		}
		assert.Zero(t, StandardDeviation(records))
	})

	t.Run("computes the population deviation", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-05", "200", "rent"),
		}
		// Population sigma of {100, 200} is 50.
		assert.InDelta(t, 50, StandardDeviation(records), 1e-9)
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("empty record set yields an empty breakdown", func(t *testing.T) {
		breakdown, err := CategoryBreakdown(nil)

		require.NoError(t, err)
		assert.Empty(t, breakdown)
	})

	t.Run("sums same-date records within a category", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-03-01", "50", "salary"),
			rec("2024-03-01", "70", "salary"),
		}
		breakdown, err := CategoryBreakdown(records)

		require.NoError(t, err)
		require.Contains(t, breakdown, "salary")
		assert.Equal(t, "120", breakdown["salary"].Total.String())
		assert.InDelta(t, 1.0, breakdown["salary"].Percentage, 1e-9)
	})

	t.Run("percentages sum to one", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "30", "food"),
			rec("2024-01-02", "50", "rent"),
			rec("2024-01-03", "20", "transport"),
		}
		breakdown, err := CategoryBreakdown(records)

		require.NoError(t, err)
		var sum float64
		for _, share := range breakdown {
			sum += share.Percentage
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("rejects a zero grand total", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "0", "food"),
		}
		_, err := CategoryBreakdown(records)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrZeroGrandTotal))

		var analyticsErr *domainerror.AnalyticsError
		require.True(t, errors.As(err, &analyticsErr))
		assert.Equal(t, domainerror.ErrCodeZeroGrandTotal, analyticsErr.Code)
	})
}

func TestMonthlyAverage(t *testing.T) {
	t.Run("empty record set averages to zero", func(t *testing.T) {
		assert.True(t, MonthlyAverage(nil).IsZero())
	})

	t.Run("averages across months with records", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-10", "100", "food"),
			rec("2024-01-20", "200", "rent"),
			rec("2024-02-15", "300", "rent"),
		}
		// January sums to 300, February to 300.
		assert.Equal(t, "300", MonthlyAverage(records).String())
	})

	t.Run("months without records do not dilute the average", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-10", "100", "food"),
			rec("2024-06-15", "300", "rent"),
		}
		assert.Equal(t, "200", MonthlyAverage(records).String())
	})
}

func TestSavingGoalProgress(t *testing.T) {
	goal := func(current, target string) *entity.SavingGoal {
		return &entity.SavingGoal{
			Name:          "test goal",
			CurrentAmount: decimal.RequireFromString(current),
			TargetAmount:  decimal.RequireFromString(target),
		}
	}

	t.Run("no goals yields zero progress", func(t *testing.T) {
		progress, err := SavingGoalProgress(nil)

		require.NoError(t, err)
		assert.Zero(t, progress)
	})

	t.Run("averages completion ratios rounded to two decimals", func(t *testing.T) {
		goals := []*entity.SavingGoal{
			goal("50", "100"),
			goal("100", "100"),
		}
		progress, err := SavingGoalProgress(goals)

		require.NoError(t, err)
		assert.InDelta(t, 0.75, progress, 1e-9)
	})

	t.Run("rejects a zero target amount", func(t *testing.T) {
		goals := []*entity.SavingGoal{goal("10", "0")}
		_, err := SavingGoalProgress(goals)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrZeroTargetAmount))

		var analyticsErr *domainerror.AnalyticsError
		require.True(t, errors.As(err, &analyticsErr))
		assert.Equal(t, domainerror.ErrCodeZeroTargetAmount, analyticsErr.Code)
	})
}
