package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-app/backend/internal/domain/entity"
)

func TestFitTrend(t *testing.T) {
	t.Run("fewer than two points yields a nil model", func(t *testing.T) {
		assert.Nil(t, FitTrend(nil))
		assert.Nil(t, FitTrend([]*entity.Record{rec("2024-01-01", "100", "food")}))
	})

	t.Run("nil model reports zero slope and zero predictions", func(t *testing.T) {
		var model *TrendModel

		assert.Zero(t, model.Slope())
		assert.Zero(t, model.PredictAt(day("2024-01-01")))
	})

	t.Run("points confined to a single day yield a nil model", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-03-01", "50", "food"),
			rec("2024-03-01", "70", "food"),
		}
		assert.Nil(t, FitTrend(records))
	})

	t.Run("recovers a perfectly linear trend", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-02", "110", "food"),
			rec("2024-01-03", "120", "food"),
			rec("2024-01-04", "130", "food"),
		}
		model := FitTrend(records)

		require.NotNil(t, model)
		assert.InDelta(t, 10, model.Slope(), 1e-9)
		assert.InDelta(t, 140, model.PredictAt(day("2024-01-05")), 1e-6)
	})

	t.Run("fitting is deterministic", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-03", "120", "food"),
			rec("2024-01-01", "95", "food"),
			rec("2024-01-08", "160", "food"),
		}
		first := FitTrend(records)
		second := FitTrend(records)

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.Slope(), second.Slope())
	})

	t.Run("input order does not affect the fit", func(t *testing.T) {
		ordered := []*entity.Record{
			rec("2024-01-01", "95", "food"),
			rec("2024-01-03", "120", "food"),
			rec("2024-01-08", "160", "food"),
		}
		shuffled := []*entity.Record{ordered[2], ordered[0], ordered[1]}

		assert.InDelta(t, FitTrend(ordered).Slope(), FitTrend(shuffled).Slope(), 1e-12)
	})
}

func TestForecast(t *testing.T) {
	t.Run("empty record set forecasts nothing", func(t *testing.T) {
		dates, values := Forecast(nil, day("2024-02-01"), 5)

		assert.Empty(t, dates)
		assert.Empty(t, values)
	})

	t.Run("returns consecutive dates starting at the given date", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-02", "110", "food"),
		}
		dates, values := Forecast(records, day("2024-02-01"), 3)

		require.Len(t, dates, 3)
		require.Len(t, values, 3)
		assert.Equal(t, []string{"2024-02-01", "2024-02-02", "2024-02-03"}, dates)
	})

	t.Run("projects the fitted line", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-01", "100", "food"),
			rec("2024-01-02", "110", "food"),
			rec("2024-01-03", "120", "food"),
		}
		_, values := Forecast(records, day("2024-01-04"), 2)

		require.Len(t, values, 2)
		assert.InDelta(t, 130, values[0], 1e-6)
		assert.InDelta(t, 140, values[1], 1e-6)
	})

	t.Run("degenerate history degrades to flat zero predictions", func(t *testing.T) {
		records := []*entity.Record{rec("2024-01-01", "100", "food")}
		dates, values := Forecast(records, day("2024-02-01"), 4)

		require.Len(t, dates, 4)
		for _, v := range values {
			assert.Zero(t, v)
		}
	})
}

func TestForecastFromLatest(t *testing.T) {
	t.Run("empty record set forecasts nothing", func(t *testing.T) {
		dates, values := ForecastFromLatest(nil, 10)

		assert.Empty(t, dates)
		assert.Empty(t, values)
	})

	t.Run("starts at the most recent historical date", func(t *testing.T) {
		records := []*entity.Record{
			rec("2024-01-10", "120", "food"),
			rec("2024-01-01", "100", "food"),
			rec("2024-01-05", "110", "food"),
		}
		dates, _ := ForecastFromLatest(records, 3)

		require.Len(t, dates, 3)
		assert.Equal(t, "2024-01-10", dates[0])
		assert.Equal(t, "2024-01-12", dates[2])
	})
}
