package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-app/backend/internal/domain/entity"
)

func TestBalanceTimeline(t *testing.T) {
	t.Run("empty income series yields an empty timeline", func(t *testing.T) {
		expenses := []*entity.Record{rec("2024-01-01", "50", "food")}

		assert.Empty(t, BalanceTimeline(nil, expenses))
	})

	t.Run("empty expense series yields an empty timeline", func(t *testing.T) {
		incomes := []*entity.Record{rec("2024-01-01", "500", "salary")}

		assert.Empty(t, BalanceTimeline(incomes, nil))
	})

	t.Run("covers every day of the envelope", func(t *testing.T) {
		incomes := []*entity.Record{rec("2024-01-01", "500", "salary")}
		expenses := []*entity.Record{rec("2024-01-05", "100", "rent")}

		timeline := BalanceTimeline(incomes, expenses)

		require.Len(t, timeline, 5)
		assert.Equal(t, day("2024-01-01"), timeline[0].Date)
		assert.Equal(t, day("2024-01-05"), timeline[4].Date)
	})

	t.Run("accumulates daily sums into a running balance", func(t *testing.T) {
		incomes := []*entity.Record{
			rec("2024-01-01", "500", "salary"),
			rec("2024-01-03", "200", "bonus"),
		}
		expenses := []*entity.Record{
			rec("2024-01-02", "100", "rent"),
			rec("2024-01-03", "50", "food"),
		}

		timeline := BalanceTimeline(incomes, expenses)

		require.Len(t, timeline, 3)
		assert.Equal(t, "500", timeline[0].Balance.String())
		assert.Equal(t, "400", timeline[1].Balance.String())
		assert.Equal(t, "550", timeline[2].Balance.String())
	})

	t.Run("same-day records are summed before accumulating", func(t *testing.T) {
		incomes := []*entity.Record{
			rec("2024-03-01", "50", "salary"),
			rec("2024-03-01", "70", "salary"),
		}
		expenses := []*entity.Record{rec("2024-03-01", "30", "food")}

		timeline := BalanceTimeline(incomes, expenses)

		require.Len(t, timeline, 1)
		assert.Equal(t, "90", timeline[0].Balance.String())
	})

	t.Run("final balance equals total income minus total expenses", func(t *testing.T) {
		incomes := []*entity.Record{
			rec("2024-01-01", "500.25", "salary"),
			rec("2024-02-15", "120.50", "bonus"),
			rec("2024-03-20", "80.10", "gift"),
		}
		expenses := []*entity.Record{
			rec("2024-01-10", "99.99", "rent"),
			rec("2024-02-01", "45.45", "food"),
		}

		timeline := BalanceTimeline(incomes, expenses)

		require.NotEmpty(t, timeline)
		want := Total(incomes).Sub(Total(expenses))
		assert.True(t, want.Equal(timeline[len(timeline)-1].Balance))
	})
}
