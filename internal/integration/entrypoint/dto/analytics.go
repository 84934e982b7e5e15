// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ecap-app/backend/internal/application/usecase/analytics"
)

// ValueAtDateResponse pairs an amount with the date it occurred on.
type ValueAtDateResponse struct {
	Value string `json:"value"`
	Date  string `json:"date"`
}

// SeriesPointResponse is one (date, amount) observation in a history series.
type SeriesPointResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// CategoryShareResponse holds one category's total and share of the grand total.
type CategoryShareResponse struct {
	Total      string  `json:"total"`
	Percentage float64 `json:"percentage"`
}

// RecordSummaryResponse represents the analytics summary for one record kind.
type RecordSummaryResponse struct {
	Total           string                           `json:"total"`
	Min             ValueAtDateResponse              `json:"min"`
	Max             ValueAtDateResponse              `json:"max"`
	Avg             ValueAtDateResponse              `json:"avg"`
	StdDev          float64                          `json:"std_dev"`
	MonthlyAverage  string                           `json:"monthly_average"`
	TrendSlope      float64                          `json:"trend_slope"`
	Historical      []SeriesPointResponse            `json:"historical"`
	ProjectedDates  []string                         `json:"projected_dates"`
	ProjectedValues []float64                        `json:"projected_values"`
	Breakdown       map[string]CategoryShareResponse `json:"breakdown"`
}

// BalancePointResponse is one day on the cumulative balance curve.
type BalancePointResponse struct {
	Date    string `json:"date"`
	Balance string `json:"balance"`
}

// BalanceTimelineResponse represents the balance timeline response.
type BalanceTimelineResponse struct {
	Timeline []BalancePointResponse `json:"timeline"`
}

// ToRecordSummaryResponse converts a GetRecordSummaryOutput to a RecordSummaryResponse DTO.
func ToRecordSummaryResponse(output *analytics.GetRecordSummaryOutput) RecordSummaryResponse {
	historical := make([]SeriesPointResponse, len(output.Historical))
	for i, p := range output.Historical {
		historical[i] = SeriesPointResponse{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount.String(),
		}
	}

	breakdown := make(map[string]CategoryShareResponse, len(output.Breakdown))
	for category, share := range output.Breakdown {
		breakdown[category] = CategoryShareResponse{
			Total:      share.Total.String(),
			Percentage: share.Percentage,
		}
	}

	projectedDates := output.ProjectedDates
	if projectedDates == nil {
		projectedDates = []string{}
	}
	projectedValues := output.ProjectedValues
	if projectedValues == nil {
		projectedValues = []float64{}
	}

	return RecordSummaryResponse{
		Total: output.Total.String(),
		Min: ValueAtDateResponse{
			Value: output.MinMaxAvg.Min.Value.String(),
			Date:  output.MinMaxAvg.Min.Date.Format("2006-01-02"),
		},
		Max: ValueAtDateResponse{
			Value: output.MinMaxAvg.Max.Value.String(),
			Date:  output.MinMaxAvg.Max.Date.Format("2006-01-02"),
		},
		Avg: ValueAtDateResponse{
			Value: output.MinMaxAvg.Avg.Value.String(),
			Date:  output.MinMaxAvg.Avg.Date.Format("2006-01-02"),
		},
		StdDev:          output.StdDev,
		MonthlyAverage:  output.MonthlyAverage.String(),
		TrendSlope:      output.TrendSlope,
		Historical:      historical,
		ProjectedDates:  projectedDates,
		ProjectedValues: projectedValues,
		Breakdown:       breakdown,
	}
}

// ToBalanceTimelineResponse converts a GetBalanceTimelineOutput to a DTO.
func ToBalanceTimelineResponse(output *analytics.GetBalanceTimelineOutput) BalanceTimelineResponse {
	timeline := make([]BalancePointResponse, len(output.Timeline))
	for i, p := range output.Timeline {
		timeline[i] = BalancePointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Balance: p.Balance.String(),
		}
	}
	return BalanceTimelineResponse{Timeline: timeline}
}
