// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// CreateReportRequest represents the request body for report creation.
type CreateReportRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ReportResponse represents a full report with its captured records.
type ReportResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	TotalExpenses string           `json:"total_expenses"`
	TotalIncomes  string           `json:"total_incomes"`
	TotalBalance  string           `json:"total_balance"`
	Expenses      []RecordResponse `json:"expenses"`
	Incomes       []RecordResponse `json:"incomes"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ReportListItemResponse represents a report in listings, without records.
type ReportListItemResponse struct {
	ID            string    `json:"id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalExpenses string    `json:"total_expenses"`
	TotalIncomes  string    `json:"total_incomes"`
	TotalBalance  string    `json:"total_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReportListResponse represents the response for listing reports.
type ReportListResponse struct {
	Reports []ReportListItemResponse `json:"reports"`
}

// ToReportResponse converts a domain Report entity to a ReportResponse DTO.
func ToReportResponse(r *entity.Report) ReportResponse {
	expenses := make([]RecordResponse, len(r.Expenses))
	for i, rec := range r.Expenses {
		expenses[i] = ToRecordResponse(rec)
	}
	incomes := make([]RecordResponse, len(r.Incomes))
	for i, rec := range r.Incomes {
		incomes[i] = ToRecordResponse(rec)
	}

	return ReportResponse{
		ID:            r.ID.String(),
		UserID:        r.UserID.String(),
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		TotalExpenses: r.TotalExpenses.String(),
		TotalIncomes:  r.TotalIncomes.String(),
		TotalBalance:  r.TotalBalance.String(),
		Expenses:      expenses,
		Incomes:       incomes,
		CreatedAt:     r.CreatedAt,
	}
}

// ToReportListResponse converts a slice of Report entities to a ReportListResponse DTO.
func ToReportListResponse(reports []*entity.Report) ReportListResponse {
	items := make([]ReportListItemResponse, len(reports))
	for i, r := range reports {
		items[i] = ReportListItemResponse{
			ID:            r.ID.String(),
			StartDate:     r.StartDate.Format("2006-01-02"),
			EndDate:       r.EndDate.Format("2006-01-02"),
			TotalExpenses: r.TotalExpenses.String(),
			TotalIncomes:  r.TotalIncomes.String(),
			TotalBalance:  r.TotalBalance.String(),
			CreatedAt:     r.CreatedAt,
		}
	}
	return ReportListResponse{Reports: items}
}
