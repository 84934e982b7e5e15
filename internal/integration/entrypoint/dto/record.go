// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ecap-app/backend/internal/application/usecase/record"
	"github.com/ecap-app/backend/internal/domain/entity"
)

// CreateRecordRequest represents the request body for record creation.
type CreateRecordRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=expense income"`
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// UpdateRecordRequest represents the request body for record update.
type UpdateRecordRequest struct {
	Date        *string  `json:"date,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// BulkDeleteRecordsRequest represents the request body for bulk record deletion.
type BulkDeleteRecordsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Kind        string    `json:"kind"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordPaginationResponse represents pagination information in API responses.
type RecordPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records    []RecordResponse         `json:"records"`
	Pagination RecordPaginationResponse `json:"pagination"`
}

// BulkDeleteRecordsResponse represents the response for bulk record deletion.
type BulkDeleteRecordsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(r *entity.Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Kind:        string(r.Kind),
		Date:        r.Date.Format("2006-01-02"),
		Amount:      r.Amount.String(),
		Category:    r.Category,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRecordListResponse converts a ListRecordsOutput to a RecordListResponse DTO.
func ToRecordListResponse(output *record.ListRecordsOutput) RecordListResponse {
	records := make([]RecordResponse, len(output.Records))
	for i, r := range output.Records {
		records[i] = ToRecordResponse(r)
	}

	return RecordListResponse{
		Records: records,
		Pagination: RecordPaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
