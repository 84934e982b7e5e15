// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
)

const (
	// DefaultPageLimit is the page size used when the caller does not ask for one.
	DefaultPageLimit = 50
	// MaxPageLimit caps the page size.
	MaxPageLimit = 200
)

// ListRecordsInput represents the input for listing records.
type ListRecordsInput struct {
	UserID    uuid.UUID
	Kind      *entity.RecordKind
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Page      int
	Limit     int
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records    []*entity.Record
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListRecordsUseCase handles record listing logic.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record listing.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := adapter.RecordFilter{
		UserID:    input.UserID,
		Kind:      input.Kind,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
	}

	result, err := uc.recordRepo.FindByFilter(ctx, filter, adapter.RecordPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &ListRecordsOutput{
		Records:    result.Records,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
