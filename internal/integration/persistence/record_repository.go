// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
	"github.com/ecap-app/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record in the database.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUserAndKind retrieves all records of the given kind for a user,
// ordered by date ascending. The ordering matters downstream: the analytics
// engine assumes chronological input with ties in insertion order.
func (r *recordRepository) FindByUserAndKind(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.RecordKind,
) ([]*entity.Record, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("date ASC, created_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecordEntities(recordModels), nil
}

// FindByUserKindAndRange retrieves a user's records of the given kind within
// [startDate, endDate] inclusive, ordered by date ascending.
func (r *recordRepository) FindByUserKindAndRange(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.RecordKind,
	startDate, endDate time.Time,
) ([]*entity.Record, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND date >= ? AND date <= ?", userID, string(kind), startDate, endDate).
		Order("date ASC, created_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecordEntities(recordModels), nil
}

// FindByFilter retrieves records based on filter criteria with pagination.
func (r *recordRepository) FindByFilter(
	ctx context.Context,
	filter adapter.RecordFilter,
	pagination adapter.RecordPagination,
) (*entity.RecordListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.RecordModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var recordModels []model.RecordModel
	result := query.
		Order("date ASC, created_at ASC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.RecordListResult{
		Records:    toRecordEntities(recordModels),
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing record in the database.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a record from the database.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// BulkDelete soft-deletes multiple records owned by the user. Records
// belonging to other users are silently skipped.
func (r *recordRepository) BulkDelete(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Delete(&model.RecordModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toRecordEntities(recordModels []model.RecordModel) []*entity.Record {
	records := make([]*entity.Record, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records
}
