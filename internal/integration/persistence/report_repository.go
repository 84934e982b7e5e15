// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecap-app/backend/internal/application/adapter"
	"github.com/ecap-app/backend/internal/domain/entity"
	domainerror "github.com/ecap-app/backend/internal/domain/error"
	"github.com/ecap-app/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Save persists the report and its record associations in one transaction.
// The associated records already exist; only the report row and the join
// table rows are written.
func (r *reportRepository) Save(ctx context.Context, report *entity.Report) error {
	reportModel := model.ReportFromEntity(report)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records := reportModel.Records
		reportModel.Records = nil

		if err := tx.Save(reportModel).Error; err != nil {
			return err
		}

		assoc := tx.Model(reportModel).Association("Records")
		if len(records) == 0 {
			return assoc.Clear()
		}

		refs := make([]*model.RecordModel, len(records))
		for i := range records {
			refs[i] = &model.RecordModel{ID: records[i].ID}
		}
		return assoc.Replace(refs)
	})
}

// FindByID retrieves a report with its captured records by ID.
func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := r.db.WithContext(ctx).
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// FindByUser retrieves all reports for a given user, newest first. The record
// associations are not loaded for listings.
func (r *reportRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.Report, len(reportModels))
	for i, rm := range reportModels {
		reports[i] = rm.ToEntity()
	}
	return reports, nil
}
