// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecap-app/backend/internal/domain/entity"
)

// ReportModel represents the reports table in the database. The record sets
// captured by a report are stored through the report_records join table and
// stay fixed after creation.
type ReportModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       time.Time       `gorm:"type:date;not null"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalIncomes  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Records holds both kinds; ToEntity splits them back out.
	Records []RecordModel `gorm:"many2many:report_records"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	report := &entity.Report{
		ID:            m.ID,
		UserID:        m.UserID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		TotalExpenses: m.TotalExpenses,
		TotalIncomes:  m.TotalIncomes,
		TotalBalance:  m.TotalBalance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	for i := range m.Records {
		record := m.Records[i].ToEntity()
		switch record.Kind {
		case entity.RecordKindExpense:
			report.Expenses = append(report.Expenses, record)
		case entity.RecordKindIncome:
			report.Incomes = append(report.Incomes, record)
		}
	}

	return report
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(report *entity.Report) *ReportModel {
	records := make([]RecordModel, 0, len(report.Expenses)+len(report.Incomes))
	for _, record := range report.Expenses {
		records = append(records, *RecordFromEntity(record))
	}
	for _, record := range report.Incomes {
		records = append(records, *RecordFromEntity(record))
	}

	return &ReportModel{
		ID:            report.ID,
		UserID:        report.UserID,
		StartDate:     report.StartDate,
		EndDate:       report.EndDate,
		TotalExpenses: report.TotalExpenses,
		TotalIncomes:  report.TotalIncomes,
		TotalBalance:  report.TotalBalance,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
		Records:       records,
	}
}
