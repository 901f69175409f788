// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// ImportBatchModel represents the import_batches table in the database.
type ImportBatchModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Source       string         `gorm:"type:varchar(10);not null"`
	RowCount     int            `gorm:"not null"`
	ImportedRows int            `gorm:"not null"`
	SkippedRows  int            `gorm:"not null"`
	Errors       pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the ImportBatchModel.
func (ImportBatchModel) TableName() string {
	return "import_batches"
}

// ToEntity converts an ImportBatchModel to a domain ImportBatch entity.
func (m *ImportBatchModel) ToEntity() *entity.ImportBatch {
	return &entity.ImportBatch{
		ID:           m.ID,
		UserID:       m.UserID,
		Source:       entity.TransactionSource(m.Source),
		RowCount:     m.RowCount,
		ImportedRows: m.ImportedRows,
		SkippedRows:  m.SkippedRows,
		Errors:       []string(m.Errors),
		CreatedAt:    m.CreatedAt,
	}
}

// ImportBatchFromEntity creates an ImportBatchModel from a domain ImportBatch entity.
func ImportBatchFromEntity(batch *entity.ImportBatch) *ImportBatchModel {
	return &ImportBatchModel{
		ID:           batch.ID,
		UserID:       batch.UserID,
		Source:       string(batch.Source),
		RowCount:     batch.RowCount,
		ImportedRows: batch.ImportedRows,
		SkippedRows:  batch.SkippedRows,
		Errors:       pq.StringArray(batch.Errors),
		CreatedAt:    batch.CreatedAt,
	}
}
