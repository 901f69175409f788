// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// CategorizationModel represents the categorizations table in the database.
// One row per transaction; repeat decisions overwrite in place.
type CategorizationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Zone          string    `gorm:"type:varchar(10);not null;index"`
	Note          string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategorizationModel.
func (CategorizationModel) TableName() string {
	return "categorizations"
}

// ToEntity converts a CategorizationModel to a domain Categorization entity.
func (m *CategorizationModel) ToEntity() *entity.Categorization {
	return &entity.Categorization{
		ID:            m.ID,
		UserID:        m.UserID,
		TransactionID: m.TransactionID,
		Zone:          entity.Zone(m.Zone),
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategorizationFromEntity creates a CategorizationModel from a domain Categorization entity.
func CategorizationFromEntity(c *entity.Categorization) *CategorizationModel {
	return &CategorizationModel{
		ID:            c.ID,
		UserID:        c.UserID,
		TransactionID: c.TransactionID,
		Zone:          string(c.Zone),
		Note:          c.Note,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
