// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	MerchantName string          `gorm:"type:varchar(255);not null;index"`
	Description  string          `gorm:"type:varchar(255)"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source       string          `gorm:"type:varchar(10);not null"`
	ExternalID   string          `gorm:"type:varchar(255);index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Categorization *CategorizationModel `gorm:"foreignKey:TransactionID;references:ID"`
	User           *UserModel           `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Date:         m.Date,
		MerchantName: m.MerchantName,
		Description:  m.Description,
		Amount:       m.Amount,
		Source:       entity.TransactionSource(m.Source),
		ExternalID:   m.ExternalID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// ToEntityWithZone converts a TransactionModel with its Categorization to a
// TransactionWithZone entity.
func (m *TransactionModel) ToEntityWithZone() *entity.TransactionWithZone {
	result := &entity.TransactionWithZone{
		Transaction: m.ToEntity(),
	}

	if m.Categorization != nil {
		result.Categorization = m.Categorization.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Date:         transaction.Date,
		MerchantName: transaction.MerchantName,
		Description:  transaction.Description,
		Amount:       transaction.Amount,
		Source:       string(transaction.Source),
		ExternalID:   transaction.ExternalID,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
