// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/persistence/model"
)

// categorizationRepository implements the adapter.CategorizationRepository interface.
type categorizationRepository struct {
	db *gorm.DB
}

// NewCategorizationRepository creates a new categorization repository instance.
func NewCategorizationRepository(db *gorm.DB) adapter.CategorizationRepository {
	return &categorizationRepository{
		db: db,
	}
}

// Upsert creates the categorization, or overwrites the existing one for the
// same transaction. The conflict update keeps the stored row's id and
// created_at, so the row is read back and returned to the caller.
func (r *categorizationRepository) Upsert(ctx context.Context, c *entity.Categorization) (*entity.Categorization, error) {
	catModel := model.CategorizationFromEntity(c)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"zone", "note", "updated_at"}),
		}).
		Create(catModel)
	if result.Error != nil {
		return nil, result.Error
	}

	var stored model.CategorizationModel
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", c.TransactionID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return stored.ToEntity(), nil
}

// FindByTransactionID retrieves the categorization for a transaction.
func (r *categorizationRepository) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Categorization, error) {
	var catModel model.CategorizationModel
	result := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&catModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategorizationNotFound
		}
		return nil, result.Error
	}
	return catModel.ToEntity(), nil
}

// ListByUserAndRange retrieves the user's categorizations whose transactions
// fall in the date range.
func (r *categorizationRepository) ListByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Categorization, error) {
	var catModels []model.CategorizationModel
	result := r.db.WithContext(ctx).
		Joins("JOIN transactions ON transactions.id = categorizations.transaction_id").
		Where("categorizations.user_id = ? AND transactions.date >= ? AND transactions.date <= ?", userID, start, end).
		Where("transactions.deleted_at IS NULL").
		Find(&catModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categorizations := make([]*entity.Categorization, len(catModels))
	for i := range catModels {
		categorizations[i] = catModels[i].ToEntity()
	}
	return categorizations, nil
}

// MerchantHistory returns the user's most recent zone decisions paired with
// the merchant they were made for, newest first.
func (r *categorizationRepository) MerchantHistory(ctx context.Context, userID uuid.UUID, limit int) ([]entity.MerchantZone, error) {
	type row struct {
		MerchantName string
		Zone         string
	}

	var rows []row
	result := r.db.WithContext(ctx).
		Model(&model.CategorizationModel{}).
		Select("transactions.merchant_name, categorizations.zone").
		Joins("JOIN transactions ON transactions.id = categorizations.transaction_id").
		Where("categorizations.user_id = ?", userID).
		Where("transactions.deleted_at IS NULL").
		Order("categorizations.updated_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	history := make([]entity.MerchantZone, len(rows))
	for i, r := range rows {
		history[i] = entity.MerchantZone{
			MerchantName: r.MerchantName,
			Zone:         entity.Zone(r.Zone),
		}
	}
	return history, nil
}
