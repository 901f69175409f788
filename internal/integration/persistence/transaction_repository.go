// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txModel := model.TransactionFromEntity(tx)
	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates many transactions in one write.
func (r *transactionRepository) CreateBatch(ctx context.Context, txs []*entity.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	txModels := make([]*model.TransactionModel, len(txs))
	for i, tx := range txs {
		txModels[i] = model.TransactionFromEntity(tx)
	}
	result := r.db.WithContext(ctx).Create(&txModels)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return txModel.ToEntity(), nil
}

// ListByUser retrieves a page of the user's transactions with their
// categorizations joined.
func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter adapter.TransactionFilter) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("transactions.user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filter.EndDate)
	}

	if filter.Zone != nil {
		query = query.Joins("LEFT JOIN categorizations ON categorizations.transaction_id = transactions.id")
		if *filter.Zone == entity.ZoneUncategorized {
			query = query.Where("categorizations.id IS NULL")
		} else {
			query = query.Where("categorizations.zone = ?", string(*filter.Zone))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var txModels []model.TransactionModel
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Categorization").
		Order("transactions.date DESC, transactions.created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&txModels).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.TransactionWithZone, len(txModels))
	for i := range txModels {
		transactions[i] = txModels[i].ToEntityWithZone()
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
	}, nil
}

// ListByUserAndRange retrieves all of the user's transactions in a date range.
func (r *transactionRepository) ListByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = txModels[i].ToEntity()
	}
	return transactions, nil
}

// ListUncategorized retrieves the user's transactions without a categorization.
func (r *transactionRepository) ListUncategorized(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Joins("LEFT JOIN categorizations ON categorizations.transaction_id = transactions.id").
		Where("transactions.user_id = ? AND categorizations.id IS NULL", userID).
		Order("transactions.date ASC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = txModels[i].ToEntity()
	}
	return transactions, nil
}

// Delete soft-deletes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// ExistsByExternalID checks whether a provider transaction was already imported.
func (r *transactionRepository) ExistsByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND external_id = ?", userID, externalID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
