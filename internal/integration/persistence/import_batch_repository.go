// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	"github.com/7LayerLabs/spendsignal2.0/internal/integration/persistence/model"
)

// importBatchRepository implements the adapter.ImportBatchRepository interface.
type importBatchRepository struct {
	db *gorm.DB
}

// NewImportBatchRepository creates a new import batch repository instance.
func NewImportBatchRepository(db *gorm.DB) adapter.ImportBatchRepository {
	return &importBatchRepository{
		db: db,
	}
}

// Create records the outcome of one import.
func (r *importBatchRepository) Create(ctx context.Context, batch *entity.ImportBatch) error {
	batchModel := model.ImportBatchFromEntity(batch)
	result := r.db.WithContext(ctx).Create(batchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListByUser retrieves the user's import history, most recent first.
func (r *importBatchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ImportBatch, error) {
	var batchModels []model.ImportBatchModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&batchModels)
	if result.Error != nil {
		return nil, result.Error
	}

	batches := make([]*entity.ImportBatch, len(batchModels))
	for i := range batchModels {
		batches[i] = batchModels[i].ToEntity()
	}
	return batches, nil
}
