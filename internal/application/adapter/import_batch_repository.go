// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// ImportBatchRepository defines the interface for import batch records.
type ImportBatchRepository interface {
	// Create records the outcome of one import.
	Create(ctx context.Context, batch *entity.ImportBatch) error

	// ListByUser retrieves the user's import history, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ImportBatch, error)
}
