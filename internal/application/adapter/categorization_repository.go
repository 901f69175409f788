// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// CategorizationRepository defines the interface for zone decision storage.
// It enforces the one-categorization-per-transaction invariant: Upsert
// creates the row on first categorization and overwrites it in place on
// every re-categorization.
type CategorizationRepository interface {
	// Upsert creates or replaces the categorization for a transaction and
	// returns the stored row. On replace the stored row keeps its original
	// ID and creation time, so callers must use the returned entity rather
	// than the one they passed in.
	Upsert(ctx context.Context, categorization *entity.Categorization) (*entity.Categorization, error)

	// FindByTransactionID retrieves the categorization for one transaction.
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Categorization, error)

	// ListByUserAndRange retrieves categorizations for the user's transactions
	// dated within the range.
	ListByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Categorization, error)

	// MerchantHistory returns the user's prior merchant/zone decisions,
	// most recent first, capped at limit.
	MerchantHistory(ctx context.Context, userID uuid.UUID, limit int) ([]entity.MerchantZone, error)
}
