// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// TransactionFilter narrows transaction listing.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Zone      *entity.Zone // filters on the joined categorization; ZoneUncategorized selects transactions without one
	Page      int
	Limit     int
}

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, tx *entity.Transaction) error

	// CreateBatch creates many transactions in one write.
	CreateBatch(ctx context.Context, txs []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// ListByUser retrieves a page of the user's transactions with their
	// categorizations joined.
	ListByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) (*entity.TransactionListResult, error)

	// ListByUserAndRange retrieves all of the user's transactions in a date range.
	ListByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// ListUncategorized retrieves the user's transactions without a categorization.
	ListUncategorized(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Delete soft-deletes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByExternalID checks whether a provider transaction was already imported.
	ExistsByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (bool, error)
}
