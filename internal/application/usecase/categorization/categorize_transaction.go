// Package categorization contains zone decision use cases.
package categorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// CategorizeTransactionInput represents the input for a zone decision.
type CategorizeTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Zone          entity.Zone
	Note          string
}

// CategorizeTransactionOutput represents the output of a zone decision.
type CategorizeTransactionOutput struct {
	Categorization *entity.Categorization
}

// CategorizeTransactionUseCase handles the user's zone decision for one
// transaction. The decision upserts: the first call creates the
// categorization, every later call overwrites it in place.
type CategorizeTransactionUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
}

// NewCategorizeTransactionUseCase creates a new CategorizeTransactionUseCase instance.
func NewCategorizeTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
) *CategorizeTransactionUseCase {
	return &CategorizeTransactionUseCase{
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
	}
}

// Execute records the zone decision.
func (uc *CategorizeTransactionUseCase) Execute(ctx context.Context, input CategorizeTransactionInput) (*CategorizeTransactionOutput, error) {
	// Only the three substantive zones are valid decisions; "uncategorized"
	// is the absence of a decision, not one the user can assert.
	if !input.Zone.IsSubstantive() {
		return nil, domainerror.NewCategorizationError(
			domainerror.ErrCodeInvalidZone,
			"zone must be green, yellow or red",
			domainerror.ErrInvalidZone,
		)
	}

	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if tx.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotTransactionOwner,
			"transaction belongs to another user",
			domainerror.ErrNotTransactionOwner,
		)
	}

	categorization := entity.NewCategorization(input.UserID, input.TransactionID, input.Zone, input.Note)
	stored, err := uc.categorizationRepo.Upsert(ctx, categorization)
	if err != nil {
		return nil, fmt.Errorf("failed to save categorization: %w", err)
	}

	return &CategorizeTransactionOutput{Categorization: stored}, nil
}
