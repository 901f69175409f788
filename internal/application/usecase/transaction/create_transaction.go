// Package transaction contains transaction management use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// CreateTransactionInput represents the input for manual transaction creation.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	Date         time.Time
	MerchantName string
	Description  string
	Amount       decimal.Decimal
}

// CreateTransactionOutput represents the output of manual transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles manual transaction entry.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute creates the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	merchant := strings.TrimSpace(input.MerchantName)
	if merchant == "" || input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionMissingFields,
			"merchant name and date are required",
			domainerror.ErrTransactionMissingFields,
		)
	}
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.Date,
		merchant,
		strings.TrimSpace(input.Description),
		input.Amount,
		entity.TransactionSourceManual,
		"",
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
