// Package transaction contains transaction management use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// SyncTransactionsInput represents the input for a bank sync.
type SyncTransactionsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// SyncTransactionsOutput represents the outcome of a bank sync.
type SyncTransactionsOutput struct {
	Batch *entity.ImportBatch
}

// SyncTransactionsUseCase pulls transactions from the bank provider and
// imports the ones not seen before. Dedup is by provider transaction ID.
type SyncTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	importBatchRepo adapter.ImportBatchRepository
	bankProvider    adapter.BankProvider
}

// NewSyncTransactionsUseCase creates a new SyncTransactionsUseCase instance.
func NewSyncTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	importBatchRepo adapter.ImportBatchRepository,
	bankProvider adapter.BankProvider,
) *SyncTransactionsUseCase {
	return &SyncTransactionsUseCase{
		transactionRepo: transactionRepo,
		importBatchRepo: importBatchRepo,
		bankProvider:    bankProvider,
	}
}

// Execute runs the sync.
func (uc *SyncTransactionsUseCase) Execute(ctx context.Context, input SyncTransactionsInput) (*SyncTransactionsOutput, error) {
	if uc.bankProvider == nil || !uc.bankProvider.IsAvailable() {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeBankProviderUnavailable,
			"bank sync is not configured",
			domainerror.ErrBankProviderUnavailable,
		)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must be after start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	fetched, err := uc.bankProvider.FetchTransactions(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeBankProviderFailed,
			"bank provider request failed",
			err,
		)
	}

	batch := entity.NewImportBatch(input.UserID, entity.TransactionSourcePlaid)
	batch.RowCount = len(fetched)

	var transactions []*entity.Transaction
	for _, bt := range fetched {
		exists, err := uc.transactionRepo.ExistsByExternalID(ctx, input.UserID, bt.ExternalID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing transaction: %w", err)
		}
		if exists {
			batch.SkippedRows++
			continue
		}
		transactions = append(transactions, entity.NewTransaction(
			input.UserID,
			bt.Date,
			bt.MerchantName,
			bt.Description,
			bt.Amount,
			entity.TransactionSourcePlaid,
			bt.ExternalID,
		))
	}

	if len(transactions) > 0 {
		if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
			return nil, fmt.Errorf("failed to save synced transactions: %w", err)
		}
	}
	batch.ImportedRows = len(transactions)

	if err := uc.importBatchRepo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to record import batch: %w", err)
	}

	return &SyncTransactionsOutput{Batch: batch}, nil
}
