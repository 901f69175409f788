package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

func TestSyncTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	bankTx := func(externalID, merchant, amount string, day int) adapter.BankTransaction {
		return adapter.BankTransaction{
			ExternalID:   externalID,
			Date:         time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
			MerchantName: merchant,
			Amount:       decimal.RequireFromString(amount),
		}
	}

	t.Run("imports fetched transactions", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{}
		batchRepo := &fakeImportBatchRepo{}
		provider := &fakeBankProvider{available: true, transactions: []adapter.BankTransaction{
			bankTx("plaid-1", "Whole Foods", "54.20", 1),
			bankTx("plaid-2", "Netflix", "15.49", 2),
		}}
		uc := NewSyncTransactionsUseCase(txRepo, batchRepo, provider)

		output, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Batch.ImportedRows != 2 || output.Batch.SkippedRows != 0 {
			t.Errorf("unexpected batch counts: %+v", output.Batch)
		}
		if len(txRepo.transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txRepo.transactions))
		}
		if txRepo.transactions[0].Source != entity.TransactionSourcePlaid {
			t.Errorf("expected plaid source, got %s", txRepo.transactions[0].Source)
		}
		if txRepo.transactions[0].ExternalID != "plaid-1" {
			t.Errorf("expected external ID kept, got %q", txRepo.transactions[0].ExternalID)
		}
	})

	t.Run("skips transactions already imported", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{}
		batchRepo := &fakeImportBatchRepo{}
		provider := &fakeBankProvider{available: true, transactions: []adapter.BankTransaction{
			bankTx("plaid-1", "Whole Foods", "54.20", 1),
			bankTx("plaid-2", "Netflix", "15.49", 2),
		}}
		uc := NewSyncTransactionsUseCase(txRepo, batchRepo, provider)

		txRepo.transactions = append(txRepo.transactions, entity.NewTransaction(
			userID, start, "Whole Foods", "", decimal.RequireFromString("54.20"),
			entity.TransactionSourcePlaid, "plaid-1",
		))

		output, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Batch.ImportedRows != 1 {
			t.Errorf("expected 1 imported, got %d", output.Batch.ImportedRows)
		}
		if output.Batch.SkippedRows != 1 {
			t.Errorf("expected 1 skipped, got %d", output.Batch.SkippedRows)
		}
	})

	t.Run("fails when the provider is not configured", func(t *testing.T) {
		uc := NewSyncTransactionsUseCase(&fakeTransactionRepo{}, &fakeImportBatchRepo{}, &fakeBankProvider{available: false})

		_, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, StartDate: start, EndDate: end})
		if !errors.Is(err, domainerror.ErrBankProviderUnavailable) {
			t.Errorf("expected ErrBankProviderUnavailable, got %v", err)
		}
	})

	t.Run("wraps provider failures", func(t *testing.T) {
		providerErr := errors.New("ITEM_LOGIN_REQUIRED")
		uc := NewSyncTransactionsUseCase(&fakeTransactionRepo{}, &fakeImportBatchRepo{}, &fakeBankProvider{available: true, err: providerErr})

		_, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, StartDate: start, EndDate: end})
		if !errors.Is(err, providerErr) {
			t.Errorf("expected provider error wrapped, got %v", err)
		}
		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) || importErr.Code != domainerror.ErrCodeBankProviderFailed {
			t.Errorf("expected IMP-020002, got %v", err)
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		uc := NewSyncTransactionsUseCase(&fakeTransactionRepo{}, &fakeImportBatchRepo{}, &fakeBankProvider{available: true})

		_, err := uc.Execute(ctx, SyncTransactionsInput{UserID: userID, StartDate: end, EndDate: start})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}
