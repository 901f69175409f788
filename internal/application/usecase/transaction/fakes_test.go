package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository for tests.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, txs []*entity.Transaction) error {
	r.transactions = append(r.transactions, txs...)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id && tx.DeletedAt == nil {
			return tx, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, userID uuid.UUID, filter adapter.TransactionFilter) (*entity.TransactionListResult, error) {
	var items []*entity.TransactionWithZone
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.DeletedAt == nil {
			items = append(items, &entity.TransactionWithZone{Transaction: tx})
		}
	}
	return &entity.TransactionListResult{
		Transactions: items,
		Total:        int64(len(items)),
		Page:         filter.Page,
		Limit:        filter.Limit,
	}, nil
}

func (r *fakeTransactionRepo) ListByUserAndRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID && !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListUncategorized(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.ListByUserAndRange(context.Background(), userID, time.Time{}, time.Now().Add(24*time.Hour))
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for _, tx := range r.transactions {
		if tx.ID == id {
			now := time.Now().UTC()
			tx.DeletedAt = &now
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) ExistsByExternalID(_ context.Context, userID uuid.UUID, externalID string) (bool, error) {
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

// fakeImportBatchRepo records import batches in memory.
type fakeImportBatchRepo struct {
	batches []*entity.ImportBatch
}

func (r *fakeImportBatchRepo) Create(_ context.Context, batch *entity.ImportBatch) error {
	r.batches = append(r.batches, batch)
	return nil
}

func (r *fakeImportBatchRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.ImportBatch, error) {
	var out []*entity.ImportBatch
	for _, b := range r.batches {
		if b.UserID == userID {
			out = append(out, b)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeBankProvider serves canned transactions.
type fakeBankProvider struct {
	available    bool
	transactions []adapter.BankTransaction
	err          error
}

func (p *fakeBankProvider) IsAvailable() bool { return p.available }

func (p *fakeBankProvider) FetchTransactions(_ context.Context, _, _ time.Time) ([]adapter.BankTransaction, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.transactions, nil
}
