package categorization

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
	transactions map[uuid.UUID]*entity.Transaction
	categorized  map[uuid.UUID]bool
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		categorized:  make(map[uuid.UUID]bool),
	}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, txs []*entity.Transaction) error {
	for _, tx := range txs {
		r.transactions[tx.ID] = tx
	}
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return tx, nil
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, _ uuid.UUID, _ adapter.TransactionFilter) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
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
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID && !r.categorized[tx.ID] {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) ExistsByExternalID(_ context.Context, userID uuid.UUID, externalID string) (bool, error) {
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

// fakeCategorizationRepo is an in-memory CategorizationRepository keyed by
// transaction ID, mirroring the one-per-transaction invariant.
type fakeCategorizationRepo struct {
	byTransaction map[uuid.UUID]*entity.Categorization
	history       []entity.MerchantZone
	upsertCalls   int
}

func newFakeCategorizationRepo() *fakeCategorizationRepo {
	return &fakeCategorizationRepo{
		byTransaction: make(map[uuid.UUID]*entity.Categorization),
	}
}

func (r *fakeCategorizationRepo) Upsert(_ context.Context, c *entity.Categorization) (*entity.Categorization, error) {
	r.upsertCalls++
	if existing, ok := r.byTransaction[c.TransactionID]; ok {
		existing.Zone = c.Zone
		existing.Note = c.Note
		existing.UpdatedAt = c.UpdatedAt
		return existing, nil
	}
	r.byTransaction[c.TransactionID] = c
	return c, nil
}

func (r *fakeCategorizationRepo) FindByTransactionID(_ context.Context, transactionID uuid.UUID) (*entity.Categorization, error) {
	c, ok := r.byTransaction[transactionID]
	if !ok {
		return nil, domainerror.ErrCategorizationNotFound
	}
	return c, nil
}

func (r *fakeCategorizationRepo) ListByUserAndRange(_ context.Context, userID uuid.UUID, _, _ time.Time) ([]*entity.Categorization, error) {
	var out []*entity.Categorization
	for _, c := range r.byTransaction {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategorizationRepo) MerchantHistory(_ context.Context, _ uuid.UUID, _ int) ([]entity.MerchantZone, error) {
	return r.history, nil
}

// fakeZoneAdvisor returns a canned suggestion.
type fakeZoneAdvisor struct {
	available bool
	zone      entity.Zone
	err       error
	calls     int
}

func (a *fakeZoneAdvisor) IsAvailable() bool { return a.available }

func (a *fakeZoneAdvisor) SuggestZone(_ context.Context, _ adapter.ZoneAdvisorRequest) (*adapter.ZoneAdvisorResult, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return &adapter.ZoneAdvisorResult{Zone: a.zone, Reasoning: "advisor suggestion"}, nil
}
