package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

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
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
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

func (r *fakeTransactionRepo) ListUncategorized(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeTransactionRepo) ExistsByExternalID(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

type fakeCategorizationRepo struct {
	categorizations []*entity.Categorization
}

func (r *fakeCategorizationRepo) Upsert(_ context.Context, c *entity.Categorization) (*entity.Categorization, error) {
	r.categorizations = append(r.categorizations, c)
	return c, nil
}

func (r *fakeCategorizationRepo) FindByTransactionID(_ context.Context, _ uuid.UUID) (*entity.Categorization, error) {
	return nil, domainerror.ErrCategorizationNotFound
}

func (r *fakeCategorizationRepo) ListByUserAndRange(_ context.Context, userID uuid.UUID, _, _ time.Time) ([]*entity.Categorization, error) {
	var out []*entity.Categorization
	for _, c := range r.categorizations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategorizationRepo) MerchantHistory(_ context.Context, _ uuid.UUID, _ int) ([]entity.MerchantZone, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *fakeUserRepo) ListDigestRecipients(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.DigestEnabled {
			out = append(out, u)
		}
	}
	return out, nil
}

type cacheEntry struct {
	insights []entity.SpendingInsight
}

// fakeInsightCache is an in-memory InsightCache. TTLs are ignored.
type fakeInsightCache struct {
	entries map[string]cacheEntry
	getErr  error
	setErr  error
	sets    int
}

func newFakeInsightCache() *fakeInsightCache {
	return &fakeInsightCache{entries: make(map[string]cacheEntry)}
}

func (c *fakeInsightCache) key(userID uuid.UUID, periodKey string) string {
	return userID.String() + "/" + periodKey
}

func (c *fakeInsightCache) Get(_ context.Context, userID uuid.UUID, periodKey string) ([]entity.SpendingInsight, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	entry, ok := c.entries[c.key(userID, periodKey)]
	return entry.insights, ok, nil
}

func (c *fakeInsightCache) Set(_ context.Context, userID uuid.UUID, periodKey string, insights []entity.SpendingInsight, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[c.key(userID, periodKey)] = cacheEntry{insights: insights}
	return nil
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

type fakeEmailSender struct {
	sent []sentEmail
	err  error
}

func (s *fakeEmailSender) Send(_ context.Context, to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentEmail{to: to, subject: subject, body: htmlBody})
	return nil
}
