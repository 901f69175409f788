package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

func seedSpending(txRepo *fakeTransactionRepo, catRepo *fakeCategorizationRepo, userID uuid.UUID) {
	rows := []struct {
		merchant string
		amount   string
		zone     entity.Zone
	}{
		{"Whole Foods", "300.00", entity.ZoneGreen},
		{"Rent", "400.00", entity.ZoneGreen},
		{"Netflix", "15.49", entity.ZoneYellow},
		{"DraftKings", "250.00", entity.ZoneRed},
	}
	for i, row := range rows {
		tx := entity.NewTransaction(
			userID,
			time.Date(2026, 8, i+1, 0, 0, 0, 0, time.UTC),
			row.merchant,
			"",
			decimal.RequireFromString(row.amount),
			entity.TransactionSourceManual,
			"",
		)
		txRepo.transactions = append(txRepo.transactions, tx)
		catRepo.categorizations = append(catRepo.categorizations,
			entity.NewCategorization(userID, tx.ID, row.zone, ""))
	}
}

func TestGetInsightsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	newUser := func() *entity.User {
		return entity.NewUser("dana@example.com", "Dana", "hash", time.Now())
	}

	t.Run("generates insights and fills the cache", func(t *testing.T) {
		user := newUser()
		txRepo := &fakeTransactionRepo{}
		catRepo := &fakeCategorizationRepo{}
		cache := newFakeInsightCache()
		seedSpending(txRepo, catRepo, user.ID)
		uc := NewGetInsightsUseCase(txRepo, catRepo, newFakeUserRepo(user), cache)

		output, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Cached {
			t.Error("expected a cache miss on first call")
		}
		if len(output.Insights) == 0 {
			t.Fatal("expected insights for red-heavy spending")
		}
		if output.Headline == nil {
			t.Fatal("expected a headline")
		}
		if output.Headline.Priority < output.Insights[len(output.Insights)-1].Priority {
			t.Error("expected headline to carry the highest priority")
		}
		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
	})

	t.Run("serves the second call from cache", func(t *testing.T) {
		user := newUser()
		txRepo := &fakeTransactionRepo{}
		catRepo := &fakeCategorizationRepo{}
		cache := newFakeInsightCache()
		seedSpending(txRepo, catRepo, user.ID)
		uc := NewGetInsightsUseCase(txRepo, catRepo, newFakeUserRepo(user), cache)

		first, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !second.Cached {
			t.Error("expected a cache hit on second call")
		}
		if len(second.Insights) != len(first.Insights) {
			t.Errorf("expected identical insights from cache, got %d vs %d", len(second.Insights), len(first.Insights))
		}
		if cache.sets != 1 {
			t.Errorf("expected no second cache write, got %d", cache.sets)
		}
	})

	t.Run("cache failures degrade to recomputation", func(t *testing.T) {
		user := newUser()
		txRepo := &fakeTransactionRepo{}
		catRepo := &fakeCategorizationRepo{}
		cache := newFakeInsightCache()
		cache.getErr = errors.New("connection refused")
		cache.setErr = errors.New("connection refused")
		seedSpending(txRepo, catRepo, user.ID)
		uc := NewGetInsightsUseCase(txRepo, catRepo, newFakeUserRepo(user), cache)

		output, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected cache failure to be non-fatal, got %v", err)
		}
		if len(output.Insights) == 0 {
			t.Error("expected recomputed insights despite cache failure")
		}
	})

	t.Run("works without a cache", func(t *testing.T) {
		user := newUser()
		txRepo := &fakeTransactionRepo{}
		catRepo := &fakeCategorizationRepo{}
		seedSpending(txRepo, catRepo, user.ID)
		uc := NewGetInsightsUseCase(txRepo, catRepo, newFakeUserRepo(user), nil)

		if _, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: start, EndDate: end}); err != nil {
			t.Fatalf("expected no error without cache, got %v", err)
		}
	})

	t.Run("no spending yields no headline", func(t *testing.T) {
		user := newUser()
		uc := NewGetInsightsUseCase(&fakeTransactionRepo{}, &fakeCategorizationRepo{}, newFakeUserRepo(user), nil)

		output, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Headline != nil {
			t.Errorf("expected no headline, got %q", output.Headline.Title)
		}
	})

	t.Run("validates the date range", func(t *testing.T) {
		user := newUser()
		uc := NewGetInsightsUseCase(&fakeTransactionRepo{}, &fakeCategorizationRepo{}, newFakeUserRepo(user), nil)

		cases := []struct {
			name       string
			start, end time.Time
			want       error
		}{
			{"missing start", time.Time{}, end, domainerror.ErrMissingStartDate},
			{"missing end", start, time.Time{}, domainerror.ErrMissingEndDate},
			{"inverted", end, start, domainerror.ErrDashboardInvalidRange},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, GetInsightsInput{UserID: user.ID, StartDate: tc.start, EndDate: tc.end})
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}
