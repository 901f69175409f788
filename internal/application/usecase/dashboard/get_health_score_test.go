package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

func TestGetHealthScoreUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	seed := func(txRepo *fakeTransactionRepo, catRepo *fakeCategorizationRepo, amount string, zone entity.Zone) {
		tx := entity.NewTransaction(
			userID, start.AddDate(0, 0, 5), "Merchant", "",
			decimal.RequireFromString(amount), entity.TransactionSourceManual, "",
		)
		txRepo.transactions = append(txRepo.transactions, tx)
		if zone.IsSubstantive() {
			catRepo.categorizations = append(catRepo.categorizations,
				entity.NewCategorization(userID, tx.ID, zone, ""))
		}
	}

	run := func(t *testing.T, txRepo *fakeTransactionRepo, catRepo *fakeCategorizationRepo) *GetHealthScoreOutput {
		t.Helper()
		uc := NewGetHealthScoreUseCase(txRepo, catRepo)
		output, err := uc.Execute(ctx, GetHealthScoreInput{UserID: userID, StartDate: start, EndDate: end})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return output
	}

	t.Run("all green scores 100", func(t *testing.T) {
		txRepo, catRepo := &fakeTransactionRepo{}, &fakeCategorizationRepo{}
		seed(txRepo, catRepo, "500.00", entity.ZoneGreen)

		output := run(t, txRepo, catRepo)
		if output.Score != 100 {
			t.Errorf("expected 100, got %d", output.Score)
		}
		if output.Label != "excellent" {
			t.Errorf("expected excellent, got %q", output.Label)
		}
	})

	t.Run("all red scores 0", func(t *testing.T) {
		txRepo, catRepo := &fakeTransactionRepo{}, &fakeCategorizationRepo{}
		seed(txRepo, catRepo, "500.00", entity.ZoneRed)

		output := run(t, txRepo, catRepo)
		if output.Score != 0 {
			t.Errorf("expected 0, got %d", output.Score)
		}
		if output.Label != "needs attention" {
			t.Errorf("expected needs attention, got %q", output.Label)
		}
	})

	t.Run("yellow earns half credit", func(t *testing.T) {
		txRepo, catRepo := &fakeTransactionRepo{}, &fakeCategorizationRepo{}
		seed(txRepo, catRepo, "500.00", entity.ZoneYellow)

		output := run(t, txRepo, catRepo)
		if output.Score != 50 {
			t.Errorf("expected 50, got %d", output.Score)
		}
	})

	t.Run("mixed spend weights by amount", func(t *testing.T) {
		txRepo, catRepo := &fakeTransactionRepo{}, &fakeCategorizationRepo{}
		// 600 green + 200 yellow + 200 red over 1000 categorized:
		// (600 + 100) / 1000 = 70.
		seed(txRepo, catRepo, "600.00", entity.ZoneGreen)
		seed(txRepo, catRepo, "200.00", entity.ZoneYellow)
		seed(txRepo, catRepo, "200.00", entity.ZoneRed)

		output := run(t, txRepo, catRepo)
		if output.Score != 70 {
			t.Errorf("expected 70, got %d", output.Score)
		}
		if output.Label != "good" {
			t.Errorf("expected good, got %q", output.Label)
		}
	})

	t.Run("no categorized spend is neutral", func(t *testing.T) {
		txRepo, catRepo := &fakeTransactionRepo{}, &fakeCategorizationRepo{}
		seed(txRepo, catRepo, "500.00", entity.ZoneUncategorized)

		output := run(t, txRepo, catRepo)
		if output.Score != neutralScore {
			t.Errorf("expected %d, got %d", neutralScore, output.Score)
		}
		if output.Totals.Uncounted != 1 {
			t.Errorf("expected 1 uncounted, got %d", output.Totals.Uncounted)
		}
	})
}
