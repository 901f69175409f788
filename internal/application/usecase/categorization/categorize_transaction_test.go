package categorization

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

func newTestTransaction(t *testing.T, userID uuid.UUID, merchant string, amount string) *entity.Transaction {
	t.Helper()
	return entity.NewTransaction(
		userID,
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		merchant,
		"",
		decimal.RequireFromString(amount),
		entity.TransactionSourceManual,
		"",
	)
}

func TestCategorizeTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("records a zone decision", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewCategorizeTransactionUseCase(txRepo, catRepo)

		tx := newTestTransaction(t, userID, "Whole Foods", "54.20")
		txRepo.transactions[tx.ID] = tx

		output, err := uc.Execute(ctx, CategorizeTransactionInput{
			UserID:        userID,
			TransactionID: tx.ID,
			Zone:          entity.ZoneGreen,
			Note:          "weekly groceries",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Categorization.Zone != entity.ZoneGreen {
			t.Errorf("expected zone green, got %s", output.Categorization.Zone)
		}
		if output.Categorization.Note != "weekly groceries" {
			t.Errorf("expected note to be kept, got %q", output.Categorization.Note)
		}

		saved, err := catRepo.FindByTransactionID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("expected categorization to be persisted: %v", err)
		}
		if saved.Zone != entity.ZoneGreen {
			t.Errorf("expected persisted zone green, got %s", saved.Zone)
		}
	})

	t.Run("second decision overwrites the first", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewCategorizeTransactionUseCase(txRepo, catRepo)

		tx := newTestTransaction(t, userID, "Target", "89.99")
		txRepo.transactions[tx.ID] = tx

		for _, zone := range []entity.Zone{entity.ZoneYellow, entity.ZoneRed} {
			if _, err := uc.Execute(ctx, CategorizeTransactionInput{
				UserID:        userID,
				TransactionID: tx.ID,
				Zone:          zone,
			}); err != nil {
				t.Fatalf("expected no error for zone %s, got %v", zone, err)
			}
		}

		if len(catRepo.byTransaction) != 1 {
			t.Fatalf("expected exactly one categorization, got %d", len(catRepo.byTransaction))
		}
		saved, _ := catRepo.FindByTransactionID(ctx, tx.ID)
		if saved.Zone != entity.ZoneRed {
			t.Errorf("expected latest decision to win, got %s", saved.Zone)
		}
	})

	t.Run("re-categorization returns the stored row", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewCategorizeTransactionUseCase(txRepo, catRepo)

		tx := newTestTransaction(t, userID, "Target", "89.99")
		txRepo.transactions[tx.ID] = tx

		first, err := uc.Execute(ctx, CategorizeTransactionInput{
			UserID:        userID,
			TransactionID: tx.ID,
			Zone:          entity.ZoneYellow,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		second, err := uc.Execute(ctx, CategorizeTransactionInput{
			UserID:        userID,
			TransactionID: tx.ID,
			Zone:          entity.ZoneRed,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// The upsert keeps the stored row's identity, so the response must
		// carry the original categorization ID, not a fresh one.
		if second.Categorization.ID != first.Categorization.ID {
			t.Errorf("expected the stored categorization ID %s, got %s",
				first.Categorization.ID, second.Categorization.ID)
		}
		saved, _ := catRepo.FindByTransactionID(ctx, tx.ID)
		if second.Categorization.ID != saved.ID {
			t.Errorf("returned ID %s does not match the stored row %s",
				second.Categorization.ID, saved.ID)
		}
		if second.Categorization.Zone != entity.ZoneRed {
			t.Errorf("expected updated zone red, got %s", second.Categorization.Zone)
		}
	})

	t.Run("rejects non substantive zones", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewCategorizeTransactionUseCase(txRepo, catRepo)

		for _, zone := range []entity.Zone{entity.ZoneUncategorized, entity.Zone("purple")} {
			_, err := uc.Execute(ctx, CategorizeTransactionInput{
				UserID:        userID,
				TransactionID: uuid.New(),
				Zone:          zone,
			})
			if !errors.Is(err, domainerror.ErrInvalidZone) {
				t.Errorf("zone %q: expected ErrInvalidZone, got %v", zone, err)
			}
		}
	})

	t.Run("returns not found for unknown transaction", func(t *testing.T) {
		uc := NewCategorizeTransactionUseCase(newFakeTransactionRepo(), newFakeCategorizationRepo())

		_, err := uc.Execute(ctx, CategorizeTransactionInput{
			UserID:        userID,
			TransactionID: uuid.New(),
			Zone:          entity.ZoneGreen,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("rejects decisions on another user's transaction", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewCategorizeTransactionUseCase(txRepo, catRepo)

		tx := newTestTransaction(t, uuid.New(), "Starbucks", "6.75")
		txRepo.transactions[tx.ID] = tx

		_, err := uc.Execute(ctx, CategorizeTransactionInput{
			UserID:        userID,
			TransactionID: tx.ID,
			Zone:          entity.ZoneYellow,
		})
		if !errors.Is(err, domainerror.ErrNotTransactionOwner) {
			t.Errorf("expected ErrNotTransactionOwner, got %v", err)
		}
		if len(catRepo.byTransaction) != 0 {
			t.Errorf("expected nothing persisted, got %d categorizations", len(catRepo.byTransaction))
		}
	})
}
