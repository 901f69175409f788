package categorization

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

func TestAutoCategorizeUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("merchant history outranks the rule engine", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, nil)

		// Rules would put Starbucks in yellow; the user's own history says red.
		tx := newTestTransaction(t, userID, "Starbucks", "6.75")
		txRepo.transactions[tx.ID] = tx
		catRepo.history = []entity.MerchantZone{
			{MerchantName: "Starbucks", Zone: entity.ZoneRed},
			{MerchantName: "Starbucks", Zone: entity.ZoneRed},
		}

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Suggestions) != 1 {
			t.Fatalf("expected 1 suggestion, got %d", len(output.Suggestions))
		}
		s := output.Suggestions[0]
		if s.Basis != BasisHistory {
			t.Errorf("expected history basis, got %s", s.Basis)
		}
		if s.Zone != entity.ZoneRed {
			t.Errorf("expected zone red from history, got %s", s.Zone)
		}
		if s.Confidence != historyConfidence {
			t.Errorf("expected confidence %v, got %v", historyConfidence, s.Confidence)
		}
	})

	t.Run("falls back to rules without enough history", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, nil)

		tx := newTestTransaction(t, userID, "Whole Foods Market", "54.20")
		txRepo.transactions[tx.ID] = tx
		catRepo.history = []entity.MerchantZone{
			{MerchantName: "Whole Foods Market", Zone: entity.ZoneGreen},
		}

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		s := output.Suggestions[0]
		if s.Basis != BasisRules {
			t.Errorf("expected rules basis with one prior, got %s", s.Basis)
		}
		if s.Zone != entity.ZoneGreen {
			t.Errorf("expected zone green from rules, got %s", s.Zone)
		}
		if s.Category != "Groceries" {
			t.Errorf("expected Groceries, got %q", s.Category)
		}
	})

	t.Run("advisor refines low-confidence rule results", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		advisor := &fakeZoneAdvisor{available: true, zone: entity.ZoneGreen}
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, advisor)

		// Unknown merchant at $150 lands in a low-confidence amount band.
		tx := newTestTransaction(t, userID, "Acme Widgets LLC", "150.00")
		txRepo.transactions[tx.ID] = tx

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		s := output.Suggestions[0]
		if advisor.calls != 1 {
			t.Fatalf("expected 1 advisor call, got %d", advisor.calls)
		}
		if s.Basis != BasisAdvisor {
			t.Errorf("expected advisor basis, got %s", s.Basis)
		}
		if s.Zone != entity.ZoneGreen {
			t.Errorf("expected advisor zone, got %s", s.Zone)
		}
		if s.Confidence != advisorConfidence {
			t.Errorf("expected confidence %v, got %v", advisorConfidence, s.Confidence)
		}
	})

	t.Run("advisor is skipped for confident rule results", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		advisor := &fakeZoneAdvisor{available: true, zone: entity.ZoneRed}
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, advisor)

		tx := newTestTransaction(t, userID, "Whole Foods Market", "54.20")
		txRepo.transactions[tx.ID] = tx

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if advisor.calls != 0 {
			t.Errorf("expected no advisor calls, got %d", advisor.calls)
		}
		if output.Suggestions[0].Basis != BasisRules {
			t.Errorf("expected rules basis, got %s", output.Suggestions[0].Basis)
		}
	})

	t.Run("advisor failure keeps the rule result", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		advisor := &fakeZoneAdvisor{available: true, err: errors.New("quota exceeded")}
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, advisor)

		tx := newTestTransaction(t, userID, "Acme Widgets LLC", "150.00")
		txRepo.transactions[tx.ID] = tx

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		s := output.Suggestions[0]
		if s.Basis != BasisRules {
			t.Errorf("expected rules basis after advisor failure, got %s", s.Basis)
		}
		if s.Zone != entity.ZoneYellow {
			t.Errorf("expected rule zone yellow, got %s", s.Zone)
		}
	})

	t.Run("apply persists only confident suggestions", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, nil)

		confident := newTestTransaction(t, userID, "Whole Foods Market", "54.20") // 0.85
		uncertain := newTestTransaction(t, userID, "Acme Widgets LLC", "150.00")  // 0.35
		txRepo.transactions[confident.ID] = confident
		txRepo.transactions[uncertain.ID] = uncertain

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID, Apply: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.AppliedCount != 1 {
			t.Errorf("expected 1 applied, got %d", output.AppliedCount)
		}
		if _, err := catRepo.FindByTransactionID(ctx, confident.ID); err != nil {
			t.Errorf("expected confident suggestion persisted: %v", err)
		}
		if _, err := catRepo.FindByTransactionID(ctx, uncertain.ID); err == nil {
			t.Error("expected uncertain suggestion not persisted")
		}
	})

	t.Run("apply all persists everything", func(t *testing.T) {
		txRepo := newFakeTransactionRepo()
		catRepo := newFakeCategorizationRepo()
		uc := NewAutoCategorizeUseCase(txRepo, catRepo, nil)

		confident := newTestTransaction(t, userID, "Whole Foods Market", "54.20")
		uncertain := newTestTransaction(t, userID, "Acme Widgets LLC", "150.00")
		txRepo.transactions[confident.ID] = confident
		txRepo.transactions[uncertain.ID] = uncertain

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID, Apply: true, ApplyAll: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.AppliedCount != 2 {
			t.Errorf("expected 2 applied, got %d", output.AppliedCount)
		}
		for _, s := range output.Suggestions {
			if !s.Applied {
				t.Errorf("expected suggestion for %s marked applied", s.TransactionID)
			}
		}
	})

	t.Run("no uncategorized transactions yields no suggestions", func(t *testing.T) {
		uc := NewAutoCategorizeUseCase(newFakeTransactionRepo(), newFakeCategorizationRepo(), nil)

		output, err := uc.Execute(ctx, AutoCategorizeInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Suggestions) != 0 {
			t.Errorf("expected no suggestions, got %d", len(output.Suggestions))
		}
	})
}
