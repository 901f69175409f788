package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

func TestSendDigestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("sends the weekly summary", func(t *testing.T) {
		user := entity.NewUser("dana@example.com", "Dana", "hash", now)
		txRepo := &fakeTransactionRepo{}
		catRepo := &fakeCategorizationRepo{}
		sender := &fakeEmailSender{}

		tx := entity.NewTransaction(
			user.ID, now.AddDate(0, 0, -2), "DraftKings", "",
			decimal.RequireFromString("250.00"), entity.TransactionSourceManual, "",
		)
		txRepo.transactions = append(txRepo.transactions, tx)
		catRepo.categorizations = append(catRepo.categorizations,
			entity.NewCategorization(user.ID, tx.ID, entity.ZoneRed, ""))

		uc := NewSendDigestUseCase(newFakeUserRepo(user), txRepo, catRepo, sender)
		output, err := uc.Execute(ctx, SendDigestInput{UserID: user.ID, Now: now})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Sent {
			t.Error("expected the digest to be sent")
		}
		if output.Headline == nil {
			t.Fatal("expected a headline for red-only spending")
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		email := sender.sent[0]
		if email.to != "dana@example.com" {
			t.Errorf("unexpected recipient %q", email.to)
		}
		if !strings.Contains(email.body, "Dana") {
			t.Error("expected the body to greet the user by name")
		}
		if !strings.Contains(email.body, output.Headline.Title) {
			t.Error("expected the body to carry the headline")
		}
		if !strings.Contains(email.body, "250.00") {
			t.Error("expected the body to carry the red total")
		}
	})

	t.Run("refuses when the user opted out", func(t *testing.T) {
		user := entity.NewUser("dana@example.com", "Dana", "hash", now)
		user.DigestEnabled = false
		sender := &fakeEmailSender{}

		uc := NewSendDigestUseCase(newFakeUserRepo(user), &fakeTransactionRepo{}, &fakeCategorizationRepo{}, sender)
		_, err := uc.Execute(ctx, SendDigestInput{UserID: user.ID, Now: now})
		if !errors.Is(err, domainerror.ErrDigestDisabled) {
			t.Errorf("expected ErrDigestDisabled, got %v", err)
		}
		if len(sender.sent) != 0 {
			t.Errorf("expected no email, got %d", len(sender.sent))
		}
	})

	t.Run("quiet weeks still send the totals", func(t *testing.T) {
		user := entity.NewUser("dana@example.com", "Dana", "hash", now)
		sender := &fakeEmailSender{}

		uc := NewSendDigestUseCase(newFakeUserRepo(user), &fakeTransactionRepo{}, &fakeCategorizationRepo{}, sender)
		output, err := uc.Execute(ctx, SendDigestInput{UserID: user.ID, Now: now})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Headline != nil {
			t.Error("expected no headline for an empty week")
		}
		if len(sender.sent) != 1 {
			t.Errorf("expected 1 email, got %d", len(sender.sent))
		}
	})

	t.Run("propagates send failures", func(t *testing.T) {
		user := entity.NewUser("dana@example.com", "Dana", "hash", now)
		sendErr := errors.New("rate limited")
		sender := &fakeEmailSender{err: sendErr}

		uc := NewSendDigestUseCase(newFakeUserRepo(user), &fakeTransactionRepo{}, &fakeCategorizationRepo{}, sender)
		_, err := uc.Execute(ctx, SendDigestInput{UserID: user.ID, Now: now})
		if !errors.Is(err, sendErr) {
			t.Errorf("expected send error, got %v", err)
		}
	})
}
