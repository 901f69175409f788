package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	validInput := RegisterUserInput{
		Email:         "dana@example.com",
		Name:          "Dana",
		Password:      "SecurePass123!",
		TermsAccepted: true,
	}

	t.Run("registers a new user and issues tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, validInput)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.Email != "dana@example.com" {
			t.Errorf("User.Email = %q, want dana@example.com", output.User.Email)
		}
		if output.User.PasswordHash != "hashed:SecurePass123!" {
			t.Errorf("PasswordHash = %q, expected hashed password", output.User.PasswordHash)
		}
		if !output.User.DigestEnabled {
			t.Error("new users should have the digest enabled by default")
		}
		if len(repo.created) != 1 {
			t.Fatalf("created %d users, want 1", len(repo.created))
		}
	})

	t.Run("rejects when terms are not accepted", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		input := validInput
		input.TermsAccepted = false
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrTermsNotAccepted) {
			t.Errorf("Execute() error = %v, want ErrTermsNotAccepted", err)
		}
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		input := validInput
		input.Email = "not-an-email"
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("Execute() error = %v, want ErrInvalidEmail", err)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{weak: true}, newFakeTokenService())

		_, err := uc.Execute(ctx, validInput)
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("Execute() error = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		existing := entity.NewUser("dana@example.com", "Dana", "hashed:other", time.Now().UTC())
		repo := newFakeUserRepo(existing)
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, validInput)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("Execute() error = %v, want ErrEmailAlreadyExists", err)
		}
		if len(repo.created) != 0 {
			t.Error("no user should be created on duplicate email")
		}
	})
}
