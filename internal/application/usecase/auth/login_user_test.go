package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("logs in with valid credentials", func(t *testing.T) {
		user := entity.NewUser("dana@example.com", "Dana", "hashed:SecurePass123!", time.Now().UTC())
		uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, LoginUserInput{
			Email:    "dana@example.com",
			Password: "SecurePass123!",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.ID != user.ID {
			t.Errorf("User.ID = %v, want %v", output.User.ID, user.ID)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		user := entity.NewUser("dana@example.com", "Dana", "hashed:SecurePass123!", time.Now().UTC())
		uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "dana@example.com",
			Password: "WrongPass999!",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("Execute() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "SecurePass123!",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("Execute() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
