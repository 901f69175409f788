// Package user contains profile and settings use cases.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// UpdateSettingsInput represents the input for a settings update. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	UserID        uuid.UUID
	Name          *string
	MonthlyIncome *decimal.Decimal
	ClearIncome   bool // removes the stored income
	DigestEnabled *bool
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	User *entity.User
}

// UpdateSettingsUseCase handles user profile and preference updates.
type UpdateSettingsUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(userRepo adapter.UserRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{userRepo: userRepo}
}

// Execute applies the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.ClearIncome {
		user.MonthlyIncome = nil
	} else if input.MonthlyIncome != nil && input.MonthlyIncome.IsPositive() {
		user.MonthlyIncome = input.MonthlyIncome
	}
	if input.DigestEnabled != nil {
		user.DigestEnabled = *input.DigestEnabled
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateSettingsOutput{User: user}, nil
}
