// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Password      string `json:"password" binding:"required,min=8"`
	TermsAccepted bool   `json:"terms_accepted" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateSettingsRequest represents the request body for a settings update.
// Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	Name          *string `json:"name,omitempty"`
	MonthlyIncome *string `json:"monthly_income,omitempty"`
	ClearIncome   bool    `json:"clear_income,omitempty"`
	DigestEnabled *bool   `json:"digest_enabled,omitempty"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	MonthlyIncome *string   `json:"monthly_income,omitempty"`
	DigestEnabled bool      `json:"digest_enabled"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Name:          user.Name,
		DigestEnabled: user.DigestEnabled,
		CreatedAt:     user.CreatedAt,
	}
	if user.MonthlyIncome != nil {
		income := user.MonthlyIncome.StringFixed(2)
		resp.MonthlyIncome = &income
	}
	return resp
}
