// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a registered user in the SpendSignal system.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	MonthlyIncome   *decimal.Decimal // Optional, enables savings-rate insights
	DigestEnabled   bool             // Weekly insight digest email opt-in
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User entity.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()

	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		DigestEnabled:   true,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
