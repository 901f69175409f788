// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Categorization is the user's zone decision for a single transaction.
// Exactly one categorization exists per transaction at any time; re-categorizing
// overwrites the previous decision in place (upsert semantics).
type Categorization struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Zone          Zone
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategorization creates a new Categorization entity.
func NewCategorization(userID, transactionID uuid.UUID, zone Zone, note string) *Categorization {
	now := time.Now().UTC()

	return &Categorization{
		ID:            uuid.New(),
		UserID:        userID,
		TransactionID: transactionID,
		Zone:          zone,
		Note:          note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MerchantZone is one prior user decision for a merchant, used by the
// merchant-history suggestion.
type MerchantZone struct {
	MerchantName string
	Zone         Zone
}
