// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionSource identifies how a transaction entered the system.
type TransactionSource string

const (
	TransactionSourceManual TransactionSource = "manual"
	TransactionSourceCSV    TransactionSource = "csv"
	TransactionSourcePlaid  TransactionSource = "plaid"
)

// Transaction represents a financial transaction in the SpendSignal system.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Date         time.Time
	MerchantName string
	Description  string
	Amount       decimal.Decimal // Absolute spend amount in the account currency
	Source       TransactionSource
	ExternalID   string // Provider transaction ID for synced transactions (dedup key)
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	merchantName string,
	description string,
	amount decimal.Decimal,
	source TransactionSource,
	externalID string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		MerchantName: merchantName,
		Description:  description,
		Amount:       amount,
		Source:       source,
		ExternalID:   externalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TransactionWithZone pairs a transaction with its current categorization, if any.
type TransactionWithZone struct {
	Transaction    *Transaction
	Categorization *Categorization // nil when uncategorized
}

// Zone returns the assigned zone, or ZoneUncategorized when no decision exists.
func (t *TransactionWithZone) Zone() Zone {
	if t.Categorization == nil {
		return ZoneUncategorized
	}
	return t.Categorization.Zone
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithZone
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// ZoneTotals represents aggregated spend per zone.
type ZoneTotals struct {
	GreenTotal  decimal.Decimal
	YellowTotal decimal.Decimal
	RedTotal    decimal.Decimal
	GreenCount  int
	YellowCount int
	RedCount    int
	Uncounted   int // transactions without a categorization
}
