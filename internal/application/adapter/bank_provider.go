// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is a transaction as reported by a banking-data aggregator.
type BankTransaction struct {
	ExternalID   string
	Date         time.Time
	MerchantName string
	Description  string
	Amount       decimal.Decimal // absolute spend amount
}

// BankProvider fetches transactions from a banking-data aggregator.
type BankProvider interface {
	// IsAvailable reports whether the provider is configured.
	IsAvailable() bool

	// FetchTransactions returns spend transactions within the date range.
	FetchTransactions(ctx context.Context, start, end time.Time) ([]BankTransaction, error)
}
