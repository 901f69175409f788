// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plaid/plaid-go/v20/plaid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
)

// plaidPageSize is Plaid's maximum transactions page size.
const plaidPageSize = int32(500)

// PlaidConfig holds Plaid API configuration.
type PlaidConfig struct {
	ClientID    string
	Secret      string
	Environment string // sandbox or production
	AccessToken string
}

// PlaidProvider implements the adapter.BankProvider interface using Plaid.
type PlaidProvider struct {
	client      *plaid.APIClient
	accessToken string
	configured  bool
}

// NewPlaidProvider creates a new Plaid provider instance. An incomplete
// configuration yields a provider that reports unavailable rather than an
// error, so the rest of the application runs without bank sync.
func NewPlaidProvider(cfg PlaidConfig) *PlaidProvider {
	if cfg.ClientID == "" || cfg.Secret == "" || cfg.AccessToken == "" {
		return &PlaidProvider{}
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)

	switch cfg.Environment {
	case "production":
		configuration.UseEnvironment(plaid.Production)
	default:
		configuration.UseEnvironment(plaid.Sandbox)
	}

	return &PlaidProvider{
		client:      plaid.NewAPIClient(configuration),
		accessToken: cfg.AccessToken,
		configured:  true,
	}
}

// IsAvailable reports whether the provider is configured.
func (p *PlaidProvider) IsAvailable() bool {
	return p.configured
}

// FetchTransactions returns spend transactions within the date range.
// Credits (refunds, incoming transfers) are filtered out; Plaid reports
// spending as positive amounts.
func (p *PlaidProvider) FetchTransactions(ctx context.Context, start, end time.Time) ([]adapter.BankTransaction, error) {
	if !p.configured {
		return nil, fmt.Errorf("plaid provider is not configured")
	}

	var all []plaid.Transaction
	offset := int32(0)

	for {
		request := plaid.NewTransactionsGetRequest(
			p.accessToken,
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
		)
		options := plaid.TransactionsGetRequestOptions{
			Count:  plaid.PtrInt32(plaidPageSize),
			Offset: plaid.PtrInt32(offset),
		}
		request.SetOptions(options)

		resp, _, err := p.client.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch transactions: %w", err)
		}

		page := resp.GetTransactions()
		all = append(all, page...)

		if len(page) < int(plaidPageSize) {
			break
		}
		offset += plaidPageSize
	}

	transactions := make([]adapter.BankTransaction, 0, len(all))
	for _, pt := range all {
		amount := decimal.NewFromFloat(pt.GetAmount())
		if !amount.IsPositive() {
			continue
		}

		date, err := time.Parse("2006-01-02", pt.GetDate())
		if err != nil {
			slog.Warn("skipping transaction with unparseable date",
				"transaction_id", pt.GetTransactionId(),
				"date", pt.GetDate(),
			)
			continue
		}

		merchantName := pt.GetMerchantName()
		if merchantName == "" {
			merchantName = pt.GetName()
		}

		transactions = append(transactions, adapter.BankTransaction{
			ExternalID:   pt.GetTransactionId(),
			Date:         date,
			MerchantName: merchantName,
			Description:  pt.GetName(),
			Amount:       amount,
		})
	}

	return transactions, nil
}
