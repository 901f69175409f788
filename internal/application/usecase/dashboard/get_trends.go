// Package dashboard contains dashboard and reporting use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// MonthlyZoneTotals pairs one calendar month with its zone totals.
type MonthlyZoneTotals struct {
	Month  string // YYYY-MM
	Totals entity.ZoneTotals
}

// GetTrendsInput represents the input for spending trends.
type GetTrendsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetTrendsOutput represents per-month zone totals, oldest first.
type GetTrendsOutput struct {
	Months []MonthlyZoneTotals
}

// GetTrendsUseCase breaks the period's spend into per-month zone totals.
type GetTrendsUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
	}
}

// Execute computes the trend buckets.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.ListByUserAndRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categorizations, err := uc.categorizationRepo.ListByUserAndRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list categorizations: %w", err)
	}

	zoneByTransaction := make(map[uuid.UUID]entity.Zone, len(categorizations))
	for _, c := range categorizations {
		zoneByTransaction[c.TransactionID] = c.Zone
	}

	buckets := make(map[string]*entity.ZoneTotals)
	for _, tx := range transactions {
		month := tx.Date.Format("2006-01")
		totals, ok := buckets[month]
		if !ok {
			totals = &entity.ZoneTotals{}
			buckets[month] = totals
		}
		switch zoneByTransaction[tx.ID] {
		case entity.ZoneGreen:
			totals.GreenTotal = totals.GreenTotal.Add(tx.Amount)
			totals.GreenCount++
		case entity.ZoneYellow:
			totals.YellowTotal = totals.YellowTotal.Add(tx.Amount)
			totals.YellowCount++
		case entity.ZoneRed:
			totals.RedTotal = totals.RedTotal.Add(tx.Amount)
			totals.RedCount++
		default:
			totals.Uncounted++
		}
	}

	months := make([]MonthlyZoneTotals, 0, len(buckets))
	for month, totals := range buckets {
		months = append(months, MonthlyZoneTotals{Month: month, Totals: *totals})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	return &GetTrendsOutput{Months: months}, nil
}
