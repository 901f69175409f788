// Package categorization contains zone decision use cases.
package categorization

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// GetZoneSummaryInput represents the input for the zone summary.
type GetZoneSummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetZoneSummaryOutput represents aggregated zone totals for a period.
type GetZoneSummaryOutput struct {
	Totals entity.ZoneTotals
}

// GetZoneSummaryUseCase aggregates spend per zone over a period.
type GetZoneSummaryUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
}

// NewGetZoneSummaryUseCase creates a new GetZoneSummaryUseCase instance.
func NewGetZoneSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
) *GetZoneSummaryUseCase {
	return &GetZoneSummaryUseCase{
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
	}
}

// Execute computes the zone totals.
func (uc *GetZoneSummaryUseCase) Execute(ctx context.Context, input GetZoneSummaryInput) (*GetZoneSummaryOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must be after start date",
			domainerror.ErrInvalidDateRange,
		)
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

	totals := entity.ZoneTotals{}
	for _, tx := range transactions {
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

	return &GetZoneSummaryOutput{Totals: totals}, nil
}
