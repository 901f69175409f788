// Package dashboard contains dashboard and reporting use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// Zone weights for the health score. Green spend is healthy, yellow is
// half-credit, red earns nothing.
var (
	greenWeight  = decimal.NewFromInt(1)
	yellowWeight = decimal.RequireFromString("0.5")

	// neutralScore is returned when there is no categorized spend to judge.
	neutralScore = 50
)

// GetHealthScoreInput represents the input for the health score.
type GetHealthScoreInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetHealthScoreOutput represents the computed health score.
type GetHealthScoreOutput struct {
	Score  int // 0 to 100
	Label  string
	Totals entity.ZoneTotals
}

// GetHealthScoreUseCase scores the period's spending from 0 to 100 based on
// how spend distributes across the zones.
type GetHealthScoreUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
}

// NewGetHealthScoreUseCase creates a new GetHealthScoreUseCase instance.
func NewGetHealthScoreUseCase(
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
) *GetHealthScoreUseCase {
	return &GetHealthScoreUseCase{
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
	}
}

// Execute computes the score.
func (uc *GetHealthScoreUseCase) Execute(ctx context.Context, input GetHealthScoreInput) (*GetHealthScoreOutput, error) {
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

	totals := sumZoneTotals(transactions, categorizations)
	score := scoreFromTotals(totals)

	return &GetHealthScoreOutput{
		Score:  score,
		Label:  scoreLabel(score),
		Totals: totals,
	}, nil
}

func sumZoneTotals(transactions []*entity.Transaction, categorizations []*entity.Categorization) entity.ZoneTotals {
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
	return totals
}

func scoreFromTotals(totals entity.ZoneTotals) int {
	categorized := totals.GreenTotal.Add(totals.YellowTotal).Add(totals.RedTotal)
	if categorized.IsZero() {
		return neutralScore
	}

	weighted := totals.GreenTotal.Mul(greenWeight).Add(totals.YellowTotal.Mul(yellowWeight))
	score := weighted.Div(categorized).Mul(decimal.NewFromInt(100))

	result := int(score.Round(0).IntPart())
	if result < 0 {
		return 0
	}
	if result > 100 {
		return 100
	}
	return result
}

func scoreLabel(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "needs attention"
	}
}
