// Package dashboard contains dashboard and reporting use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/insight"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// insightCacheTTL bounds staleness; insights over a fixed period rarely
// change faster than new transactions arrive.
const insightCacheTTL = 15 * time.Minute

// GetInsightsInput represents the input for insight generation.
type GetInsightsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetInsightsOutput represents generated insights for the period.
type GetInsightsOutput struct {
	Insights []entity.SpendingInsight
	Headline *entity.SpendingInsight // nil when no insight fired
	Cached   bool
}

// GetInsightsUseCase generates spending insights for a date range, with a
// cache read-through. Cache failures degrade to recomputation.
type GetInsightsUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
	userRepo           adapter.UserRepository
	insightCache       adapter.InsightCache // optional, may be nil
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
	userRepo adapter.UserRepository,
	insightCache adapter.InsightCache,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
		userRepo:           userRepo,
		insightCache:       insightCache,
	}
}

// Execute returns the insights for the period.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	periodKey := periodKey(input.StartDate, input.EndDate)
	if uc.insightCache != nil {
		insights, hit, err := uc.insightCache.Get(ctx, input.UserID, periodKey)
		if err != nil {
			slog.Warn("insight cache read failed", "user_id", input.UserID, "error", err)
		} else if hit {
			return buildOutput(insights, true), nil
		}
	}

	transactions, err := uc.transactionRepo.ListByUserAndRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categorizations, err := uc.categorizationRepo.ListByUserAndRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list categorizations: %w", err)
	}
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	insights := insight.Generate(transactions, categorizations, user.MonthlyIncome)

	if uc.insightCache != nil {
		if err := uc.insightCache.Set(ctx, input.UserID, periodKey, insights, insightCacheTTL); err != nil {
			slog.Warn("insight cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return buildOutput(insights, false), nil
}

func buildOutput(insights []entity.SpendingInsight, cached bool) *GetInsightsOutput {
	output := &GetInsightsOutput{Insights: insights, Cached: cached}
	if len(insights) > 0 {
		output.Headline = &insights[0]
	}
	return output
}

// periodKey keys cache entries by the requested range at day granularity.
func periodKey(start, end time.Time) string {
	return start.Format("2006-01-02") + ":" + end.Format("2006-01-02")
}

func validateRange(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInvalidRange,
			"end date must be after start date",
			domainerror.ErrDashboardInvalidRange,
		)
	}
	return nil
}
