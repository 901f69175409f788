// Package categorization contains zone decision use cases.
package categorization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/classification"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

const (
	// historyConfidence is assigned when a suggestion comes from the user's
	// own prior decisions for the merchant.
	historyConfidence = 0.9
	// advisorConfidence is assigned when the external advisor refines a
	// low-confidence rule result.
	advisorConfidence = 0.7
	// advisorFloor: rule results at or above this confidence are never sent
	// to the advisor.
	advisorFloor = 0.5
	// applyFloor: suggestions below this confidence are returned but not
	// persisted unless ApplyAll is set.
	applyFloor = 0.6
	// merchantHistoryLimit caps how much history feeds the suggestion pass.
	merchantHistoryLimit = 500
)

// SuggestionBasis identifies which mechanism produced a suggestion.
type SuggestionBasis string

const (
	BasisHistory SuggestionBasis = "history"
	BasisRules   SuggestionBasis = "rules"
	BasisAdvisor SuggestionBasis = "advisor"
)

// AutoCategorizeInput represents the input for batch auto-categorization.
type AutoCategorizeInput struct {
	UserID   uuid.UUID
	Apply    bool // persist suggestions at or above the confidence floor
	ApplyAll bool // persist every suggestion regardless of confidence
}

// Suggestion is one proposed zone decision.
type Suggestion struct {
	TransactionID uuid.UUID
	Zone          entity.Zone
	Category      string
	Confidence    float64
	Reasoning     string
	Basis         SuggestionBasis
	Applied       bool
}

// AutoCategorizeOutput represents the output of batch auto-categorization.
type AutoCategorizeOutput struct {
	Suggestions  []Suggestion
	AppliedCount int
}

// AutoCategorizeUseCase suggests zones for every uncategorized transaction.
// Merchant history outranks the rule engine; the optional advisor is only
// consulted for low-confidence rule results.
type AutoCategorizeUseCase struct {
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
	zoneAdvisor        adapter.ZoneAdvisor // optional, may be nil
}

// NewAutoCategorizeUseCase creates a new AutoCategorizeUseCase instance.
func NewAutoCategorizeUseCase(
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
	zoneAdvisor adapter.ZoneAdvisor,
) *AutoCategorizeUseCase {
	return &AutoCategorizeUseCase{
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
		zoneAdvisor:        zoneAdvisor,
	}
}

// Execute produces (and optionally persists) suggestions for the user's
// uncategorized transactions.
func (uc *AutoCategorizeUseCase) Execute(ctx context.Context, input AutoCategorizeInput) (*AutoCategorizeOutput, error) {
	transactions, err := uc.transactionRepo.ListUncategorized(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncategorized transactions: %w", err)
	}

	history, err := uc.categorizationRepo.MerchantHistory(ctx, input.UserID, merchantHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant history: %w", err)
	}

	output := &AutoCategorizeOutput{
		Suggestions: make([]Suggestion, 0, len(transactions)),
	}

	for _, tx := range transactions {
		suggestion := uc.suggest(ctx, tx, history)

		shouldApply := input.Apply && (input.ApplyAll || suggestion.Confidence >= applyFloor)
		if shouldApply {
			categorization := entity.NewCategorization(input.UserID, tx.ID, suggestion.Zone, "")
			if _, err := uc.categorizationRepo.Upsert(ctx, categorization); err != nil {
				return nil, fmt.Errorf("failed to save categorization: %w", err)
			}
			suggestion.Applied = true
			output.AppliedCount++
		}

		output.Suggestions = append(output.Suggestions, suggestion)
	}

	return output, nil
}

// suggest resolves a single transaction through history, rules and the
// optional advisor, in that order.
func (uc *AutoCategorizeUseCase) suggest(ctx context.Context, tx *entity.Transaction, history []entity.MerchantZone) Suggestion {
	if zone, ok := classification.SuggestZoneFromHistory(tx.MerchantName, history); ok {
		return Suggestion{
			TransactionID: tx.ID,
			Zone:          zone,
			Category:      "From Your History",
			Confidence:    historyConfidence,
			Reasoning:     fmt.Sprintf("You categorized %s as %s before.", tx.MerchantName, zone),
			Basis:         BasisHistory,
		}
	}

	result := classification.Classify(tx.MerchantName, tx.Description, tx.Amount)
	suggestion := Suggestion{
		TransactionID: tx.ID,
		Zone:          result.Zone,
		Category:      result.Category,
		Confidence:    result.Confidence,
		Reasoning:     result.Reasoning,
		Basis:         BasisRules,
	}

	if uc.zoneAdvisor == nil || !uc.zoneAdvisor.IsAvailable() || result.Confidence >= advisorFloor {
		return suggestion
	}

	advice, err := uc.zoneAdvisor.SuggestZone(ctx, adapter.ZoneAdvisorRequest{
		MerchantName: tx.MerchantName,
		Description:  tx.Description,
		Amount:       tx.Amount.StringFixed(2),
	})
	if err != nil {
		// Advisor failures never block suggestions; the rule result stands.
		slog.Warn("zone advisor failed, keeping rule result",
			"transaction_id", tx.ID,
			"error", err,
		)
		return suggestion
	}
	if advice == nil || !advice.Zone.IsSubstantive() {
		return suggestion
	}

	suggestion.Zone = advice.Zone
	suggestion.Confidence = advisorConfidence
	suggestion.Reasoning = advice.Reasoning
	suggestion.Basis = BasisAdvisor
	return suggestion
}
