package classification

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// Amount band boundaries for the fallback heuristic, in currency units.
var (
	smallAmountCeiling = decimal.NewFromInt(10)
	midAmountCeiling   = decimal.NewFromInt(50)
	upperMidCeiling    = decimal.NewFromInt(200)
)

// Classify assigns a zone, category, confidence and reasoning to a single
// transaction. It is total and deterministic: any combination of inputs,
// including empty text and a zero amount, produces exactly one result.
//
// The scan order is GREEN rules, then YELLOW, then RED, then keyword
// heuristics, then amount bands. A zero amount means "absent".
func Classify(merchantName, description string, amount decimal.Decimal) entity.ClassificationResult {
	search := strings.ToLower(strings.TrimSpace(merchantName + " " + description))

	// 1. Exact rule-table scan, first match wins.
	for _, rule := range evaluationOrder {
		for _, pattern := range rule.Patterns {
			if strings.Contains(search, pattern) {
				return entity.ClassificationResult{
					Zone:       rule.Zone,
					Category:   rule.Category,
					Confidence: ConfidenceRuleMatch,
					Reasoning:  fmt.Sprintf("Matched %q, which falls under %s.", pattern, rule.Category),
				}
			}
		}
	}

	// 2. Keyword heuristics, in fixed priority order.
	if kw, ok := containsAny(search, billPaymentKeywords); ok {
		return entity.ClassificationResult{
			Zone:       entity.ZoneGreen,
			Category:   "Bills & Payments",
			Confidence: ConfidenceBillPayment,
			Reasoning:  fmt.Sprintf("Contains %q, which usually indicates a scheduled bill or payment.", kw),
		}
	}
	if kw, ok := containsAny(search, transferKeywords); ok {
		return entity.ClassificationResult{
			Zone:       entity.ZoneYellow,
			Category:   "Transfers & P2P",
			Confidence: ConfidenceTransfer,
			Reasoning:  fmt.Sprintf("Contains %q, which looks like a transfer or peer-to-peer payment.", kw),
		}
	}
	if kw, ok := containsAny(search, diningKeywords); ok {
		return entity.ClassificationResult{
			Zone:       entity.ZoneYellow,
			Category:   "Dining Out",
			Confidence: ConfidenceDining,
			Reasoning:  fmt.Sprintf("Contains %q, which suggests eating out.", kw),
		}
	}
	if kw, ok := containsAny(search, retailKeywords); ok {
		return entity.ClassificationResult{
			Zone:       entity.ZoneYellow,
			Category:   "Shopping",
			Confidence: ConfidenceRetail,
			Reasoning:  fmt.Sprintf("Contains %q, which suggests general retail.", kw),
		}
	}

	// 3. Amount bands when the merchant gave us nothing to work with.
	if amount.IsPositive() {
		switch {
		case amount.LessThan(smallAmountCeiling):
			return entity.ClassificationResult{
				Zone:       entity.ZoneRed,
				Category:   "Small Purchase",
				Confidence: ConfidenceSmallAmount,
				Reasoning:  "Unrecognized merchant under $10; small unplanned purchases tend to be impulse spending.",
			}
		case amount.LessThan(midAmountCeiling):
			return entity.ClassificationResult{
				Zone:       entity.ZoneYellow,
				Category:   "Everyday Spending",
				Confidence: ConfidenceMidAmount,
				Reasoning:  "Unrecognized merchant between $10 and $50; treating as routine discretionary spending.",
			}
		case amount.LessThan(upperMidCeiling):
			return entity.ClassificationResult{
				Zone:       entity.ZoneYellow,
				Category:   "General Spending",
				Confidence: ConfidenceUpperMid,
				Reasoning:  "Unrecognized merchant between $50 and $200; treating as discretionary until you classify it.",
			}
		default:
			return entity.ClassificationResult{
				Zone:       entity.ZoneYellow,
				Category:   "Large Purchase",
				Confidence: ConfidenceLargeAmount,
				Reasoning:  "Unrecognized merchant at $200 or more; large purchases are worth a deliberate zone decision.",
			}
		}
	}

	// 4. Nothing matched and no amount available.
	return entity.ClassificationResult{
		Zone:       entity.ZoneYellow,
		Category:   "Uncategorized Spending",
		Confidence: ConfidenceFallback,
		Reasoning:  "No merchant or amount signals were recognized; defaulting to the discretionary zone.",
	}
}

// containsAny returns the first keyword contained in the search string.
func containsAny(search string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(search, kw) {
			return kw, true
		}
	}
	return "", false
}
