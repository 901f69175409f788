package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/classification"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// Business constants. These thresholds and multipliers are fixed product
// decisions; changing one changes every user's dashboard.
var (
	redShareWarnThreshold    = decimal.NewFromFloat(0.20)
	comboShareWarnThreshold  = decimal.NewFromFloat(0.50)
	greenShareWinThreshold   = decimal.NewFromFloat(0.70)
	redShareWinThreshold     = decimal.NewFromFloat(0.10)
	coffeeSpendThreshold     = decimal.NewFromInt(50)
	fastFoodSpendThreshold   = decimal.NewFromInt(100)
	amazonSpendThreshold     = decimal.NewFromInt(200)
	streamingSpendThreshold  = decimal.NewFromInt(50)
	savingsRateWarnThreshold = decimal.NewFromFloat(0.10)
	savingsRateWinThreshold  = decimal.NewFromFloat(0.20)
	redIncomeShareThreshold  = decimal.NewFromFloat(0.10)
	yearlyProjectionFactor   = decimal.NewFromInt(4)
	halfYearProjectionFactor = decimal.NewFromInt(6)
)

const uncategorizedNudgeThreshold = 5

// Merchant keyword groups the insight rules watch. Matching is substring
// over the lowercased merchant key, same as the classification tables.
var (
	coffeeMerchants   = []string{"starbucks", "dunkin", "coffee", "peet", "caribou"}
	deliveryMerchants = []string{"doordash", "grubhub", "uber eats", "postmates", "seamless", "caviar"}
	fastFoodMerchants = []string{"mcdonald", "burger king", "wendy", "taco bell", "kfc", "popeyes", "chick-fil-a"}
	amazonMerchants   = []string{"amazon", "amzn"}
	gamblingMerchants = []string{"casino", "draftkings", "fanduel", "betmgm", "lottery", "poker", "sportsbook"}
)

// insightRule inspects the snapshot and emits at most one insight. Rules are
// independent: they read the shared snapshot and never mutate it, so the list
// order only matters for tie-breaking equal priorities.
type insightRule struct {
	name  string
	build func(*snapshot) *entity.SpendingInsight
}

// checklist is the fixed, ordered rule list evaluated on every generation.
var checklist = []insightRule{
	{name: "red zone share", build: redZoneAlert},
	{name: "discretionary share", build: discretionaryCreep},
	{name: "coffee habit", build: coffeeHabit},
	{name: "delivery apps", build: deliverySpend},
	{name: "fast food", build: fastFoodSpend},
	{name: "amazon volume", build: amazonVolume},
	{name: "streaming stack", build: streamingStack},
	{name: "gambling", build: gamblingAlert},
	{name: "green share win", build: greenShareWin},
	{name: "low red win", build: lowRedWin},
	{name: "savings rate", build: savingsRate},
	{name: "red vs income", build: redVersusIncome},
	{name: "uncategorized nudge", build: uncategorizedNudge},
}

func redZoneAlert(s *snapshot) *entity.SpendingInsight {
	share, ok := s.zoneShare(entity.ZoneRed)
	if !ok || share.LessThanOrEqual(redShareWarnThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindWarning,
		Title: "Red Zone Alert",
		Message: fmt.Sprintf("%s%% of your categorized spending ($%s) landed in the red zone this period.",
			formatPercent(share), s.zoneTotal[entity.ZoneRed].StringFixed(2)),
		Impact:   fmt.Sprintf("$%s wasted on avoidable spending.", s.zoneTotal[entity.ZoneRed].StringFixed(2)),
		Priority: 10,
	}
}

func discretionaryCreep(s *snapshot) *entity.SpendingInsight {
	if s.categorizedTotal.IsZero() {
		return nil
	}
	combined := s.zoneTotal[entity.ZoneYellow].Add(s.zoneTotal[entity.ZoneRed])
	share := combined.Div(s.categorizedTotal)
	if share.LessThanOrEqual(comboShareWarnThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindWarning,
		Title: "Wants Are Outpacing Needs",
		Message: fmt.Sprintf("Yellow and red zones together make up %s%% of your categorized spending.",
			formatPercent(share)),
		Priority: 9,
	}
}

func coffeeHabit(s *snapshot) *entity.SpendingInsight {
	total, count := s.totalMatching(coffeeMerchants)
	if total.LessThanOrEqual(coffeeSpendThreshold) {
		return nil
	}
	yearly := total.Mul(yearlyProjectionFactor)
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindAction,
		Title: "Coffee Run Check",
		Message: fmt.Sprintf("You spent $%s across %d coffee shop visits this period.",
			total.StringFixed(2), count),
		Impact:   fmt.Sprintf("Kept up all year, that pace is roughly $%s.", yearly.StringFixed(2)),
		Priority: 7,
	}
}

func deliverySpend(s *snapshot) *entity.SpendingInsight {
	total, count := s.totalMatching(deliveryMerchants)
	if !total.IsPositive() {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindAction,
		Title: "Delivery Fees Add Up",
		Message: fmt.Sprintf("$%s went to delivery apps over %d orders. Pickup alone usually saves 25-30%%.",
			total.StringFixed(2), count),
		Priority: 8,
	}
}

func fastFoodSpend(s *snapshot) *entity.SpendingInsight {
	total, _ := s.totalMatching(fastFoodMerchants)
	if total.LessThanOrEqual(fastFoodSpendThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:     entity.InsightKindWarning,
		Title:    "Fast Food Frequency",
		Message:  fmt.Sprintf("Fast food came to $%s this period.", total.StringFixed(2)),
		Priority: 6,
	}
}

func amazonVolume(s *snapshot) *entity.SpendingInsight {
	total, count := s.totalMatching(amazonMerchants)
	if total.LessThanOrEqual(amazonSpendThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindTip,
		Title: "Amazon Adds Up",
		Message: fmt.Sprintf("%d Amazon orders totaled $%s. A 24-hour cart rule cuts most impulse orders.",
			count, total.StringFixed(2)),
		Priority: 6,
	}
}

func streamingStack(s *snapshot) *entity.SpendingInsight {
	total, _ := s.categoryTotalFor(classification.CategoryStreaming)
	if total.LessThanOrEqual(streamingSpendThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:     entity.InsightKindTip,
		Title:    "Streaming Stack",
		Message:  fmt.Sprintf("Streaming and music subscriptions totaled $%s. Worth checking which ones you still watch.", total.StringFixed(2)),
		Priority: 5,
	}
}

func gamblingAlert(s *snapshot) *entity.SpendingInsight {
	total, _ := s.totalMatching(gamblingMerchants)
	if !total.IsPositive() {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:     entity.InsightKindWarning,
		Title:    "Gambling Spend Detected",
		Message:  fmt.Sprintf("$%s went to gambling or betting merchants this period.", total.StringFixed(2)),
		Priority: 10,
	}
}

func greenShareWin(s *snapshot) *entity.SpendingInsight {
	share, ok := s.zoneShare(entity.ZoneGreen)
	if !ok || share.LessThanOrEqual(greenShareWinThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindWin,
		Title: "Essentials First",
		Message: fmt.Sprintf("%s%% of your categorized spending went to essentials. Solid discipline.",
			formatPercent(share)),
		Priority: 4,
	}
}

func lowRedWin(s *snapshot) *entity.SpendingInsight {
	share, ok := s.zoneShare(entity.ZoneRed)
	if !ok || !s.zoneTotal[entity.ZoneRed].IsPositive() || share.GreaterThanOrEqual(redShareWinThreshold) {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindWin,
		Title: "Red Zone Under Control",
		Message: fmt.Sprintf("Only %s%% of categorized spending was avoidable. Keep it there.",
			formatPercent(share)),
		Priority: 3,
	}
}

func savingsRate(s *snapshot) *entity.SpendingInsight {
	if s.monthlyIncome == nil || !s.monthlyIncome.IsPositive() {
		return nil
	}
	rate := s.monthlyIncome.Sub(s.totalSpend).Div(*s.monthlyIncome)
	switch {
	case rate.LessThan(savingsRateWarnThreshold):
		return &entity.SpendingInsight{
			Kind:  entity.InsightKindWarning,
			Title: "Savings Rate Is Thin",
			Message: fmt.Sprintf("You're saving %s%% of your income this period; 10%% is the usual floor.",
				formatPercent(rate)),
			Priority: 9,
		}
	case rate.GreaterThanOrEqual(savingsRateWinThreshold):
		return &entity.SpendingInsight{
			Kind:  entity.InsightKindWin,
			Title: "Strong Savings Rate",
			Message: fmt.Sprintf("You're saving %s%% of your income. That's ahead of the 20%% target.",
				formatPercent(rate)),
			Priority: 4,
		}
	default:
		return nil
	}
}

func redVersusIncome(s *snapshot) *entity.SpendingInsight {
	if s.monthlyIncome == nil || !s.monthlyIncome.IsPositive() {
		return nil
	}
	red := s.zoneTotal[entity.ZoneRed]
	if red.Div(*s.monthlyIncome).LessThanOrEqual(redIncomeShareThreshold) {
		return nil
	}
	projected := red.Mul(halfYearProjectionFactor)
	return &entity.SpendingInsight{
		Kind:  entity.InsightKindAction,
		Title: "Red Zone vs. Income",
		Message: fmt.Sprintf("Avoidable spending ate more than 10%% of your income ($%s).",
			red.StringFixed(2)),
		Impact:   fmt.Sprintf("At this pace that's $%s gone in six months.", projected.StringFixed(2)),
		Priority: 8,
	}
}

func uncategorizedNudge(s *snapshot) *entity.SpendingInsight {
	if s.uncategorizedCount <= uncategorizedNudgeThreshold {
		return nil
	}
	return &entity.SpendingInsight{
		Kind:     entity.InsightKindAction,
		Title:    "Sort Your Transactions",
		Message:  fmt.Sprintf("%d transactions are still uncategorized. Drag them into a zone to sharpen your insights.", s.uncategorizedCount),
		Priority: 5,
	}
}

// formatPercent renders a fractional share as a whole-number percentage.
func formatPercent(share decimal.Decimal) string {
	return share.Mul(decimal.NewFromInt(100)).Round(0).String()
}
