package insight

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// Generate evaluates the full rule checklist against a snapshot of
// transactions and their categorizations and returns the firing insights
// sorted by priority, highest first. Insights with equal priority keep their
// generation order. Empty inputs yield an empty list.
//
// The caller must pass a consistent snapshot: the generator does not defend
// against concurrent mutation of the input slices during a call.
func Generate(
	transactions []*entity.Transaction,
	categorizations []*entity.Categorization,
	monthlyIncome *decimal.Decimal,
) []entity.SpendingInsight {
	snap := buildSnapshot(transactions, categorizations, monthlyIncome)

	insights := make([]entity.SpendingInsight, 0, len(checklist))
	for _, rule := range checklist {
		if in := rule.build(snap); in != nil {
			insights = append(insights, *in)
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})

	return insights
}

// Headline returns the single highest-priority insight, or false when the
// generated list is empty.
func Headline(
	transactions []*entity.Transaction,
	categorizations []*entity.Categorization,
	monthlyIncome *decimal.Decimal,
) (entity.SpendingInsight, bool) {
	insights := Generate(transactions, categorizations, monthlyIncome)
	if len(insights) == 0 {
		return entity.SpendingInsight{}, false
	}
	return insights[0], true
}
