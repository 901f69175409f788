// Package insight implements the spending insight generator. It consumes a
// consistent snapshot of transactions and their zone assignments and derives
// a prioritized list of observations. Like the classification engine it is
// pure computation over in-memory collections.
package insight

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/classification"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// merchantStats accumulates spend per lowercased merchant (or description,
// when the merchant name is absent).
type merchantStats struct {
	total decimal.Decimal
	count int
}

// categoryStats accumulates spend per classification category, over
// transactions that carry a user zone decision.
type categoryStats struct {
	total decimal.Decimal
	count int
}

// snapshot holds the single-pass aggregates every insight rule reads.
// Rules never mutate it.
type snapshot struct {
	zoneTotal          map[entity.Zone]decimal.Decimal
	zoneCount          map[entity.Zone]int
	merchants          map[string]*merchantStats
	categories         map[string]*categoryStats
	categorizedTotal   decimal.Decimal
	totalSpend         decimal.Decimal
	uncategorizedCount int
	monthlyIncome      *decimal.Decimal
}

// buildSnapshot runs the single aggregation pass over the input collections.
func buildSnapshot(
	transactions []*entity.Transaction,
	categorizations []*entity.Categorization,
	monthlyIncome *decimal.Decimal,
) *snapshot {
	zoneByTransaction := make(map[uuid.UUID]entity.Zone, len(categorizations))
	for _, c := range categorizations {
		zoneByTransaction[c.TransactionID] = c.Zone
	}

	snap := &snapshot{
		zoneTotal:        make(map[entity.Zone]decimal.Decimal),
		zoneCount:        make(map[entity.Zone]int),
		merchants:        make(map[string]*merchantStats),
		categories:       make(map[string]*categoryStats),
		categorizedTotal: decimal.Zero,
		totalSpend:       decimal.Zero,
		monthlyIncome:    monthlyIncome,
	}

	for _, tx := range transactions {
		zone, ok := zoneByTransaction[tx.ID]
		if !ok || !zone.IsSubstantive() {
			zone = entity.ZoneUncategorized
		}

		snap.totalSpend = snap.totalSpend.Add(tx.Amount)

		if zone == entity.ZoneUncategorized {
			snap.uncategorizedCount++
		} else {
			snap.zoneTotal[zone] = snap.zoneTotal[zone].Add(tx.Amount)
			snap.zoneCount[zone]++
			snap.categorizedTotal = snap.categorizedTotal.Add(tx.Amount)

			// Category labels come from the classification rules; only
			// transactions with a zone decision count toward them.
			category := classification.Classify(tx.MerchantName, tx.Description, tx.Amount).Category
			cat, exists := snap.categories[category]
			if !exists {
				cat = &categoryStats{total: decimal.Zero}
				snap.categories[category] = cat
			}
			cat.total = cat.total.Add(tx.Amount)
			cat.count++
		}

		key := strings.ToLower(strings.TrimSpace(tx.MerchantName))
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(tx.Description))
		}
		if key == "" {
			continue
		}
		stats, exists := snap.merchants[key]
		if !exists {
			stats = &merchantStats{total: decimal.Zero}
			snap.merchants[key] = stats
		}
		stats.total = stats.total.Add(tx.Amount)
		stats.count++
	}

	return snap
}

// totalMatching sums spend across merchants whose key contains any of the
// given keywords.
func (s *snapshot) totalMatching(keywords []string) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for key, stats := range s.merchants {
		for _, kw := range keywords {
			if strings.Contains(key, kw) {
				total = total.Add(stats.total)
				count += stats.count
				break
			}
		}
	}
	return total, count
}

// categoryTotalFor returns the categorized spend and transaction count for a
// classification category.
func (s *snapshot) categoryTotalFor(category string) (decimal.Decimal, int) {
	cat, ok := s.categories[category]
	if !ok {
		return decimal.Zero, 0
	}
	return cat.total, cat.count
}

// zoneShare returns the zone's share of categorized spend as a fraction, and
// false when the categorized total is zero (rule must skip).
func (s *snapshot) zoneShare(zone entity.Zone) (decimal.Decimal, bool) {
	if s.categorizedTotal.IsZero() {
		return decimal.Zero, false
	}
	return s.zoneTotal[zone].Div(s.categorizedTotal), true
}
