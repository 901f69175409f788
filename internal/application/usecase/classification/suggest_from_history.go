package classification

import (
	"strings"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// historyThreshold is the minimum number of prior categorizations of the same
// merchant before history overrides the rule engine.
const historyThreshold = 2

// SuggestZoneFromHistory returns the zone the user most often assigned to
// this exact merchant (case-insensitive equality, not substring), provided
// the merchant was categorized at least twice before. When counts tie, the
// zone that reached the winning count first in encounter order is kept.
// The second return value is false when history is insufficient, signaling
// the caller to fall back to Classify.
func SuggestZoneFromHistory(merchantName string, history []entity.MerchantZone) (entity.Zone, bool) {
	target := strings.ToLower(strings.TrimSpace(merchantName))
	if target == "" {
		return "", false
	}

	counts := make(map[entity.Zone]int)
	var order []entity.Zone
	total := 0

	for _, prior := range history {
		if strings.ToLower(strings.TrimSpace(prior.MerchantName)) != target {
			continue
		}
		if !prior.Zone.IsSubstantive() {
			continue
		}
		if _, seen := counts[prior.Zone]; !seen {
			order = append(order, prior.Zone)
		}
		counts[prior.Zone]++
		total++
	}

	if total < historyThreshold {
		return "", false
	}

	var best entity.Zone
	bestCount := 0
	for _, zone := range order {
		if counts[zone] > bestCount {
			best = zone
			bestCount = counts[zone]
		}
	}
	return best, true
}
