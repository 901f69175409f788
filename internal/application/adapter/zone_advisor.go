// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// ZoneAdvisorRequest asks for a second opinion on low-confidence classifications.
type ZoneAdvisorRequest struct {
	MerchantName string
	Description  string
	Amount       string
}

// ZoneAdvisorResult is the advisor's suggestion for one transaction.
type ZoneAdvisorResult struct {
	Zone      entity.Zone
	Reasoning string
}

// ZoneAdvisor is an optional external service consulted when the rule engine
// returns a low-confidence result. The rule engine never depends on it; the
// advisor only refines suggestions before they reach the user.
type ZoneAdvisor interface {
	// IsAvailable reports whether the advisor is configured.
	IsAvailable() bool

	// SuggestZone returns a zone suggestion for one transaction.
	SuggestZone(ctx context.Context, request ZoneAdvisorRequest) (*ZoneAdvisorResult, error)
}
