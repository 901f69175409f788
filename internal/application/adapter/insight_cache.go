// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// InsightCache is a read-through accelerator for generated insights.
// Insights are always recomputable from the current snapshot; the cache only
// avoids recomputation inside its TTL and may miss at any time.
type InsightCache interface {
	// Get returns the cached insights for the user and period key, or false on miss.
	Get(ctx context.Context, userID uuid.UUID, periodKey string) ([]entity.SpendingInsight, bool, error)

	// Set stores the insights under the user and period key for the given TTL.
	Set(ctx context.Context, userID uuid.UUID, periodKey string, insights []entity.SpendingInsight, ttl time.Duration) error
}
