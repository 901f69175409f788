// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// insightCache implements the adapter.InsightCache interface on Redis.
type insightCache struct {
	client *redis.Client
}

// NewInsightCache creates a new Redis-backed insight cache instance.
func NewInsightCache(client *redis.Client) adapter.InsightCache {
	return &insightCache{
		client: client,
	}
}

func cacheKey(userID uuid.UUID, periodKey string) string {
	return fmt.Sprintf("insights:%s:%s", userID, periodKey)
}

// Get returns the cached insights for the user and period key, or false on miss.
func (c *insightCache) Get(ctx context.Context, userID uuid.UUID, periodKey string) ([]entity.SpendingInsight, bool, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID, periodKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read insight cache: %w", err)
	}

	var insights []entity.SpendingInsight
	if err := json.Unmarshal(payload, &insights); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, false, nil
	}
	return insights, true, nil
}

// Set stores the insights under the user and period key for the given TTL.
func (c *insightCache) Set(ctx context.Context, userID uuid.UUID, periodKey string, insights []entity.SpendingInsight, ttl time.Duration) error {
	payload, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("failed to encode insights: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(userID, periodKey), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write insight cache: %w", err)
	}
	return nil
}
