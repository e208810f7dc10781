// Package rediscache stores recommendation results in Redis as JSON.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"restaurant_analytics/internal/domain/entity"
	"restaurant_analytics/internal/domain/value"
)

const keyPrefix = "restaurant_analytics:rec:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type RecommendationCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRecommendationCache(client redis.Cmdable, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

// Key scopes entries to a dataset version so a reload never serves stale
// results.
func Key(datasetVersion string, query value.RecommendationQuery) string {
	return keyPrefix + datasetVersion + ":" + query.Key()
}

// Get reports ok=false on a cache miss.
func (c *RecommendationCache) Get(
	ctx context.Context,
	datasetVersion string,
	query value.RecommendationQuery,
) (entity.Recommendation, bool, error) {
	data, err := c.client.Get(ctx, Key(datasetVersion, query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Recommendation{}, false, nil
	}

	if err != nil {
		return entity.Recommendation{}, false, fmt.Errorf("client.Get: %w", err)
	}

	var rec entity.Recommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return entity.Recommendation{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if rec.Items == nil {
		rec.Items = []entity.ScoredRestaurant{}
	}

	return rec, true, nil
}

func (c *RecommendationCache) Set(
	ctx context.Context,
	datasetVersion string,
	query value.RecommendationQuery,
	rec entity.Recommendation,
) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, Key(datasetVersion, query), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
