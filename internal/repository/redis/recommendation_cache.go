package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tneaCompass/domain"
)

type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached ranked list for a request key. A miss is not an
// error: the second return value reports whether anything was found.
func (r *RecommendationCache) Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error) {
	// key format: "reco:request:{request_hash}"
	cacheKey := fmt.Sprintf("reco:request:%s", key)

	val, err := r.client.Get(ctx, cacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return recs, true, nil
}

func (r *RecommendationCache) Set(ctx context.Context, key string, recs []domain.Recommendation) error {
	cacheKey := fmt.Sprintf("reco:request:%s", key)

	jsonData, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey, jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}
