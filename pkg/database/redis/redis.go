package redis

import (
	"context"
	"fmt"
	"time"
	"tneaCompass/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to the cache instance and verifies it responds before
// the server starts taking requests.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Redis.RedisHost, cfg.Redis.RedisPort),
		Password:     cfg.Redis.RedisPassword,
		DB:           cfg.Redis.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// Close shuts the client down. Nil-safe so cache-disabled runs can call it
// unconditionally.
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}

	return nil
}
