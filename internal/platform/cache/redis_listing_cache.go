// Package cache provides the listing cache behind the invoices table view.
// Each listing path owns one Redis hash whose fields are page keys; dropping
// the hash invalidates every cached page of that listing at once.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const defaultListingTTL = 5 * time.Minute

// RedisListingCache implements the ListingCache port on top of Redis.
type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisListingCache creates a listing cache using an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisListingCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisListingCache {
	if ttl <= 0 {
		ttl = defaultListingTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisListingCache{client: client, ttl: ttl, logger: logger}
}

var _ portsrepo.ListingCache = (*RedisListingCache)(nil)

func listingKey(listingPath string) string {
	return "listing:" + listingPath
}

func (c *RedisListingCache) Get(ctx context.Context, listingPath, pageKey string, dest any) (bool, error) {
	raw, err := c.client.HGet(ctx, listingKey(listingPath), pageKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cached listing page: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		c.logger.Warn("Dropping undecodable listing cache entry",
			slog.String("listing", listingPath),
			slog.String("page_key", pageKey),
			slog.String("error", err.Error()),
		)
		return false, nil
	}
	return true, nil
}

func (c *RedisListingCache) Set(ctx context.Context, listingPath, pageKey string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode listing page for cache: %w", err)
	}
	key := listingKey(listingPath)
	if err := c.client.HSet(ctx, key, pageKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to cache listing page: %w", err)
	}
	if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set listing cache TTL: %w", err)
	}
	return nil
}

// Invalidate drops all cached pages of the listing. Deleting a key that does
// not exist is a no-op in Redis, which gives the required idempotency.
func (c *RedisListingCache) Invalidate(ctx context.Context, listingPath string) error {
	if err := c.client.Del(ctx, listingKey(listingPath)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate listing %s: %w", listingPath, err)
	}
	return nil
}
