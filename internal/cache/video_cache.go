package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidhub/internal/httpapi/models"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "videos:catalog"

// VideoCache is a redis-backed read-through cache for the video catalog.
// The catalog is seeded once and read-only, so entries only expire by TTL.
type VideoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVideoCache connects to redis and verifies the connection.
func NewVideoCache(redisURL, password string, ttl time.Duration) (*VideoCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &VideoCache{
		client: rdb,
		ttl:    ttl,
	}, nil
}

// GetCatalog returns the cached catalog; a miss, a stale payload or a redis
// outage all read as "not cached" and the caller falls through to Postgres.
func (c *VideoCache) GetCatalog(ctx context.Context) ([]models.Video, bool) {
	payload, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}

	var videos []models.Video
	if err := json.Unmarshal(payload, &videos); err != nil {
		return nil, false
	}
	return videos, true
}

// SetCatalog stores the catalog with the configured TTL. Failures are
// swallowed; the cache is an optimization, never a source of truth.
func (c *VideoCache) SetCatalog(ctx context.Context, videos []models.Video) {
	payload, err := json.Marshal(videos)
	if err != nil {
		return
	}
	c.client.Set(ctx, catalogKey, payload, c.ttl)
}
