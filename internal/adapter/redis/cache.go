// Package redis shares cached live readings between service instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "weather:reading:"

// store is the subset of the go-redis client the cache uses.
type store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Ping(ctx context.Context) *goredis.StatusCmd
}

// CachedProvider wraps a ReadingProvider with a Redis cache. Redis failures
// are logged and fall through to the inner provider.
type CachedProvider struct {
	inner   domain.ReadingProvider
	store   store
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewClient connects to Redis at addr.
func NewClient(addr, password string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

// NewCachedProvider creates a Redis cache decorator around a reading provider.
func NewCachedProvider(inner domain.ReadingProvider, client *goredis.Client, ttl time.Duration, metrics *observability.Metrics, logger *slog.Logger) *CachedProvider {
	return newCachedProvider(inner, client, ttl, metrics, logger)
}

func newCachedProvider(inner domain.ReadingProvider, s store, ttl time.Duration, metrics *observability.Metrics, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{inner: inner, store: s, ttl: ttl, metrics: metrics, logger: logger}
}

// CurrentReading returns the cached reading for city, fetching and storing
// it on a miss.
func (c *CachedProvider) CurrentReading(ctx context.Context, city string) (domain.LiveReading, error) {
	key := cacheKey(city)

	reading, ok, err := c.get(ctx, key)
	if err != nil {
		c.logger.Warn("redis cache get failed", "key", key, "error", err)
	}
	if ok {
		c.metrics.ReadingCache.WithLabelValues("redis", "hit").Inc()
		return reading, nil
	}
	c.metrics.ReadingCache.WithLabelValues("redis", "miss").Inc()

	reading, err = c.inner.CurrentReading(ctx, city)
	if err != nil {
		return reading, err
	}
	if err := c.set(ctx, key, reading); err != nil {
		c.logger.Warn("redis cache set failed", "key", key, "error", err)
	}
	return reading, nil
}

// CheckReadiness pings Redis.
func (c *CachedProvider) CheckReadiness(ctx context.Context) error {
	if err := c.store.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *CachedProvider) get(ctx context.Context, key string) (domain.LiveReading, bool, error) {
	val, err := c.store.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.LiveReading{}, false, nil
	}
	if err != nil {
		return domain.LiveReading{}, false, err
	}

	var reading domain.LiveReading
	if err := json.Unmarshal(val, &reading); err != nil {
		return domain.LiveReading{}, false, fmt.Errorf("decode cached reading: %w", err)
	}
	return reading, true, nil
}

func (c *CachedProvider) set(ctx context.Context, key string, reading domain.LiveReading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}
	return c.store.Set(ctx, key, data, c.ttl).Err()
}

func cacheKey(city string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(city))
}
