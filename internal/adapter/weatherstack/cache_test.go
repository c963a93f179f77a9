package weatherstack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock for cache tests ---

type countingProvider struct {
	calls   int
	reading domain.LiveReading
	err     error
}

func (m *countingProvider) CurrentReading(_ context.Context, city string) (domain.LiveReading, error) {
	m.calls++
	if m.err != nil {
		return domain.LiveReading{}, m.err
	}
	r := m.reading
	r.City = city
	return r, nil
}

// --- CachedProvider tests ---

func TestCachedProvider_Hit(t *testing.T) {
	inner := &countingProvider{reading: domain.LiveReading{Temperature: 30}}
	metrics := observability.NewMetricsForTesting()
	cached := NewCachedProvider(inner, 10, time.Minute, clockwork.NewFakeClock(), metrics)

	r1, err := cached.CurrentReading(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, 30.0, r1.Temperature)

	r2, err := cached.CurrentReading(context.Background(), " pune ")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReadingCache.WithLabelValues("memory", "hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReadingCache.WithLabelValues("memory", "miss")), 0)
}

func TestCachedProvider_Expires(t *testing.T) {
	inner := &countingProvider{}
	clock := clockwork.NewFakeClock()
	cached := NewCachedProvider(inner, 10, time.Minute, clock, observability.NewMetricsForTesting())

	_, _ = cached.CurrentReading(context.Background(), "Pune")
	clock.Advance(59 * time.Second)
	_, _ = cached.CurrentReading(context.Background(), "Pune")
	assert.Equal(t, 1, inner.calls)

	clock.Advance(time.Second)
	_, _ = cached.CurrentReading(context.Background(), "Pune")
	assert.Equal(t, 2, inner.calls, "expired entry should be refetched")
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("boom")}
	cached := NewCachedProvider(inner, 10, time.Minute, clockwork.NewFakeClock(), observability.NewMetricsForTesting())

	_, err := cached.CurrentReading(context.Background(), "Pune")
	require.Error(t, err)
	_, err = cached.CurrentReading(context.Background(), "Pune")
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_DifferentCitiesMiss(t *testing.T) {
	inner := &countingProvider{}
	cached := NewCachedProvider(inner, 10, time.Minute, clockwork.NewFakeClock(), observability.NewMetricsForTesting())

	_, _ = cached.CurrentReading(context.Background(), "Pune")
	_, _ = cached.CurrentReading(context.Background(), "Mumbai")

	assert.Equal(t, 2, inner.calls)
}

// --- LRU cache unit tests ---

func newTestLRU(maxEntries int) *lruCache {
	return newLRUCache(maxEntries, time.Hour, clockwork.NewFakeClock())
}

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newTestLRU(3)

	c.put("a", domain.LiveReading{City: "A"})
	c.put("b", domain.LiveReading{City: "B"})

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", result.City)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newTestLRU(2)

	c.put("a", domain.LiveReading{City: "A"})
	c.put("b", domain.LiveReading{City: "B"})
	c.put("c", domain.LiveReading{City: "C"}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	result, ok := c.get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", result.City)

	result, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", result.City)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newTestLRU(2)

	c.put("a", domain.LiveReading{City: "A"})
	c.put("b", domain.LiveReading{City: "B"})

	c.get("a")

	// "b" is now least recently used.
	c.put("c", domain.LiveReading{City: "C"})

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRUCache_UpdateRefreshesExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newLRUCache(2, time.Minute, clock)

	c.put("a", domain.LiveReading{City: "A1"})
	clock.Advance(50 * time.Second)
	c.put("a", domain.LiveReading{City: "A2"})
	clock.Advance(50 * time.Second)

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", result.City)
}

func TestLRUCache_ExpiredEntryRemoved(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newLRUCache(2, time.Minute, clock)

	c.put("a", domain.LiveReading{City: "A"})
	clock.Advance(time.Minute)

	_, ok := c.get("a")
	assert.False(t, ok)
	assert.Empty(t, c.entries)
	assert.Nil(t, c.head)
	assert.Nil(t, c.tail)
}
