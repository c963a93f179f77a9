package weatherstack

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	"github.com/jonboulle/clockwork"
)

// CachedProvider wraps a ReadingProvider with an in-memory LRU cache whose
// entries expire after a TTL. Only live readings are cached, never models.
type CachedProvider struct {
	inner   domain.ReadingProvider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a reading provider.
func NewCachedProvider(inner domain.ReadingProvider, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries, ttl, clock),
		metrics: metrics,
	}
}

// CurrentReading returns a cached reading for city when one is fresh.
func (c *CachedProvider) CurrentReading(ctx context.Context, city string) (domain.LiveReading, error) {
	key := cacheKey(city)
	if reading, ok := c.cache.get(key); ok {
		c.metrics.ReadingCache.WithLabelValues("memory", "hit").Inc()
		return reading, nil
	}
	c.metrics.ReadingCache.WithLabelValues("memory", "miss").Inc()

	reading, err := c.inner.CurrentReading(ctx, city)
	if err != nil {
		return reading, err
	}
	c.cache.put(key, reading)
	return reading, nil
}

// cacheKey folds case and surrounding space so "Pune" and " pune" share an entry.
func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// lruCache is a thread-safe LRU cache of LiveReadings with per-entry expiry.
type lruCache struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key     string
	value   domain.LiveReading
	expires time.Time
	prev    *entry
	next    *entry
}

func newLRUCache(maxEntries int, ttl time.Duration, clock clockwork.Clock) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.LiveReading, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.LiveReading{}, false
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		c.remove(e)
		return domain.LiveReading{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.LiveReading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.clock.Now().Add(c.ttl)
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expires = expires
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expires: expires}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
