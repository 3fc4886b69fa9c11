// Package cache provides an in-memory TTL cache for generated itineraries
// and other derived results. Entries expire after a configurable TTL, a
// background sweeper removes expired entries, and when the size cap is hit
// the oldest tenth of entries by last access is evicted.
package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/travel-platform/itinerary-engine/internal/infrastructure/timeutil"
)

// Default configuration values.
const (
	DefaultTTL           = 30 * time.Minute
	DefaultMaxEntries    = 1000
	DefaultSweepInterval = 5 * time.Minute

	// evictFraction is the share of entries removed when the cap is hit.
	evictFraction = 0.1
)

// Config holds cache configuration options.
type Config struct {
	// TTL is how long an entry stays valid after Set
	TTL time.Duration

	// MaxEntries is the size cap; 0 means DefaultMaxEntries
	MaxEntries int

	// SweepInterval is how often expired entries are swept; 0 disables the sweeper
	SweepInterval time.Duration

	// Clock supplies the current time; nil means the real clock
	Clock timeutil.Clock
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		TTL:           DefaultTTL,
		MaxEntries:    DefaultMaxEntries,
		SweepInterval: DefaultSweepInterval,
	}
}

// Stats holds cache hit/miss/eviction counters.
type Stats struct {
	// Hits is the number of Get calls that returned a live entry
	Hits int64 `json:"hits"`

	// Misses is the number of Get calls that found nothing or an expired entry
	Misses int64 `json:"misses"`

	// Evictions is the number of entries removed by the size cap
	Evictions int64 `json:"evictions"`

	// Expirations is the number of entries removed after their TTL elapsed
	Expirations int64 `json:"expirations"`

	// Entries is the current number of live entries
	Entries int `json:"entries"`
}

// entry is one cached value with its expiry and access metadata.
type entry[V any] struct {
	value      V
	expiresAt  time.Time
	lastAccess time.Time
}

// Cache is a generic in-memory TTL cache. It is safe for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]

	ttl        time.Duration
	maxEntries int
	clock      timeutil.Clock

	hits        int64
	misses      int64
	evictions   int64
	expirations int64

	sweepDone chan struct{}
	closeOnce sync.Once
}

// New creates a cache with the given configuration and starts the
// background sweeper when SweepInterval is positive. Call Close to stop it.
func New[V any](cfg Config) *Cache[V] {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}

	c := &Cache[V]{
		entries:    make(map[string]*entry[V]),
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
		clock:      cfg.Clock,
		sweepDone:  make(chan struct{}),
	}

	if cfg.SweepInterval > 0 {
		go c.sweepLoop(cfg.SweepInterval)
	}

	return c
}

// Get returns the value for key if present and not expired.
// An expired entry counts as a miss and is removed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}

	now := c.clock.Now()
	if !now.Before(e.expiresAt) {
		delete(c.entries, key)
		c.expirations++
		c.misses++
		return zero, false
	}

	e.lastAccess = now
	c.hits++
	return e.value, true
}

// Set stores a value under key with the configured TTL.
// When the size cap is hit, the oldest tenth of entries by last access
// is evicted first.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}

	c.entries[key] = &entry[V]{
		value:      value,
		expiresAt:  now.Add(c.ttl),
		lastAccess: now,
	}
}

// Delete removes the entry for key, if any.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the current number of entries, expired ones included
// until the next sweep.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
		Entries:     len(c.entries),
	}
}

// Close stops the background sweeper. The cache remains usable.
func (c *Cache[V]) Close() {
	c.closeOnce.Do(func() {
		close(c.sweepDone)
	})
}

// Sweep removes all expired entries and returns how many were removed.
// The background sweeper calls this periodically; tests may call it directly.
func (c *Cache[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.expirations += int64(removed)
	return removed
}

// sweepLoop runs Sweep every interval until Close is called.
func (c *Cache[V]) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.sweepDone:
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// evictOldestLocked removes the oldest tenth of entries by last access.
// At least one entry is always removed. Caller must hold the lock.
func (c *Cache[V]) evictOldestLocked() {
	n := int(float64(len(c.entries)) * evictFraction)
	if n < 1 {
		n = 1
	}

	type aged struct {
		key        string
		lastAccess time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, lastAccess: e.lastAccess})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].lastAccess.Before(all[j].lastAccess)
	})

	for i := 0; i < n && i < len(all); i++ {
		delete(c.entries, all[i].key)
		c.evictions++
	}
}
