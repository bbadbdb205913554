package cache

import (
	"math"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// MemoryManager keeps every region in process memory, each in its own LRU.
// TTL and TTI are checked on read; no background goroutines are started.
type MemoryManager struct {
	defaultTTL time.Duration
	defaultTTI time.Duration
	maxEntries int
	configs    map[string]RegionConfig

	mu      sync.Mutex
	regions map[string]*memoryCache

	now func() time.Time
}

func newMemoryManager(ttl, tti time.Duration, maxEntries int, configs map[string]RegionConfig) *MemoryManager {
	return &MemoryManager{
		defaultTTL: ttl,
		defaultTTI: tti,
		maxEntries: maxEntries,
		configs:    configs,
		regions:    make(map[string]*memoryCache),
		now:        time.Now,
	}
}

// DefaultTimeToLive returns the TTL applied to regions without an override.
func (m *MemoryManager) DefaultTimeToLive() time.Duration {
	return m.defaultTTL
}

// DefaultTimeToIdle returns the TTI applied to regions without an override.
func (m *MemoryManager) DefaultTimeToIdle() time.Duration {
	return m.defaultTTI
}

// RegionConfig returns the override registered for region, if any.
func (m *MemoryManager) RegionConfig(region string) (RegionConfig, bool) {
	cfg, ok := m.configs[region]
	return cfg, ok
}

// Cache implements [Manager].
func (m *MemoryManager) Cache(region string) Cache {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.regions[region]; ok {
		return c
	}

	ttl, tti := m.effective(region)
	c := newMemoryCache(m.maxEntries, ttl, tti, m.now)
	m.regions[region] = c

	return c
}

func (m *MemoryManager) effective(region string) (time.Duration, time.Duration) {
	ttl, tti := m.defaultTTL, m.defaultTTI
	if cfg, ok := m.configs[region]; ok {
		if cfg.TimeToLive > 0 {
			ttl = cfg.TimeToLive
		}
		if cfg.TimeToIdle > 0 {
			tti = cfg.TimeToIdle
		}
	}
	return ttl, tti
}

type memoryEntry struct {
	value      any
	created    time.Time
	lastAccess time.Time
}

// memoryCache is one region. Every operation holds mu, so an expiry check and
// the removal it triggers are atomic with respect to Put.
type memoryCache struct {
	mu  sync.Mutex
	lru *simplelru.LRU[string, *memoryEntry]
	ttl time.Duration
	tti time.Duration
	now func() time.Time
}

func newMemoryCache(maxEntries int, ttl, tti time.Duration, now func() time.Time) *memoryCache {
	if maxEntries <= 0 {
		maxEntries = math.MaxInt
	}
	// NewLRU only fails for a non-positive size.
	lru, _ := simplelru.NewLRU[string, *memoryEntry](maxEntries, nil)

	return &memoryCache{lru: lru, ttl: ttl, tti: tti, now: now}
}

func (c *memoryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	now := c.now()
	if c.expired(e, now) {
		c.lru.Remove(key)
		return nil, false
	}
	e.lastAccess = now

	return e.value, true
}

func (c *memoryCache) expired(e *memoryEntry, now time.Time) bool {
	if c.ttl > 0 && now.Sub(e.created) > c.ttl {
		return true
	}
	return c.tti > 0 && now.Sub(e.lastAccess) > c.tti
}

func (c *memoryCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.lru.Add(key, &memoryEntry{value: value, created: now, lastAccess: now})
}

func (c *memoryCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(key)
}
