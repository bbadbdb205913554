package cache

import "time"

// DefaultTimeToLive and DefaultTimeToIdle apply when the builder is not told
// otherwise.
const (
	DefaultTimeToLive = 5 * time.Minute
	DefaultTimeToIdle = 5 * time.Minute
)

// ManagerBuilder configures an in-memory [MemoryManager].
type ManagerBuilder struct {
	ttl        time.Duration
	tti        time.Duration
	maxEntries int
	regions    map[string]RegionConfig
}

// NewManagerBuilder returns a builder preloaded with the default TTL and TTI.
func NewManagerBuilder() *ManagerBuilder {
	return &ManagerBuilder{
		ttl:     DefaultTimeToLive,
		tti:     DefaultTimeToIdle,
		regions: make(map[string]RegionConfig),
	}
}

// WithDefaultTimeToLive sets the TTL used by regions without an override.
func (b *ManagerBuilder) WithDefaultTimeToLive(d time.Duration) *ManagerBuilder {
	b.ttl = d
	return b
}

// WithDefaultTimeToIdle sets the TTI used by regions without an override.
func (b *ManagerBuilder) WithDefaultTimeToIdle(d time.Duration) *ManagerBuilder {
	b.tti = d
	return b
}

// WithMaxEntries bounds every region to n entries; zero means unbounded.
func (b *ManagerBuilder) WithMaxEntries(n int) *ManagerBuilder {
	b.maxEntries = n
	return b
}

// WithCache registers a region override. A second override for the same
// region name replaces the first.
func (b *ManagerBuilder) WithCache(rb *RegionBuilder) *ManagerBuilder {
	cfg := rb.Build()
	b.regions[cfg.Name] = cfg
	return b
}

// Build creates the manager.
func (b *ManagerBuilder) Build() *MemoryManager {
	regions := make(map[string]RegionConfig, len(b.regions))
	for name, cfg := range b.regions {
		regions[name] = cfg
	}

	return newMemoryManager(b.ttl, b.tti, b.maxEntries, regions)
}
