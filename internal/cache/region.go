package cache

import (
	"time"

	"github.com/MKhiriev/tollgate-go/models"
)

// RegionConfig holds the expiration overrides of one cache region. A zero
// duration means the region inherits the manager default.
type RegionConfig struct {
	Name       string
	TimeToLive time.Duration
	TimeToIdle time.Duration
}

// RegionBuilder accumulates overrides for one region.
type RegionBuilder struct {
	cfg RegionConfig
}

// ForResource starts a region override for resources of type t.
func ForResource(t models.ResourceType) *RegionBuilder {
	return Named(t.String())
}

// Named starts a region override for an arbitrary region name.
func Named(name string) *RegionBuilder {
	return &RegionBuilder{cfg: RegionConfig{Name: name}}
}

// WithTimeToLive sets the region time-to-live. Later calls replace earlier ones.
func (b *RegionBuilder) WithTimeToLive(d time.Duration) *RegionBuilder {
	b.cfg.TimeToLive = d
	return b
}

// WithTimeToIdle sets the region time-to-idle. Later calls replace earlier ones.
func (b *RegionBuilder) WithTimeToIdle(d time.Duration) *RegionBuilder {
	b.cfg.TimeToIdle = d
	return b
}

// Name returns the region name.
func (b *RegionBuilder) Name() string {
	return b.cfg.Name
}

// Build returns the accumulated region configuration.
func (b *RegionBuilder) Build() RegionConfig {
	return b.cfg
}
