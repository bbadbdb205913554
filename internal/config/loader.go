// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/tollgate-go/internal/cache"
	"github.com/MKhiriev/tollgate-go/internal/logger"
	"github.com/MKhiriev/tollgate-go/models"
)

// ResourceTypeLookup maps a cache region name onto a resource type.
type ResourceTypeLookup func(name string) (models.ResourceType, error)

// LoadOptions controls where configuration is looked up.
type LoadOptions struct {
	// HomeDir roots the user-level locations; empty skips them.
	HomeDir string

	// AppDir roots app: locations.
	AppDir string

	// Bundled replaces the defaults compiled into the binary when non-nil.
	Bundled fs.FS

	// Locations replaces [DefaultLocations] when non-nil.
	Locations []string

	// ResourceTypes defaults to [models.ResourceTypeByName].
	ResourceTypes ResourceTypeLookup

	Logger *logger.Logger
}

// LoadProperties reads every location of opts and merges them.
func LoadProperties(opts LoadOptions) (map[string]string, error) {
	locations := opts.Locations
	if locations == nil {
		locations = DefaultLocations(opts.HomeDir)
	}

	factory := NewResourceFactory(opts.Bundled, opts.AppDir)
	return Merge(Sources(factory, locations, opts.Logger)...)
}

// Load reads, merges and types configuration. The returned configuration is
// never nil: values that failed to type keep their defaults and are reported
// through the error.
func Load(opts LoadOptions) (*ClientConfiguration, error) {
	cfg := NewClientConfiguration()

	props, err := LoadProperties(opts)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	logger.OrNop(opts.Logger).Debug().Int("keys", len(props)).Msg("configuration merged")

	return cfg, Apply(cfg, props, opts.ResourceTypes)
}

// Apply types props into cfg. Keys absent from props leave cfg untouched.
// Every malformed value is reported; the rest are still applied.
func Apply(cfg *ClientConfiguration, props map[string]string, lookup ResourceTypeLookup) error {
	if lookup == nil {
		lookup = models.ResourceTypeByName
	}

	a := &applier{props: props}

	a.str(KeyAPIKeyFile, func(v string) { cfg.APIKeyFile = unescapeColons(v) })
	a.str(KeyAPIKeyID, func(v string) { cfg.APIKeyID = v })
	a.str(KeyAPIKeySecret, func(v string) { cfg.APIKeySecret = v })

	a.parse(KeyCacheManagerEnabled, func(v string) error {
		enabled, err := strconv.ParseBool(v)
		cfg.CacheManagerEnabled = enabled
		return err
	})
	a.parse(KeyCacheManagerTTL, func(v string) (err error) {
		cfg.CacheManagerTTL, err = parseSeconds(v)
		return err
	})
	a.parse(KeyCacheManagerTTI, func(v string) (err error) {
		cfg.CacheManagerTTI, err = parseSeconds(v)
		return err
	})

	a.str(KeyBaseURL, func(v string) { cfg.BaseURL = unescapeColons(v) })
	a.parse(KeyConnectionTimeout, func(v string) error {
		timeout, err := parseSeconds(v)
		if err != nil {
			return err
		}
		if timeout > math.MaxInt32 {
			return strconv.ErrRange
		}
		cfg.ConnectionTimeout = int(timeout)
		return nil
	})
	a.parse(KeyAuthenticationScheme, func(v string) error {
		scheme, err := models.ParseAuthenticationScheme(v)
		if err != nil {
			return err
		}
		cfg.AuthenticationScheme = scheme
		return nil
	})

	a.str(KeyProxyHost, func(v string) { cfg.ProxyHost = v })
	a.parse(KeyProxyPort, func(v string) error {
		port, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		if port < 0 || port > math.MaxUint16 {
			return errInvalidPort
		}
		cfg.ProxyPort = port
		return nil
	})
	a.str(KeyProxyUsername, func(v string) { cfg.ProxyUsername = v })
	a.str(KeyProxyPassword, func(v string) { cfg.ProxyPassword = v })

	a.cacheRegions(cfg, lookup)

	return a.err
}

var (
	errNegative    = errors.New("must not be negative")
	errInvalidPort = errors.New("port must be between 0 and 65535")
)

// applier walks the merged mapping and accumulates typing errors the way the
// properties merger accumulates source errors.
type applier struct {
	props map[string]string
	err   error
}

func (a *applier) str(key string, set func(string)) {
	if v, ok := a.props[key]; ok {
		set(v)
	}
}

func (a *applier) parse(key string, set func(string) error) {
	v, ok := a.props[key]
	if !ok {
		return
	}
	if err := set(strings.TrimSpace(v)); err != nil {
		a.fail(key, v, err)
	}
}

func (a *applier) fail(key, value string, err error) {
	a.err = errors.Join(a.err, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfiguration, key, value, err))
}

// cacheRegions turns <caches>.<Type>.tti / .ttl keys into region builders.
// Keys are visited in sorted order and each region name is handled once,
// applying both of its keys.
func (a *applier) cacheRegions(cfg *ClientConfiguration, lookup ResourceTypeLookup) {
	prefix := KeyCacheManagerCaches + "."

	keys := make([]string, 0, len(a.props))
	for k := range a.props {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	visited := make(map[string]struct{})
	for _, key := range keys {
		name, ok := regionName(key, prefix)
		if !ok {
			continue
		}
		if _, seen := visited[name]; seen {
			continue
		}
		visited[name] = struct{}{}

		resourceType, err := lookup(name)
		if err != nil {
			a.fail(key, a.props[key], err)
			continue
		}

		rb, exists := cfg.CacheManagerCaches[resourceType.String()]
		if !exists {
			rb = cache.ForResource(resourceType)
		}

		tti := prefix + name + cacheTTISuffix
		a.parse(tti, func(v string) error {
			secs, err := parseSeconds(v)
			rb.WithTimeToIdle(time.Duration(secs) * time.Second)
			return err
		})
		ttl := prefix + name + cacheTTLSuffix
		a.parse(ttl, func(v string) error {
			secs, err := parseSeconds(v)
			rb.WithTimeToLive(time.Duration(secs) * time.Second)
			return err
		})

		if !exists {
			cfg.CacheManagerCaches[resourceType.String()] = rb
		}
	}
}

func regionName(key, prefix string) (string, bool) {
	rest := strings.TrimPrefix(key, prefix)
	for _, suffix := range []string{cacheTTISuffix, cacheTTLSuffix} {
		if name, ok := strings.CutSuffix(rest, suffix); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// parseSeconds parses a non-negative whole number of seconds.
func parseSeconds(v string) (int64, error) {
	secs, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, err
	}
	if secs < 0 {
		return 0, errNegative
	}
	if secs > math.MaxInt64/int64(time.Second) {
		return 0, strconv.ErrRange
	}
	return secs, nil
}
