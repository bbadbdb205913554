// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/tollgate-go/internal/authc"
	"github.com/MKhiriev/tollgate-go/internal/cache"
	"github.com/MKhiriev/tollgate-go/internal/resolver"
	"github.com/MKhiriev/tollgate-go/models"
)

// Defaults applied by [NewClientConfiguration].
const (
	DefaultCacheManagerTTL   = 300
	DefaultCacheManagerTTI   = 300
	DefaultConnectionTimeout = 0
)

// ClientConfiguration is the mutable holder the client builder works on.
// Values start at their defaults, are overwritten by [Apply] from the merged
// configuration mapping, and finally by the builder's setters.
//
// It is owned by a single builder and is not safe for concurrent use.
type ClientConfiguration struct {
	// APIKeyFile is the path of a .properties file holding apiKey.id and
	// apiKey.secret.
	APIKeyFile   string
	APIKeyID     string
	APIKeySecret string

	// CacheManagerEnabled turns caching off entirely when false.
	CacheManagerEnabled bool

	// CacheManagerTTL and CacheManagerTTI are the default region expiry
	// settings, in seconds.
	CacheManagerTTL int64
	CacheManagerTTI int64

	// CacheManagerCaches holds per-region overrides keyed by resource type
	// name.
	CacheManagerCaches map[string]*cache.RegionBuilder

	BaseURL string

	// ConnectionTimeout is in seconds; zero leaves the transport default.
	ConnectionTimeout int

	AuthenticationScheme models.AuthenticationScheme

	ProxyHost     string
	ProxyPort     int
	ProxyUsername string
	ProxyPassword string

	// Hooks set programmatically; never loaded from files.
	APIKeyResolver              resolver.APIKeyResolver
	BaseURLResolver             resolver.BaseURLResolver
	TenantResolver              resolver.TenantResolver
	RequestAuthenticatorFactory authc.Factory
}

// NewClientConfiguration returns a configuration holding the defaults.
func NewClientConfiguration() *ClientConfiguration {
	return &ClientConfiguration{
		CacheManagerEnabled:         true,
		CacheManagerTTL:             DefaultCacheManagerTTL,
		CacheManagerTTI:             DefaultCacheManagerTTI,
		CacheManagerCaches:          make(map[string]*cache.RegionBuilder),
		ConnectionTimeout:           DefaultConnectionTimeout,
		AuthenticationScheme:        models.DefaultAuthenticationScheme,
		RequestAuthenticatorFactory: authc.NewDefaultFactory(),
	}
}

// HasProxyCredentials reports whether both proxy username and password are
// set.
func (c *ClientConfiguration) HasProxyCredentials() bool {
	return c.ProxyUsername != "" && c.ProxyPassword != ""
}
