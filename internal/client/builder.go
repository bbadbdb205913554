// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io/fs"
	"math"
	"time"

	"github.com/MKhiriev/tollgate-go/internal/authc"
	"github.com/MKhiriev/tollgate-go/internal/cache"
	"github.com/MKhiriev/tollgate-go/internal/config"
	"github.com/MKhiriev/tollgate-go/internal/credentials"
	"github.com/MKhiriev/tollgate-go/internal/logger"
	"github.com/MKhiriev/tollgate-go/internal/resolver"
	"github.com/MKhiriev/tollgate-go/models"
)

// Options injects the environment a [Builder] reads from. Zero values fall
// back to the process environment where that makes sense.
type Options struct {
	// HomeDir roots ~/.tollgate and ~/tollgate.* lookups and the default API
	// key file; empty skips them.
	HomeDir string

	// AppDir roots app: configuration locations.
	AppDir string

	// Environment replaces the process environment for credentials when
	// non-nil.
	Environment map[string]string

	// SystemProperties are -D key=value command-line properties.
	SystemProperties map[string]string

	// ResourceTypes resolves cache region names; defaults to
	// models.ResourceTypeByName.
	ResourceTypes config.ResourceTypeLookup

	// Bundled replaces the compiled-in defaults when non-nil.
	Bundled fs.FS

	Logger *logger.Logger
}

// Builder collects configuration for a [Client].
type Builder struct {
	cfg     *config.ClientConfiguration
	loadErr error
	opts    Options

	apiKey       *models.APIKey
	credentials  credentials.ClientCredentials
	proxy        *models.Proxy
	cacheManager cache.Manager

	built  bool
	logger *logger.Logger
}

// NewBuilder loads configuration for opts and returns a builder. Load
// problems are held back and reported by [Builder.Build].
func NewBuilder(opts Options) *Builder {
	log := logger.OrNop(opts.Logger).WithComponent("client-builder")

	cfg, err := config.Load(config.LoadOptions{
		HomeDir:       opts.HomeDir,
		AppDir:        opts.AppDir,
		Bundled:       opts.Bundled,
		ResourceTypes: opts.ResourceTypes,
		Logger:        log,
	})

	return &Builder{cfg: cfg, loadErr: err, opts: opts, logger: log}
}

// Configuration exposes the loaded configuration for inspection.
func (b *Builder) Configuration() *config.ClientConfiguration {
	return b.cfg
}

// CredentialsProvider returns the default credentials chain for the loaded
// configuration, for callers wiring a resolver.ProviderAPIKeyResolver.
func (b *Builder) CredentialsProvider() credentials.Provider {
	return b.defaultChain()
}

func (b *Builder) defaultChain() *credentials.Chain {
	return credentials.NewDefaultChain(credentials.ChainConfig{
		APIKeyFile:       b.cfg.APIKeyFile,
		APIKeyID:         b.cfg.APIKeyID,
		APIKeySecret:     b.cfg.APIKeySecret,
		Environment:      b.opts.Environment,
		SystemProperties: b.opts.SystemProperties,
		HomeDir:          b.opts.HomeDir,
	}, b.logger)
}

// SetAPIKey sets an explicit API key. Both id and secret are required.
func (b *Builder) SetAPIKey(key models.APIKey) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if key.ID == "" || key.Secret == "" {
		return fmt.Errorf("%w: api key id and secret are required", ErrInvalidArgument)
	}

	b.apiKey = &key
	return nil
}

// SetClientCredentials sets explicit credentials; they take precedence over
// an API key set with SetAPIKey.
func (b *Builder) SetClientCredentials(creds credentials.ClientCredentials) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if creds == nil {
		return fmt.Errorf("%w: client credentials are nil", ErrInvalidArgument)
	}

	b.credentials = creds
	return nil
}

// SetProxy sets a proxy used when configuration names none.
func (b *Builder) SetProxy(proxy models.Proxy) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if proxy.Port < 0 || proxy.Port > math.MaxUint16 {
		return fmt.Errorf("%w: proxy port %d", ErrInvalidArgument, proxy.Port)
	}

	b.proxy = &proxy
	return nil
}

// SetCacheManager replaces the in-memory cache manager. It is ignored when
// caching is disabled by configuration.
func (b *Builder) SetCacheManager(m cache.Manager) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if m == nil {
		return fmt.Errorf("%w: cache manager is nil", ErrInvalidArgument)
	}

	b.cacheManager = m
	return nil
}

// SetAuthenticationScheme selects how requests are authenticated.
func (b *Builder) SetAuthenticationScheme(scheme models.AuthenticationScheme) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if !scheme.Valid() {
		return fmt.Errorf("%w: authentication scheme %q", ErrInvalidArgument, scheme)
	}

	b.cfg.AuthenticationScheme = scheme
	return nil
}

// SetConnectionTimeout sets the connection timeout in seconds; zero keeps
// the transport default.
func (b *Builder) SetConnectionTimeout(seconds int) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if seconds < 0 {
		return fmt.Errorf("%w: connection timeout %d", ErrInvalidArgument, seconds)
	}

	b.cfg.ConnectionTimeout = seconds
	return nil
}

// SetRequestAuthenticatorFactory replaces the default authenticator factory.
func (b *Builder) SetRequestAuthenticatorFactory(f authc.Factory) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if f == nil {
		return fmt.Errorf("%w: request authenticator factory is nil", ErrInvalidArgument)
	}

	b.cfg.RequestAuthenticatorFactory = f
	return nil
}

// SetAPIKeyResolver sets the resolver consulted for every request.
func (b *Builder) SetAPIKeyResolver(r resolver.APIKeyResolver) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if r == nil {
		return fmt.Errorf("%w: api key resolver is nil", ErrInvalidArgument)
	}

	b.cfg.APIKeyResolver = r
	return nil
}

// SetBaseURLResolver sets a resolver that takes precedence over the base URL.
func (b *Builder) SetBaseURLResolver(r resolver.BaseURLResolver) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if r == nil {
		return fmt.Errorf("%w: base url resolver is nil", ErrInvalidArgument)
	}

	b.cfg.BaseURLResolver = r
	return nil
}

// SetTenantResolver sets the optional tenant resolver.
func (b *Builder) SetTenantResolver(r resolver.TenantResolver) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if r == nil {
		return fmt.Errorf("%w: tenant resolver is nil", ErrInvalidArgument)
	}

	b.cfg.TenantResolver = r
	return nil
}

// SetBaseURL overrides the configured base URL.
func (b *Builder) SetBaseURL(baseURL string) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if baseURL == "" {
		return fmt.Errorf("%w: base url is empty", ErrInvalidArgument)
	}

	b.cfg.BaseURL = baseURL
	return nil
}

// Build resolves the configuration into a [Client]. On failure the builder
// stays usable; on success it is spent.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if b.loadErr != nil {
		return nil, b.loadErr
	}

	cacheManager := b.resolveCacheManager()
	proxy := b.resolveProxy()

	creds, err := b.resolveCredentials()
	if err != nil {
		return nil, err
	}

	apiKeyResolver, err := b.resolveAPIKeyResolver(creds)
	if err != nil {
		return nil, err
	}

	baseURLResolver, err := b.resolveBaseURLResolver()
	if err != nil {
		return nil, err
	}

	authenticator, err := b.cfg.RequestAuthenticatorFactory.Create(b.cfg.AuthenticationScheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	c := &Client{
		credentials:          creds,
		apiKeyResolver:       apiKeyResolver,
		baseURLResolver:      baseURLResolver,
		proxy:                proxy,
		cacheManager:         cacheManager,
		authenticationScheme: b.cfg.AuthenticationScheme,
		authenticator:        authenticator,
		connectionTimeout:    time.Duration(b.cfg.ConnectionTimeout) * time.Second,
		tenantResolver:       b.cfg.TenantResolver,
	}
	c.transport = newTransport(c, b.logger)

	b.built = true
	b.logger.Debug().
		Str("base_url", baseURLResolver.BaseURL()).
		Str("scheme", b.cfg.AuthenticationScheme.String()).
		Bool("proxy", proxy != nil).
		Bool("tenant_resolver", c.tenantResolver != nil).
		Msg("client built")

	return c, nil
}

func (b *Builder) resolveCacheManager() cache.Manager {
	if !b.cfg.CacheManagerEnabled {
		b.logger.Debug().Msg("caching is disabled")
		return cache.NewDisabledManager()
	}
	if b.cacheManager != nil {
		b.logger.Debug().Str("manager", fmt.Sprintf("%T", b.cacheManager)).Msg("using explicit cache manager")
		return b.cacheManager
	}

	mb := cache.NewManagerBuilder().
		WithDefaultTimeToLive(time.Duration(b.cfg.CacheManagerTTL) * time.Second).
		WithDefaultTimeToIdle(time.Duration(b.cfg.CacheManagerTTI) * time.Second)
	for _, rb := range b.cfg.CacheManagerCaches {
		mb.WithCache(rb)
	}

	b.logger.Debug().
		Int64("ttl", b.cfg.CacheManagerTTL).
		Int64("tti", b.cfg.CacheManagerTTI).
		Int("regions", len(b.cfg.CacheManagerCaches)).
		Msg("using in-memory cache manager")
	return mb.Build()
}

// resolveProxy prefers configured proxy settings over an explicit proxy.
// Host or port without complete credentials gives an unauthenticated proxy;
// complete credentials give an authenticated one even without a host.
func (b *Builder) resolveProxy() *models.Proxy {
	cfg := b.cfg
	hasCredentials := cfg.HasProxyCredentials()

	switch {
	case (cfg.ProxyPort > 0 || cfg.ProxyHost != "") && !hasCredentials:
		p := models.NewProxy(cfg.ProxyHost, cfg.ProxyPort)
		return &p
	case hasCredentials:
		p := models.NewAuthenticatedProxy(cfg.ProxyHost, cfg.ProxyPort, cfg.ProxyUsername, cfg.ProxyPassword)
		return &p
	default:
		return b.proxy
	}
}

func (b *Builder) resolveCredentials() (credentials.ClientCredentials, error) {
	if b.credentials != nil {
		return b.credentials, nil
	}
	if b.apiKey != nil {
		return credentials.NewAPIKeyCredentials(*b.apiKey), nil
	}

	return b.defaultChain().Resolve()
}

func (b *Builder) resolveAPIKeyResolver(creds credentials.ClientCredentials) (resolver.APIKeyResolver, error) {
	if b.cfg.APIKeyResolver != nil {
		return b.cfg.APIKeyResolver, nil
	}

	if keyCreds, ok := creds.(*credentials.APIKeyCredentials); ok {
		return resolver.NewStaticAPIKeyResolver(keyCreds.APIKey()), nil
	}

	return nil, fmt.Errorf("%w: an api key resolver is required for %T credentials", ErrInvalidConfiguration, creds)
}

func (b *Builder) resolveBaseURLResolver() (resolver.BaseURLResolver, error) {
	if b.cfg.BaseURLResolver != nil {
		return b.cfg.BaseURLResolver, nil
	}
	if b.cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return resolver.NewBaseURLResolver(b.cfg.BaseURL), nil
}
