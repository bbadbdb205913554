package client

import (
	"context"
	"time"

	"github.com/MKhiriev/tollgate-go/internal/authc"
	"github.com/MKhiriev/tollgate-go/internal/cache"
	"github.com/MKhiriev/tollgate-go/internal/credentials"
	"github.com/MKhiriev/tollgate-go/internal/resolver"
	"github.com/MKhiriev/tollgate-go/internal/utils"
	"github.com/MKhiriev/tollgate-go/models"
)

// Client is a fully configured Tollgate client. It is created by
// [Builder.Build] and never changes afterwards.
type Client struct {
	credentials          credentials.ClientCredentials
	apiKeyResolver       resolver.APIKeyResolver
	baseURLResolver      resolver.BaseURLResolver
	proxy                *models.Proxy
	cacheManager         cache.Manager
	authenticationScheme models.AuthenticationScheme
	authenticator        authc.RequestAuthenticator
	connectionTimeout    time.Duration
	tenantResolver       resolver.TenantResolver

	transport *utils.HTTPClient
}

// Credentials returns the effective client credentials.
func (c *Client) Credentials() credentials.ClientCredentials {
	return c.credentials
}

// APIKeyResolver returns the resolver consulted before every request.
func (c *Client) APIKeyResolver() resolver.APIKeyResolver {
	return c.apiKeyResolver
}

// BaseURLResolver returns the base URL resolver.
func (c *Client) BaseURLResolver() resolver.BaseURLResolver {
	return c.baseURLResolver
}

// BaseURL is shorthand for BaseURLResolver().BaseURL().
func (c *Client) BaseURL() string {
	return c.baseURLResolver.BaseURL()
}

// Proxy returns a copy of the proxy descriptor, or nil when no proxy is
// configured.
func (c *Client) Proxy() *models.Proxy {
	if c.proxy == nil {
		return nil
	}
	p := *c.proxy
	return &p
}

// CacheManager returns the cache manager.
func (c *Client) CacheManager() cache.Manager {
	return c.cacheManager
}

// AuthenticationScheme returns the scheme requests are authenticated with.
func (c *Client) AuthenticationScheme() models.AuthenticationScheme {
	return c.authenticationScheme
}

// ConnectionTimeout returns the transport timeout; zero means the transport
// default.
func (c *Client) ConnectionTimeout() time.Duration {
	return c.connectionTimeout
}

// TenantResolver returns the tenant resolver and whether one is configured.
func (c *Client) TenantResolver() (resolver.TenantResolver, bool) {
	return c.tenantResolver, c.tenantResolver != nil
}

// CurrentTenant resolves the current tenant, or returns
// [ErrNoTenantResolver].
func (c *Client) CurrentTenant(ctx context.Context) (string, error) {
	if c.tenantResolver == nil {
		return "", ErrNoTenantResolver
	}
	return c.tenantResolver.CurrentTenant(ctx)
}

// Transport returns the HTTP client requests are sent through. Every request
// it sends is authenticated and carries a request id.
func (c *Client) Transport() *utils.HTTPClient {
	return c.transport
}
