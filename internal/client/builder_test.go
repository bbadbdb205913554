package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/MKhiriev/tollgate-go/internal/cache"
	"github.com/MKhiriev/tollgate-go/internal/credentials"
	"github.com/MKhiriev/tollgate-go/internal/mock"
	"github.com/MKhiriev/tollgate-go/internal/resolver"
	"github.com/MKhiriev/tollgate-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testBaseURL = "https://api.example.com/v1"

// bundledWith returns bundled defaults holding a base URL plus lines.
func bundledWith(lines ...string) fstest.MapFS {
	data := "tollgate.client.baseUrl=https\\://api.example.com/v1\n"
	for _, l := range lines {
		data += l + "\n"
	}
	return fstest.MapFS{"defaults/tollgate.properties": {Data: []byte(data)}}
}

// testOptions isolates a builder from the machine it runs on.
func testOptions(t *testing.T, bundled fstest.MapFS) Options {
	t.Helper()
	return Options{
		HomeDir:          t.TempDir(),
		AppDir:           t.TempDir(),
		Environment:      map[string]string{},
		SystemProperties: map[string]string{},
		Bundled:          bundled,
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

var testKey = models.APIKey{ID: "explicit-id", Secret: "explicit-secret"}

// ── credentials ───────────────────────────────────────────────────────────────

// TestBuild_ExplicitAPIKey verifies that an explicit key becomes plain API key
// credentials with a synthesised static resolver.
func TestBuild_ExplicitAPIKey(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith(
		"tollgate.client.apiKey.id=config-id",
		"tollgate.client.apiKey.secret=config-secret",
	)))
	require.NoError(t, b.SetAPIKey(testKey))

	c, err := b.Build()
	require.NoError(t, err)

	creds, ok := c.Credentials().(*credentials.APIKeyCredentials)
	require.True(t, ok)
	assert.Equal(t, testKey, creds.APIKey())

	key, err := c.APIKeyResolver().ResolveAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testKey, key)
}

// TestBuild_ExplicitCredentialsWinOverAPIKey verifies that explicit
// credentials beat an explicit API key.
func TestBuild_ExplicitCredentialsWinOverAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	keyResolver := mock.NewMockAPIKeyResolver(ctrl)

	explicit := credentials.NewPairCredentials("pair-id", "pair-secret", "caller")

	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetClientCredentials(explicit))
	require.NoError(t, b.SetAPIKeyResolver(keyResolver))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Same(t, explicit, c.Credentials())
	assert.Same(t, keyResolver, c.APIKeyResolver())
}

// TestBuild_ChainCredentialsRequireResolver verifies that provider-supplied
// credentials without an API key resolver fail with a configuration error.
func TestBuild_ChainCredentialsRequireResolver(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith(
		"tollgate.client.apiKey.id=config-id",
		"tollgate.client.apiKey.secret=config-secret",
	)))

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

// TestBuild_ChainCredentialsWithResolver verifies that configuration
// credentials are used when nothing explicit is set.
func TestBuild_ChainCredentialsWithResolver(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith(
		"tollgate.client.apiKey.id=config-id",
		"tollgate.client.apiKey.secret=config-secret",
	)))
	require.NoError(t, b.SetAPIKeyResolver(resolver.NewProviderAPIKeyResolver(b.CredentialsProvider())))

	c, err := b.Build()
	require.NoError(t, err)

	pair, ok := c.Credentials().(*credentials.PairCredentials)
	require.True(t, ok)
	assert.Equal(t, "config-id", pair.ID())
	assert.Equal(t, "configuration", pair.Source())

	key, err := c.APIKeyResolver().ResolveAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.APIKey{ID: "config-id", Secret: "config-secret"}, key)
}

// TestBuild_ChainOrder verifies that the configured key file beats the
// environment, which beats system properties, which beat configuration.
func TestBuild_ChainOrder(t *testing.T) {
	opts := testOptions(t, bundledWith(
		"tollgate.client.apiKey.id=config-id",
		"tollgate.client.apiKey.secret=config-secret",
	))
	opts.SystemProperties = map[string]string{
		credentials.PropertyAPIKeyID:     "sys-id",
		credentials.PropertyAPIKeySecret: "sys-secret",
	}
	requireChainID := func(t *testing.T, opts Options, want string) {
		t.Helper()
		creds, ok := NewBuilder(opts).CredentialsProvider().ClientCredentials()
		require.True(t, ok)
		assert.Equal(t, want, creds.ID())
	}

	requireChainID(t, opts, "sys-id")

	opts.Environment = map[string]string{
		"TOLLGATE_CLIENT_APIKEY_ID":     "env-id",
		"TOLLGATE_CLIENT_APIKEY_SECRET": "env-secret",
	}
	requireChainID(t, opts, "env-id")

	keyFile := filepath.Join(opts.AppDir, "keys", "apiKey.properties")
	writeFile(t, keyFile, "apiKey.id=file-id\napiKey.secret=file-secret\n")
	writeFile(t, filepath.Join(opts.AppDir, "tollgate.json"),
		`{"tollgate":{"client":{"apiKey":{"file":"`+filepath.ToSlash(keyFile)+`"}}}}`)
	requireChainID(t, opts, "file-id")
}

// TestBuild_DefaultKeyFile verifies that ~/.tollgate/apiKey.properties is the
// last resort.
func TestBuild_DefaultKeyFile(t *testing.T) {
	opts := testOptions(t, bundledWith())
	writeFile(t, credentials.DefaultAPIKeyFilePath(opts.HomeDir), "apiKey.id=home-id\napiKey.secret=home-secret\n")

	creds, ok := NewBuilder(opts).CredentialsProvider().ClientCredentials()
	require.True(t, ok)
	assert.Equal(t, "home-id", creds.ID())
}

// TestBuild_CredentialsNotFound verifies the error when no tier yields
// credentials.
func TestBuild_CredentialsNotFound(t *testing.T) {
	_, err := NewBuilder(testOptions(t, bundledWith())).Build()
	assert.ErrorIs(t, err, credentials.ErrCredentialsNotFound)
}

// ── base url ──────────────────────────────────────────────────────────────────

// TestBuild_MissingBaseURL verifies the error when neither a base URL nor a
// resolver is known.
func TestBuild_MissingBaseURL(t *testing.T) {
	b := NewBuilder(testOptions(t, fstest.MapFS{}))
	require.NoError(t, b.SetAPIKey(testKey))

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrMissingBaseURL)
}

// TestBuild_BaseURLResolverWins verifies that an explicit resolver is used
// instead of the configured base URL.
func TestBuild_BaseURLResolverWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	baseURL := mock.NewMockBaseURLResolver(ctrl)
	baseURL.EXPECT().BaseURL().Return("https://resolved.example.com").AnyTimes()

	b := NewBuilder(testOptions(t, fstest.MapFS{}))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetBaseURLResolver(baseURL))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "https://resolved.example.com", c.BaseURL())
}

// TestBuild_UnescapesColons verifies that escaped colons are removed from the
// base URL and the key file path, whatever the source format.
func TestBuild_UnescapesColons(t *testing.T) {
	opts := testOptions(t, fstest.MapFS{})
	writeFile(t, filepath.Join(opts.AppDir, "tollgate.json"),
		`{"tollgate":{"client":{"baseUrl":"https\\://json.example.com\\:8443"}}}`)

	b := NewBuilder(opts)
	require.NoError(t, b.SetAPIKey(testKey))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "https://json.example.com:8443", c.BaseURL())
}

// TestBuild_HomeOverridesBundled verifies that home files override the
// bundled defaults.
func TestBuild_HomeOverridesBundled(t *testing.T) {
	opts := testOptions(t, bundledWith())
	writeFile(t, filepath.Join(opts.HomeDir, ".tollgate", "tollgate.yaml"),
		"tollgate:\n  client:\n    baseUrl: https://home.example.com\n    connectionTimeout: 7\n")

	b := NewBuilder(opts)
	require.NoError(t, b.SetAPIKey(testKey))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "https://home.example.com", c.BaseURL())
	assert.Equal(t, 7*time.Second, c.ConnectionTimeout())
}

// ── cache manager ─────────────────────────────────────────────────────────────

// TestBuild_CacheDisabled verifies that disabling caching wins over region
// overrides and an explicit manager.
func TestBuild_CacheDisabled(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith(
		"tollgate.client.cacheManager.enabled=false",
		"tollgate.client.cacheManager.caches.Account.ttl=10",
	)))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetCacheManager(cache.NewManagerBuilder().Build()))

	c, err := b.Build()
	require.NoError(t, err)
	assert.IsType(t, &cache.DisabledManager{}, c.CacheManager())
}

// TestBuild_CacheRegions verifies that configured defaults and region
// overrides reach the in-memory manager.
func TestBuild_CacheRegions(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith(
		"tollgate.client.cacheManager.defaultTtl=120",
		"tollgate.client.cacheManager.defaultTti=60",
		"tollgate.client.cacheManager.caches.Account.tti=10",
		"tollgate.client.cacheManager.caches.Account.ttl=20",
	)))
	require.NoError(t, b.SetAPIKey(testKey))

	c, err := b.Build()
	require.NoError(t, err)

	m, ok := c.CacheManager().(*cache.MemoryManager)
	require.True(t, ok)
	assert.Equal(t, 120*time.Second, m.DefaultTimeToLive())
	assert.Equal(t, 60*time.Second, m.DefaultTimeToIdle())

	region, ok := m.RegionConfig("Account")
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, region.TimeToIdle)
	assert.Equal(t, 20*time.Second, region.TimeToLive)
}

// TestBuild_CacheRegionFromTwoFiles verifies that a region override split
// across files keeps the bundled TTI while the home file replaces the TTL.
func TestBuild_CacheRegionFromTwoFiles(t *testing.T) {
	opts := testOptions(t, bundledWith(
		"tollgate.client.cacheManager.caches.Account.tti=10",
		"tollgate.client.cacheManager.caches.Account.ttl=20",
	))
	writeFile(t, filepath.Join(opts.HomeDir, ".tollgate", "tollgate.yaml"),
		"tollgate:\n  client:\n    cacheManager:\n      caches:\n        Account:\n          ttl: 30\n")

	b := NewBuilder(opts)
	require.NoError(t, b.SetAPIKey(testKey))

	c, err := b.Build()
	require.NoError(t, err)

	m, ok := c.CacheManager().(*cache.MemoryManager)
	require.True(t, ok)

	region, ok := m.RegionConfig("Account")
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, region.TimeToLive)
	assert.Equal(t, 10*time.Second, region.TimeToIdle)
}

// TestBuild_ExplicitCacheManager verifies that an explicit manager is used
// while caching is enabled.
func TestBuild_ExplicitCacheManager(t *testing.T) {
	manager := cache.NewManagerBuilder().WithMaxEntries(1).Build()

	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetCacheManager(manager))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Same(t, manager, c.CacheManager())
}

// TestBuild_UnknownCacheRegion verifies that an unknown resource type in a
// region key fails the build with a configuration error.
func TestBuild_UnknownCacheRegion(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith("tollgate.client.cacheManager.caches.Widget.tti=10")))
	require.NoError(t, b.SetAPIKey(testKey))

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, models.ErrUnknownResourceType)
}

// ── proxy ─────────────────────────────────────────────────────────────────────

// TestBuild_Proxy verifies how configured and explicit proxy settings combine.
func TestBuild_Proxy(t *testing.T) {
	explicit := models.NewProxy("explicit.local", 9000)

	tests := []struct {
		name     string
		lines    []string
		explicit *models.Proxy
		want     *models.Proxy
	}{
		{
			name: "nothing configured",
			want: nil,
		},
		{
			name:  "host and port",
			lines: []string{"tollgate.client.proxy.host=proxy.local", "tollgate.client.proxy.port=3128"},
			want:  &models.Proxy{Host: "proxy.local", Port: 3128},
		},
		{
			name:  "port only",
			lines: []string{"tollgate.client.proxy.port=3128"},
			want:  &models.Proxy{Port: 3128},
		},
		{
			name:  "host with username only",
			lines: []string{"tollgate.client.proxy.host=proxy.local", "tollgate.client.proxy.username=u"},
			want:  &models.Proxy{Host: "proxy.local"},
		},
		{
			name: "full credentials",
			lines: []string{
				"tollgate.client.proxy.host=proxy.local", "tollgate.client.proxy.port=3128",
				"tollgate.client.proxy.username=u", "tollgate.client.proxy.password=p",
			},
			want: &models.Proxy{Host: "proxy.local", Port: 3128, Username: "u", Password: "p"},
		},
		{
			name:  "credentials without host",
			lines: []string{"tollgate.client.proxy.username=u", "tollgate.client.proxy.password=p"},
			want:  &models.Proxy{Username: "u", Password: "p"},
		},
		{
			name:     "explicit proxy only",
			explicit: &explicit,
			want:     &explicit,
		},
		{
			name:     "configured proxy beats explicit",
			lines:    []string{"tollgate.client.proxy.host=proxy.local"},
			explicit: &explicit,
			want:     &models.Proxy{Host: "proxy.local"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(testOptions(t, bundledWith(tt.lines...)))
			require.NoError(t, b.SetAPIKey(testKey))
			if tt.explicit != nil {
				require.NoError(t, b.SetProxy(*tt.explicit))
			}

			c, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Proxy())
			if tt.want != nil {
				assert.Equal(t, tt.want.Authenticated(), c.Proxy().Authenticated())
			}
		})
	}
}

// ── tenant ────────────────────────────────────────────────────────────────────

// TestBuild_TenantResolver verifies that a configured tenant resolver is
// exposed and consulted.
func TestBuild_TenantResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mock.NewMockTenantResolver(ctrl)
	tenants.EXPECT().CurrentTenant(gomock.Any()).Return("acme", nil)

	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetTenantResolver(tenants))

	c, err := b.Build()
	require.NoError(t, err)

	got, ok := c.TenantResolver()
	assert.True(t, ok)
	assert.Same(t, tenants, got)

	tenant, err := c.CurrentTenant(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant)
}

// TestBuild_NoTenantResolver verifies the absent tenant resolver.
func TestBuild_NoTenantResolver(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))

	c, err := b.Build()
	require.NoError(t, err)

	_, ok := c.TenantResolver()
	assert.False(t, ok)

	_, err = c.CurrentTenant(context.Background())
	assert.ErrorIs(t, err, ErrNoTenantResolver)
}

// ── authentication ────────────────────────────────────────────────────────────

// TestBuild_AuthenticatorFactoryFailure verifies that a factory error becomes
// a configuration error.
func TestBuild_AuthenticatorFactoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mock.NewMockFactory(ctrl)
	factory.EXPECT().Create(models.AuthenticationSchemeBearer).Return(nil, assert.AnError)

	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetAuthenticationScheme(models.AuthenticationSchemeBearer))
	require.NoError(t, b.SetRequestAuthenticatorFactory(factory))

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_SchemeFromConfiguration verifies that the configured scheme is
// used and defaults to BASIC.
func TestBuild_SchemeFromConfiguration(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))
	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, models.AuthenticationSchemeBasic, c.AuthenticationScheme())

	b = NewBuilder(testOptions(t, bundledWith("tollgate.client.authenticationScheme=bearer")))
	require.NoError(t, b.SetAPIKey(testKey))
	c, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, models.AuthenticationSchemeBearer, c.AuthenticationScheme())
}

// TestBuild_InvalidConfiguredValue verifies that malformed configuration
// surfaces from Build.
func TestBuild_InvalidConfiguredValue(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith("tollgate.client.connectionTimeout=-5")))
	require.NoError(t, b.SetAPIKey(testKey))

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

// ── setters & lifecycle ───────────────────────────────────────────────────────

// TestSetters_InvalidArguments verifies that every setter rejects invalid
// input immediately.
func TestSetters_InvalidArguments(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith()))

	tests := []struct {
		name string
		call func() error
	}{
		{"empty api key", func() error { return b.SetAPIKey(models.APIKey{ID: "id"}) }},
		{"nil credentials", func() error { return b.SetClientCredentials(nil) }},
		{"negative proxy port", func() error { return b.SetProxy(models.NewProxy("h", -1)) }},
		{"nil cache manager", func() error { return b.SetCacheManager(nil) }},
		{"unknown scheme", func() error { return b.SetAuthenticationScheme("DIGEST") }},
		{"negative timeout", func() error { return b.SetConnectionTimeout(-1) }},
		{"nil factory", func() error { return b.SetRequestAuthenticatorFactory(nil) }},
		{"nil api key resolver", func() error { return b.SetAPIKeyResolver(nil) }},
		{"nil base url resolver", func() error { return b.SetBaseURLResolver(nil) }},
		{"nil tenant resolver", func() error { return b.SetTenantResolver(nil) }},
		{"empty base url", func() error { return b.SetBaseURL("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrInvalidArgument)
		})
	}
}

// TestBuild_OnlyOnce verifies that a built builder rejects further setters
// and a second Build.
func TestBuild_OnlyOnce(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith()))
	require.NoError(t, b.SetAPIKey(testKey))
	require.NoError(t, b.SetConnectionTimeout(3))
	require.NoError(t, b.SetBaseURL("https://override.example.com/"))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.ConnectionTimeout())
	assert.Equal(t, "https://override.example.com", c.BaseURL())

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
	assert.ErrorIs(t, b.SetBaseURL(testBaseURL), ErrAlreadyBuilt)
	assert.ErrorIs(t, b.SetAPIKey(testKey), ErrAlreadyBuilt)
}

// TestBuild_FailureKeepsBuilderUsable verifies that a failed Build can be
// retried after fixing the input.
func TestBuild_FailureKeepsBuilderUsable(t *testing.T) {
	b := NewBuilder(testOptions(t, bundledWith()))

	_, err := b.Build()
	require.ErrorIs(t, err, credentials.ErrCredentialsNotFound)

	require.NoError(t, b.SetAPIKey(testKey))
	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, testBaseURL, c.BaseURL())
}
