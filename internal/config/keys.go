package config

import (
	"strings"

	"github.com/MKhiriev/tollgate-go/internal/credentials"
)

// Recognised configuration keys.
const (
	KeyAPIKeyFile   = credentials.PropertyAPIKeyFile
	KeyAPIKeyID     = credentials.PropertyAPIKeyID
	KeyAPIKeySecret = credentials.PropertyAPIKeySecret

	KeyCacheManagerEnabled = "tollgate.client.cacheManager.enabled"
	KeyCacheManagerTTL     = "tollgate.client.cacheManager.defaultTtl"
	KeyCacheManagerTTI     = "tollgate.client.cacheManager.defaultTti"
	// KeyCacheManagerCaches prefixes per-region keys of the form
	// <prefix>.<ResourceType>.tti and <prefix>.<ResourceType>.ttl.
	KeyCacheManagerCaches = "tollgate.client.cacheManager.caches"

	KeyBaseURL              = "tollgate.client.baseUrl"
	KeyConnectionTimeout    = "tollgate.client.connectionTimeout"
	KeyAuthenticationScheme = "tollgate.client.authenticationScheme"

	KeyProxyHost     = "tollgate.client.proxy.host"
	KeyProxyPort     = "tollgate.client.proxy.port"
	KeyProxyUsername = "tollgate.client.proxy.username"
	KeyProxyPassword = "tollgate.client.proxy.password"
)

const (
	cacheTTISuffix = ".tti"
	cacheTTLSuffix = ".ttl"
)

// unescapeColons undoes the "\:" escaping left behind when a colon-bearing
// value was written through a properties encoder.
func unescapeColons(v string) string {
	return strings.ReplaceAll(v, `\:`, ":")
}
