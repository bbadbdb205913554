package resolver

import (
	"context"

	"github.com/MKhiriev/tollgate-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// BaseURLResolver supplies the API root every request path is joined to.
type BaseURLResolver interface {
	BaseURL() string
}

// APIKeyResolver supplies the API key used to authenticate a request.
// Implementations may return a different key on each call, e.g. after a
// rotation.
type APIKeyResolver interface {
	ResolveAPIKey(ctx context.Context) (models.APIKey, error)
}

// TenantResolver identifies the tenant the client acts on behalf of.
type TenantResolver interface {
	CurrentTenant(ctx context.Context) (string, error)
}
