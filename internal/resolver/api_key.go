package resolver

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tollgate-go/internal/credentials"
	"github.com/MKhiriev/tollgate-go/models"
)

// StaticAPIKeyResolver always returns the same key.
type StaticAPIKeyResolver struct {
	key models.APIKey
}

// NewStaticAPIKeyResolver wraps key.
func NewStaticAPIKeyResolver(key models.APIKey) *StaticAPIKeyResolver {
	return &StaticAPIKeyResolver{key: key}
}

// ResolveAPIKey implements [APIKeyResolver].
func (r *StaticAPIKeyResolver) ResolveAPIKey(context.Context) (models.APIKey, error) {
	return r.key, nil
}

// FileAPIKeyResolver re-reads an API key file on every call, so a rotated key
// is picked up without rebuilding the client.
type FileAPIKeyResolver struct {
	path string
}

// NewFileAPIKeyResolver returns a resolver for the key file at path.
func NewFileAPIKeyResolver(path string) *FileAPIKeyResolver {
	return &FileAPIKeyResolver{path: path}
}

// ResolveAPIKey implements [APIKeyResolver].
func (r *FileAPIKeyResolver) ResolveAPIKey(ctx context.Context) (models.APIKey, error) {
	if err := ctx.Err(); err != nil {
		return models.APIKey{}, err
	}

	key, err := credentials.ReadAPIKeyFile(r.path)
	if err != nil {
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrAPIKeyUnavailable, err)
	}
	return key, nil
}

// ProviderAPIKeyResolver consults a credentials provider on every call.
type ProviderAPIKeyResolver struct {
	provider credentials.Provider
}

// NewProviderAPIKeyResolver returns a resolver backed by provider.
func NewProviderAPIKeyResolver(provider credentials.Provider) *ProviderAPIKeyResolver {
	return &ProviderAPIKeyResolver{provider: provider}
}

// ResolveAPIKey implements [APIKeyResolver].
func (r *ProviderAPIKeyResolver) ResolveAPIKey(ctx context.Context) (models.APIKey, error) {
	if err := ctx.Err(); err != nil {
		return models.APIKey{}, err
	}

	creds, ok := r.provider.ClientCredentials()
	if !ok {
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrAPIKeyUnavailable, credentials.ErrCredentialsNotFound)
	}

	return models.APIKey{ID: creds.ID(), Secret: creds.Secret()}, nil
}
