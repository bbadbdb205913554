package authc

import (
	"fmt"
	"time"

	"github.com/MKhiriev/tollgate-go/internal/utils"
	"github.com/MKhiriev/tollgate-go/models"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=authenticator.go -destination=../mock/authc_mock.go -package=mock

// RequestAuthenticator attaches credentials to a single request.
type RequestAuthenticator interface {
	Authenticate(req *resty.Request, key models.APIKey) error
}

// Factory creates the authenticator for a scheme.
type Factory interface {
	Create(scheme models.AuthenticationScheme) (RequestAuthenticator, error)
}

// DefaultTokenTTL bounds the lifetime of bearer tokens minted per request.
const DefaultTokenTTL = time.Minute

// DefaultFactory serves the BASIC and BEARER schemes.
type DefaultFactory struct {
	// TokenTTL overrides DefaultTokenTTL for bearer tokens when positive.
	TokenTTL time.Duration
}

// NewDefaultFactory returns a factory with default token lifetime.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{TokenTTL: DefaultTokenTTL}
}

// Create implements [Factory].
func (f *DefaultFactory) Create(scheme models.AuthenticationScheme) (RequestAuthenticator, error) {
	switch scheme {
	case models.AuthenticationSchemeBasic:
		return BasicAuthenticator{}, nil
	case models.AuthenticationSchemeBearer:
		ttl := f.TokenTTL
		if ttl <= 0 {
			ttl = DefaultTokenTTL
		}
		return &BearerAuthenticator{ttl: ttl, now: time.Now}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// BasicAuthenticator sends the key as HTTP Basic credentials.
type BasicAuthenticator struct{}

// Authenticate implements [RequestAuthenticator].
func (BasicAuthenticator) Authenticate(req *resty.Request, key models.APIKey) error {
	req.SetBasicAuth(key.ID, key.Secret)
	return nil
}

// BearerAuthenticator mints an HS256 token per request, signed with the key
// secret.
type BearerAuthenticator struct {
	ttl time.Duration
	now func() time.Time
}

// Authenticate implements [RequestAuthenticator].
func (a *BearerAuthenticator) Authenticate(req *resty.Request, key models.APIKey) error {
	token, err := utils.GenerateAPIKeyToken(key, a.ttl, a.now())
	if err != nil {
		return fmt.Errorf("bearer authentication: %w", err)
	}

	req.SetAuthToken(token)
	return nil
}
