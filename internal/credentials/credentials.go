package credentials

import "github.com/MKhiriev/tollgate-go/models"

// ClientCredentials is the id/secret pair a client authenticates with.
type ClientCredentials interface {
	ID() string
	Secret() string
}

// APIKeyCredentials wraps an explicit [models.APIKey].
type APIKeyCredentials struct {
	key models.APIKey
}

// NewAPIKeyCredentials wraps key.
func NewAPIKeyCredentials(key models.APIKey) *APIKeyCredentials {
	return &APIKeyCredentials{key: key}
}

func (c *APIKeyCredentials) ID() string     { return c.key.ID }
func (c *APIKeyCredentials) Secret() string { return c.key.Secret }

// APIKey returns the wrapped key.
func (c *APIKeyCredentials) APIKey() models.APIKey {
	return c.key
}

// PairCredentials is an id/secret pair produced by a [Provider]. Source names
// the provider for diagnostics.
type PairCredentials struct {
	id     string
	secret string
	source string
}

// NewPairCredentials returns provider-supplied credentials.
func NewPairCredentials(id, secret, source string) *PairCredentials {
	return &PairCredentials{id: id, secret: secret, source: source}
}

func (c *PairCredentials) ID() string     { return c.id }
func (c *PairCredentials) Secret() string { return c.secret }

// Source returns the name of the provider that produced the pair.
func (c *PairCredentials) Source() string {
	return c.source
}
