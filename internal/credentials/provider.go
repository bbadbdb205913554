package credentials

import (
	"fmt"

	"github.com/MKhiriev/tollgate-go/internal/logger"
)

//go:generate mockgen -source=provider.go -destination=../mock/credentials_provider_mock.go -package=mock

// Provider yields client credentials or reports that it has none.
type Provider interface {
	ClientCredentials() (ClientCredentials, bool)
}

// Chain consults providers in order; the first complete pair wins.
type Chain struct {
	providers []Provider
	logger    *logger.Logger
}

// NewChain returns a chain over providers.
func NewChain(log *logger.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, logger: logger.OrNop(log)}
}

// ClientCredentials implements [Provider], so chains can be nested.
func (c *Chain) ClientCredentials() (ClientCredentials, bool) {
	for _, p := range c.providers {
		if creds, ok := p.ClientCredentials(); ok {
			c.logger.Debug().Str("provider", fmt.Sprintf("%T", p)).Msg("client credentials resolved")
			return creds, true
		}
	}
	return nil, false
}

// Resolve is like ClientCredentials but returns [ErrCredentialsNotFound]
// when every provider comes up empty.
func (c *Chain) Resolve() (ClientCredentials, error) {
	creds, ok := c.ClientCredentials()
	if !ok {
		return nil, fmt.Errorf("%w: tried %d providers", ErrCredentialsNotFound, len(c.providers))
	}
	return creds, nil
}

// ChainConfig carries everything the default chain consults.
type ChainConfig struct {
	// APIKeyFile, APIKeyID and APIKeySecret come from merged configuration.
	APIKeyFile   string
	APIKeyID     string
	APIKeySecret string

	// Environment replaces the process environment when non-nil.
	Environment map[string]string

	// SystemProperties are the -D key=value pairs given on the command line.
	SystemProperties map[string]string

	// HomeDir locates the default key file; empty skips it.
	HomeDir string
}

// NewDefaultChain wires the standard provider order.
func NewDefaultChain(cfg ChainConfig, log *logger.Logger) *Chain {
	log = logger.OrNop(log)

	providers := []Provider{
		NewFileProvider(cfg.APIKeyFile, "configured-file", log),
		NewEnvProvider(cfg.Environment, log),
		NewSystemPropertiesProvider(cfg.SystemProperties, log),
		NewConfigurationProvider(cfg.APIKeyID, cfg.APIKeySecret),
	}
	if cfg.HomeDir != "" {
		providers = append(providers, NewFileProvider(DefaultAPIKeyFilePath(cfg.HomeDir), "default-file", log))
	}

	return NewChain(log, providers...)
}
