package credentials

import (
	"github.com/MKhiriev/tollgate-go/internal/logger"
	"github.com/caarlos0/env/v11"
)

// envCredentials maps the credential environment variables.
type envCredentials struct {
	// Env: TOLLGATE_CLIENT_APIKEY_ID
	ID string `env:"ID"`
	// Env: TOLLGATE_CLIENT_APIKEY_SECRET
	Secret string `env:"SECRET"`
	// Env: TOLLGATE_CLIENT_APIKEY_FILE
	File string `env:"FILE"`
}

const envPrefix = "TOLLGATE_CLIENT_APIKEY_"

// EnvProvider reads credentials from environment variables. An id/secret
// pair takes precedence over a key file path.
type EnvProvider struct {
	environment map[string]string
	logger      *logger.Logger
}

// NewEnvProvider returns a provider over environment; nil means the process
// environment.
func NewEnvProvider(environment map[string]string, log *logger.Logger) *EnvProvider {
	return &EnvProvider{environment: environment, logger: logger.OrNop(log)}
}

// ClientCredentials implements [Provider].
func (p *EnvProvider) ClientCredentials() (ClientCredentials, bool) {
	var vars envCredentials
	err := env.ParseWithOptions(&vars, env.Options{
		Environment: p.environment,
		Prefix:      envPrefix,
	})
	if err != nil {
		p.logger.Debug().Err(err).Msg("error getting env credentials")
		return nil, false
	}

	if vars.ID != "" && vars.Secret != "" {
		return NewPairCredentials(vars.ID, vars.Secret, "env"), true
	}

	return NewFileProvider(vars.File, "env-file", p.logger).ClientCredentials()
}
