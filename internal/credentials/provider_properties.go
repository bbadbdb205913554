package credentials

import "github.com/MKhiriev/tollgate-go/internal/logger"

// SystemPropertiesProvider reads credentials from -D style properties using
// the same names as configuration files.
type SystemPropertiesProvider struct {
	props  map[string]string
	logger *logger.Logger
}

// NewSystemPropertiesProvider returns a provider over props.
func NewSystemPropertiesProvider(props map[string]string, log *logger.Logger) *SystemPropertiesProvider {
	return &SystemPropertiesProvider{props: props, logger: logger.OrNop(log)}
}

// ClientCredentials implements [Provider].
func (p *SystemPropertiesProvider) ClientCredentials() (ClientCredentials, bool) {
	id, secret := p.props[PropertyAPIKeyID], p.props[PropertyAPIKeySecret]
	if id != "" && secret != "" {
		return NewPairCredentials(id, secret, "system-properties"), true
	}

	return NewFileProvider(p.props[PropertyAPIKeyFile], "system-properties-file", p.logger).ClientCredentials()
}

// ConfigurationProvider returns the id/secret found in merged configuration.
type ConfigurationProvider struct {
	id     string
	secret string
}

// NewConfigurationProvider returns a provider for a configured pair.
func NewConfigurationProvider(id, secret string) *ConfigurationProvider {
	return &ConfigurationProvider{id: id, secret: secret}
}

// ClientCredentials implements [Provider].
func (p *ConfigurationProvider) ClientCredentials() (ClientCredentials, bool) {
	if p.id == "" || p.secret == "" {
		return nil, false
	}
	return NewPairCredentials(p.id, p.secret, "configuration"), true
}
