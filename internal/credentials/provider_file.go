package credentials

import (
	"path/filepath"

	"github.com/MKhiriev/tollgate-go/internal/logger"
)

// FileProvider reads credentials from an API key file. Missing or
// incomplete files yield nothing.
type FileProvider struct {
	path   string
	source string
	logger *logger.Logger
}

// NewFileProvider returns a provider for the key file at path. An empty path
// makes the provider permanently empty.
func NewFileProvider(path, source string, log *logger.Logger) *FileProvider {
	return &FileProvider{path: path, source: source, logger: logger.OrNop(log)}
}

// ClientCredentials implements [Provider].
func (p *FileProvider) ClientCredentials() (ClientCredentials, bool) {
	if p.path == "" {
		return nil, false
	}

	key, err := ReadAPIKeyFile(p.path)
	if err != nil {
		p.logger.Debug().Err(err).Str("source", p.source).Msg("api key file skipped")
		return nil, false
	}

	return NewPairCredentials(key.ID, key.Secret, p.source), true
}

// DefaultAPIKeyFilePath returns ~/.tollgate/apiKey.properties for homeDir.
func DefaultAPIKeyFilePath(homeDir string) string {
	return filepath.Join(homeDir, ".tollgate", DefaultAPIKeyFileName)
}
