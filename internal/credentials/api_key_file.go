package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/tollgate-go/models"
	"github.com/magiconair/properties"
)

var errIncompleteKeyFile = errors.New("api key file must define apiKey.id and apiKey.secret")

// ReadAPIKeyFile loads an API key from a .properties file holding
// apiKey.id and apiKey.secret.
func ReadAPIKeyFile(path string) (models.APIKey, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadFile(path)
	if err != nil {
		return models.APIKey{}, fmt.Errorf("error reading api key file %s: %w", path, err)
	}

	key := models.APIKey{
		ID:     strings.TrimSpace(p.GetString(fileKeyID, "")),
		Secret: strings.TrimSpace(p.GetString(fileKeySecret, "")),
	}
	if key.IsZero() {
		return models.APIKey{}, fmt.Errorf("%s: %w", path, errIncompleteKeyFile)
	}

	return key, nil
}
