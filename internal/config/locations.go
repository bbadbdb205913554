package config

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/tollgate-go/internal/logger"
)

// File names probed at every location.
const (
	PropertiesFileName = "tollgate.properties"
	homeConfigDir      = ".tollgate"
)

const (
	extProperties = ".properties"
	extJSON       = ".json"
	extYAML       = ".yaml"
)

// DefaultLocations returns the .properties locations in load order. The two
// home locations are omitted when homeDir is empty.
func DefaultLocations(homeDir string) []string {
	locations := []string{
		BundledPrefix + "defaults/" + PropertiesFileName,
		AppPrefix + PropertiesFileName,
	}
	if homeDir != "" {
		locations = append(locations,
			filepath.Join(homeDir, homeConfigDir, PropertiesFileName),
			filepath.Join(homeDir, PropertiesFileName),
		)
	}
	return locations
}

// ExpandLocations returns the full probing order for locations: every
// .properties location after the first is followed by its .json and .yaml
// siblings.
func ExpandLocations(locations []string) []string {
	expanded := make([]string, 0, len(locations)*3)
	for i, location := range locations {
		expanded = append(expanded, location)
		if i > 0 && strings.HasSuffix(location, extProperties) {
			base := strings.TrimSuffix(location, extProperties)
			expanded = append(expanded, base+extJSON, base+extYAML)
		}
	}
	return expanded
}

// Sources builds one optional source per expanded location, picking the
// decoder from the file extension.
func Sources(factory *ResourceFactory, locations []string, log *logger.Logger) []PropertiesSource {
	expanded := ExpandLocations(locations)
	sources := make([]PropertiesSource, 0, len(expanded))

	for _, location := range expanded {
		resource := factory.Create(location)

		var src PropertiesSource
		switch strings.ToLower(filepath.Ext(location)) {
		case extJSON:
			src = NewJSONSource(resource)
		case extYAML, ".yml":
			src = NewYAMLSource(resource)
		default:
			src = NewPropertiesSource(resource)
		}

		sources = append(sources, Optional(src, location, log))
	}

	return sources
}
