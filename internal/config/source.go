package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/tollgate-go/internal/logger"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// PropertiesSource produces a flat key/value mapping from one origin.
// Keys with empty values are never reported.
type PropertiesSource interface {
	Properties() (map[string]string, error)
}

type decodeFunc func([]byte) (map[string]string, error)

// resourceSource reads a resource and decodes it with one format.
type resourceSource struct {
	resource Resource
	decode   decodeFunc
}

// NewPropertiesSource reads resource as a .properties document.
func NewPropertiesSource(resource Resource) PropertiesSource {
	return &resourceSource{resource: resource, decode: decodeProperties}
}

// NewJSONSource reads resource as a JSON object, flattening nested objects
// into dotted keys.
func NewJSONSource(resource Resource) PropertiesSource {
	return &resourceSource{resource: resource, decode: decodeJSON}
}

// NewYAMLSource reads resource as a YAML mapping, flattening nested mappings
// into dotted keys.
func NewYAMLSource(resource Resource) PropertiesSource {
	return &resourceSource{resource: resource, decode: decodeYAML}
}

func (s *resourceSource) Properties() (map[string]string, error) {
	data, err := s.resource.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", s.resource.Location(), err)
	}

	props, err := s.decode(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", s.resource.Location(), err)
	}

	return dropEmpty(props), nil
}

// optionalSource turns every failure of the wrapped source into an empty
// mapping.
type optionalSource struct {
	source PropertiesSource
	name   string
	logger *logger.Logger
}

// Optional wraps source so that it never fails. Failures are logged at debug
// level under name.
func Optional(source PropertiesSource, name string, log *logger.Logger) PropertiesSource {
	return &optionalSource{source: source, name: name, logger: logger.OrNop(log)}
}

func (s *optionalSource) Properties() (map[string]string, error) {
	props, err := s.source.Properties()
	if err != nil {
		s.logger.Debug().Err(err).Str("location", s.name).Msg("configuration source skipped")
		return map[string]string{}, nil
	}

	s.logger.Debug().Str("location", s.name).Int("keys", len(props)).Msg("configuration source loaded")
	return props, nil
}

// MapSource is an in-memory source, used for programmatic layers.
type MapSource map[string]string

// Properties implements [PropertiesSource].
func (m MapSource) Properties() (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return dropEmpty(out), nil
}

func decodeProperties(data []byte) (map[string]string, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}

func decodeJSON(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	flatten("", doc, out)
	return out, nil
}

func decodeYAML(data []byte) (map[string]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	flatten("", doc, out)
	return out, nil
}

// flatten writes v into out under dotted keys rooted at prefix. Map keys are
// visited in sorted order, so a literal dotted key such as "a.b" always wins
// over the nested form of the same path.
func flatten(prefix string, v any, out map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(val)) {
			flatten(joinKey(prefix, k), val[k], out)
		}
	case map[any]any:
		named := make(map[string]any, len(val))
		for k, child := range val {
			named[fmt.Sprint(k)] = child
		}
		flatten(prefix, named, out)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := scalarString(item); ok {
				items = append(items, s)
			}
		}
		if prefix != "" {
			out[prefix] = strings.Join(items, ",")
		}
	default:
		if s, ok := scalarString(val); ok && prefix != "" {
			out[prefix] = s
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case map[string]any, map[any]any, []any:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

func dropEmpty(props map[string]string) map[string]string {
	for k, v := range props {
		if v == "" {
			delete(props, k)
		}
	}
	return props
}
