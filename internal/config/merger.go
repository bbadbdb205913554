package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// propertiesMerger collects sources in precedence order and merges them so
// that a key from a later source replaces the same key from an earlier one.
type propertiesMerger struct {
	sources []PropertiesSource
	err     error
}

func newPropertiesMerger() *propertiesMerger {
	return &propertiesMerger{
		sources: make([]PropertiesSource, 0, 10),
	}
}

func (m *propertiesMerger) withSources(sources ...PropertiesSource) *propertiesMerger {
	m.sources = append(m.sources, sources...)
	return m
}

func (m *propertiesMerger) merge() (map[string]string, error) {
	merged := make(map[string]string)
	for _, src := range m.sources {
		props, err := src.Properties()
		if err != nil {
			m.err = errors.Join(m.err, err)
			continue
		}
		if err = mergo.Merge(&merged, props, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging properties: %w", err)
		}
	}

	if m.err != nil {
		return nil, fmt.Errorf("error occured during merging properties: %w", m.err)
	}
	return merged, nil
}

// Merge combines sources left to right with last-write-wins per key.
func Merge(sources ...PropertiesSource) (map[string]string, error) {
	return newPropertiesMerger().withSources(sources...).merge()
}
