package config

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Location prefixes understood by [ResourceFactory]. Locations without a
// prefix are filesystem paths.
const (
	BundledPrefix = "bundled:"
	AppPrefix     = "app:"
)

// Resource is one configuration origin that may or may not exist.
type Resource interface {
	Location() string
	Read() ([]byte, error)
}

// ResourceFactory maps location strings onto resources.
type ResourceFactory struct {
	bundled fs.FS
	appDir  string
}

// NewResourceFactory returns a factory resolving bundled: locations against
// bundled and app: locations against appDir. A nil bundled FS uses the
// defaults compiled into the binary.
func NewResourceFactory(bundled fs.FS, appDir string) *ResourceFactory {
	if bundled == nil {
		bundled = bundledFS
	}
	return &ResourceFactory{bundled: bundled, appDir: appDir}
}

// Create returns the resource for location.
func (f *ResourceFactory) Create(location string) Resource {
	switch {
	case strings.HasPrefix(location, BundledPrefix):
		return &bundledResource{
			fsys:     f.bundled,
			path:     path.Clean(strings.TrimPrefix(location, BundledPrefix)),
			location: location,
		}
	case strings.HasPrefix(location, AppPrefix):
		return &fileResource{
			path:     filepath.Join(f.appDir, strings.TrimPrefix(location, AppPrefix)),
			location: location,
		}
	default:
		return &fileResource{path: location, location: location}
	}
}

type bundledResource struct {
	fsys     fs.FS
	path     string
	location string
}

func (r *bundledResource) Location() string { return r.location }

func (r *bundledResource) Read() ([]byte, error) {
	return fs.ReadFile(r.fsys, r.path)
}

type fileResource struct {
	path     string
	location string
}

func (r *fileResource) Location() string { return r.location }

func (r *fileResource) Read() ([]byte, error) {
	return os.ReadFile(r.path)
}
