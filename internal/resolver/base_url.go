package resolver

import "strings"

// DefaultBaseURLResolver returns a fixed base URL.
type DefaultBaseURLResolver struct {
	baseURL string
}

// NewBaseURLResolver wraps baseURL, dropping any trailing slash.
func NewBaseURLResolver(baseURL string) *DefaultBaseURLResolver {
	return &DefaultBaseURLResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// BaseURL implements [BaseURLResolver].
func (r *DefaultBaseURLResolver) BaseURL() string {
	return r.baseURL
}
