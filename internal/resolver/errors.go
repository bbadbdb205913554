package resolver

import "errors"

// ErrAPIKeyUnavailable is returned by an [APIKeyResolver] that cannot produce
// a complete key.
var ErrAPIKeyUnavailable = errors.New("api key unavailable")
