package credentials

import "errors"

// ErrCredentialsNotFound is returned by [Chain.Resolve] when no provider
// yields a complete id/secret pair.
var ErrCredentialsNotFound = errors.New("client credentials not found")
