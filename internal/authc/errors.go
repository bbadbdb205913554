package authc

import "errors"

// ErrUnsupportedScheme is returned by a [Factory] for schemes it cannot serve.
var ErrUnsupportedScheme = errors.New("unsupported authentication scheme")
