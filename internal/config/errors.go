package config

import "errors"

// ErrInvalidConfiguration wraps every problem found while typing merged
// configuration values (malformed numbers, unknown enum values, unknown
// resource types in cache region keys).
var ErrInvalidConfiguration = errors.New("invalid configuration")
