package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAuthenticationScheme is returned by ParseAuthenticationScheme
// for names outside the supported set.
var ErrUnknownAuthenticationScheme = errors.New("unknown authentication scheme")

// AuthenticationScheme selects how requests are authenticated against the
// Tollgate API.
type AuthenticationScheme string

const (
	// AuthenticationSchemeBasic sends the API key id and secret as HTTP Basic
	// credentials.
	AuthenticationSchemeBasic AuthenticationScheme = "BASIC"

	// AuthenticationSchemeBearer sends a short-lived HS256 token signed with
	// the API key secret.
	AuthenticationSchemeBearer AuthenticationScheme = "BEARER"
)

// DefaultAuthenticationScheme is used when no scheme was configured.
const DefaultAuthenticationScheme = AuthenticationSchemeBasic

// String returns the configuration name of the scheme.
func (s AuthenticationScheme) String() string {
	return string(s)
}

// Valid reports whether s is one of the supported schemes.
func (s AuthenticationScheme) Valid() bool {
	switch s {
	case AuthenticationSchemeBasic, AuthenticationSchemeBearer:
		return true
	default:
		return false
	}
}

// ParseAuthenticationScheme converts a configuration value into an
// AuthenticationScheme. Matching is case-insensitive and ignores
// surrounding whitespace.
func ParseAuthenticationScheme(name string) (AuthenticationScheme, error) {
	s := AuthenticationScheme(strings.ToUpper(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthenticationScheme, name)
	}

	return s, nil
}
