// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// SystemProperties collects repeated -D key=value flags.
// It implements the flag.Value interface.
type SystemProperties map[string]string

// String renders the properties as sorted key=value pairs. Values of keys
// that look secret are masked.
func (p SystemProperties) String() string {
	if len(p) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := p[k]
		if isSecretKey(k) {
			v = "****"
		}
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

// Set parses one key=value pair. A bare key is stored with an empty value.
func (p SystemProperties) Set(s string) error {
	key, value, _ := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("need a property in a form `key=value`")
	}

	p[key] = value
	return nil
}

func isSecretKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "secret") || strings.Contains(lower, "password")
}

// Flags holds the command-line settings of the tollgate CLI.
type Flags struct {
	HomeDir          string
	AppDir           string
	SystemProperties SystemProperties
	APIKeyID         string
	APIKeySecret     string
	LogLevel         zerolog.Level
}

// ParseFlags parses args with a fresh flag set named name.
//
// Flags:
//
//	-home user home directory (defaults to the current user's)
//	-app-dir directory app: locations are resolved against
//	-D key=value system property, repeatable
//	-api-key-id explicit API key id
//	-api-key-secret explicit API key secret
//	-log-level zerolog level (debug, info, warn, ...)
func ParseFlags(name string, args []string) (*Flags, error) {
	flags := &Flags{SystemProperties: SystemProperties{}}
	var logLevel string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&flags.HomeDir, "home", "", "User home directory")
	fs.StringVar(&flags.AppDir, "app-dir", ".", "Application directory for app: locations")
	fs.Var(flags.SystemProperties, "D", "System property key=value (repeatable)")
	fs.StringVar(&flags.APIKeyID, "api-key-id", "", "API key id")
	fs.StringVar(&flags.APIKeySecret, "api-key-secret", "", "API key secret")
	fs.StringVar(&logLevel, "log-level", "info", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	flags.LogLevel = level

	return flags, nil
}
