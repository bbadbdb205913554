package config

import "embed"

// bundledFS holds the defaults compiled into every binary.
//
//go:embed defaults/tollgate.properties
var bundledFS embed.FS
