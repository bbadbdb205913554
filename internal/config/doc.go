// Package config loads, merges and types the Tollgate client configuration.
//
// Configuration is assembled from the following origins, in order; a key
// defined by a later origin overrides the same key from an earlier one:
//  1. bundled:defaults/tollgate.properties (compiled into the binary)
//  2. app:tollgate.properties, then .json and .yaml siblings
//  3. ~/.tollgate/tollgate.properties, then .json and .yaml siblings
//  4. ~/tollgate.properties, then .json and .yaml siblings
//
// Every origin is optional: a missing or malformed file contributes no keys.
// The merged flat mapping is typed into a [ClientConfiguration] by [Apply];
// values that cannot be typed are reported together, wrapped in
// [ErrInvalidConfiguration].
//
// The main entry point is [Load].
package config
