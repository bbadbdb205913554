// Package credentials resolves the API key a Tollgate client authenticates
// with.
//
// A [Chain] consults its providers in order and returns the first complete
// id/secret pair. [NewDefaultChain] wires the standard order: the configured
// key file, environment variables, system properties, the id/secret from
// merged configuration, and finally ~/.tollgate/apiKey.properties.
package credentials
