// Package resolver holds the pluggable strategies a Tollgate client consults
// at request time instead of static configuration: the base URL, the API key
// and the current tenant.
package resolver
