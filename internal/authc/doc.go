// Package authc applies an authentication scheme to outbound requests.
//
// A [Factory] turns a configured [models.AuthenticationScheme] into a
// [RequestAuthenticator]; the client transport invokes the authenticator for
// every request with the API key resolved for that request.
package authc
