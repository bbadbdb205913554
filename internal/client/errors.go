package client

import (
	"errors"

	"github.com/MKhiriev/tollgate-go/internal/config"
)

var (
	// ErrInvalidArgument is returned by a setter given a nil, negative, empty
	// or unknown value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyBuilt is returned by setters and Build once Build has run.
	ErrAlreadyBuilt = errors.New("client builder already built")

	// ErrMissingBaseURL is returned by Build when neither a base URL nor a
	// base URL resolver is available.
	ErrMissingBaseURL = errors.New("missing base url")

	// ErrNoTenantResolver is returned by Client.CurrentTenant when the client
	// was built without a tenant resolver.
	ErrNoTenantResolver = errors.New("no tenant resolver configured")

	// ErrInvalidConfiguration is config.ErrInvalidConfiguration.
	ErrInvalidConfiguration = config.ErrInvalidConfiguration
)

// Errors mapped from response status codes by [CheckResponse].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)
