package http

import "errors"

// Sentinel errors reported by the authentication middleware when the
// Authorization header is absent or malformed.
var (
	// ErrEmptyAuthorizationHeader is returned when no Authorization header
	// is present on a protected route.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
