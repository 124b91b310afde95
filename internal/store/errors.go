package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update collides
	// with the unique constraint on users.email. The constraint is what
	// makes the one-account-per-email invariant hold under concurrent
	// registrations.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set, including a password
	// reset whose email/answer/role triple matched no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with malformed arguments).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
